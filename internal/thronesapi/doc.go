// Package thronesapi provides an HTTP client for the public Thrones
// character API.
//
// The API exposes a single read-only endpoint used by thronedex:
//
//	GET /api/v2/Characters
//
// which returns a JSON array of character records. There is no
// authentication, pagination or streaming.
//
// # Usage
//
//	client, err := thronesapi.NewClient("https://thronesapi.com", 10*time.Second)
//	if err != nil {
//		return err
//	}
//	records, err := client.FetchCharacters(ctx)
//
// # Error Handling
//
// FetchCharacters returns wrapped errors for request construction, transport
// failures, HTTP status codes >= 400 and JSON decode failures. The client does
// not retry; callers decide what an unavailable API means for them.
//
// Records are decoded as-is. Missing fields surface as empty strings or zero
// ids and are not validated here.
package thronesapi
