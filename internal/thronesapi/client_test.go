package thronesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:8080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.com:8080" {
		t.Fatalf("url = %q, want https://example.com:8080", u.String())
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_MissingHostFails(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want missing host error")
	}
}

func TestClient_FetchCharacters(t *testing.T) {
	t.Parallel()

	var gotPath, gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":0,"firstName":"Daenerys","lastName":"Targaryen","fullName":"Daenerys Targaryen","title":"Mother of Dragons","family":"House Targaryen","image":"daenerys.jpg","imageUrl":"https://thronesapi.com/assets/images/daenerys.jpg"},
			{"id":17,"lastName":"Pycelle","title":"Grand Maester"}
		]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	records, err := c.FetchCharacters(ctx)
	if err != nil {
		t.Fatalf("FetchCharacters returned error: %v", err)
	}
	if gotPath != charactersPath {
		t.Fatalf("path = %q, want %q", gotPath, charactersPath)
	}
	if !strings.HasPrefix(gotUserAgent, "thronedex/") {
		t.Fatalf("User-Agent = %q, want thronedex/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].FirstName != "Daenerys" || records[0].Family != "House Targaryen" {
		t.Fatalf("records[0] = %#v, want Daenerys of House Targaryen", records[0])
	}
	if records[1].ID != 17 || records[1].FirstName != "" || records[1].Family != "" || records[1].ImageURL != "" {
		t.Fatalf("records[1] = %#v, want zero values for absent fields", records[1])
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	var status atomic.Int32
	status.Store(http.StatusInternalServerError)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code := int(status.Load()); code != http.StatusOK {
			http.Error(w, "nope", code)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchCharacters(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchCharacters error = %v, want status 500 error", err)
	}

	status.Store(http.StatusOK)
	_, err = c.FetchCharacters(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchCharacters error = %v, want decode response error", err)
	}
}

func TestClient_CancelledContext(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.FetchCharacters(ctx); err == nil {
		t.Fatalf("FetchCharacters returned nil error, want cancellation error")
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchCharacters(context.Background()); err == nil {
		t.Fatalf("FetchCharacters on nil client returned nil error")
	}
}
