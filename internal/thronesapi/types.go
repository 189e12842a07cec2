package thronesapi

// Record mirrors one element of the /api/v2/Characters payload. Fields the
// API omits decode to their zero values.
type Record struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Title     string `json:"title"`
	Family    string `json:"family"`
	Image     string `json:"image"`
	ImageURL  string `json:"imageUrl"`
}
