package models

// SuggestShelfLocationRequest is the caller-facing input for the AI-assisted
// placement feature. The current-inventory context string is assembled server
// side from the catalog and shelf registry.
type SuggestShelfLocationRequest struct {
	ProductName        string `json:"productName" validate:"required,min=2,max=100"`
	ProductDescription string `json:"productDescription" validate:"required,min=5,max=1000"`
}

type ShelfLocationSuggestion struct {
	ShelfLocationSuggestion string `json:"shelfLocationSuggestion"`
	Rationale               string `json:"rationale"`
}
