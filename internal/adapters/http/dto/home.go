package dto

// HomeSection is one independently loaded slice of the home screen. A
// failed section carries its error message without affecting siblings.
type HomeSection[T any] struct {
	Value T      `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// HomeResponse is the aggregated home screen payload.
type HomeResponse struct {
	QuoteOfTheDay HomeSection[*QuoteResponse]  `json:"quoteOfTheDay"`
	Recent        HomeSection[[]QuoteResponse] `json:"recent"`
}
