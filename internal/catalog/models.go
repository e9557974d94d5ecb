package catalog

// Entry is a single constant. Value is pre-formatted display text and is never parsed.
type Entry struct {
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	History     []float64 `json:"history,omitempty"`
}

// Category is a named, ordered group of built-in constants.
type Category struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Row is one line of a filtered listing.
type Row struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// customInput is validated before it enters the overlay.
type customInput struct {
	Name        string `validate:"notblank,utf8"`
	Value       string `validate:"notblank,utf8"`
	Description string `validate:"utf8"`
}
