package entity

// PostalAddress is a structured address produced by reverse geocoding.
// Every field is optional; it is only used for display and form pre-fill.
type PostalAddress struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// IsEmpty reports whether no field was resolved.
func (a PostalAddress) IsEmpty() bool {
	return a == PostalAddress{}
}
