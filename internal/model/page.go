package model

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

// Page is a limit/offset window over a listing.
type Page struct {
	Limit  int
	Offset int
}

// Validate checks the page bounds: limit in [1, MaxPageLimit], offset >= 0.
func (p Page) Validate() error {
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		return NewValidationError("limit", "must be between 1 and 500")
	}
	if p.Offset < 0 {
		return NewValidationError("offset", "must not be negative")
	}
	return nil
}
