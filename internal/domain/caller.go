package domain

// Caller is the authenticated identity every operation runs on behalf of.
// The role split is binary: a caller is either a teller or a regular user.
type Caller struct {
	ID       string
	IsTeller bool
}
