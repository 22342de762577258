package entity

// Candidate identifies a person on the management server. There is no local
// identity beyond the name pair.
type Candidate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FwdCandidate is a candidate together with their start-of-work date.
type FwdCandidate struct {
	Candidate
	Fwd string `json:"fwd"` // YYYY-MM-DD
}
