package huntflow

import "sync"

// TokenPair is the access/refresh pair issued by the /token endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenStore holds the current token values. It is a plain holder: values are
// not validated and the newest write wins. Tokens live only in memory, so a
// restarted process has to log in again.
type TokenStore struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// SetAccess replaces the access token, leaving the refresh token unchanged.
func (s *TokenStore) SetAccess(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = token
}

// SetPair replaces both tokens.
func (s *TokenStore) SetPair(pair TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = pair.Access
	s.refresh = pair.Refresh
}

func (s *TokenStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

func (s *TokenStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}
