package model

// Session carries the requester identity decoded from the bearer token plus
// the remote address of the connection.
type Session struct {
	UID      string
	Provider string
	Remote   string
	Admin    bool
}

// Author composes the identity recorded in audit rows, e.g. jan@google.
func (s *Session) Author() string {
	return s.UID + "@" + s.Provider
}
