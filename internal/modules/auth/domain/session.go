package domain

// Identity is the account behind a session.
type Identity struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Session holds the bearer credential and identity. The zero value is the
// logged-out state; an empty token always means unauthenticated.
type Session struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.Identity != (Identity{})
}
