package domain

// Identity is who the active session belongs to. It is captured on the
// entry screen, held only in memory, and discarded on logout. The
// password is opaque to the client; it is forwarded to the account
// service on signup and never inspected or hashed here.
type Identity struct {
	Name     string
	Email    string
	Password string
}
