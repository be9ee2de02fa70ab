package entity

// UserLoginData is the subset of access-token claims the handlers need.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
