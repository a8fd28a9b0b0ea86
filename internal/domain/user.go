package domain

// User is the current-user record exposed by the authentication capability.
// Authentication mechanics live outside the core; consumers only see this
// record plus an is-authenticated flag.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
