package auth

// User represents a demo account. The password hash is bcrypt; accounts
// exist to identify the actor on audit entries, not to gate routes.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
	Active       bool   `json:"active"`
}

// GetID returns the user identity.
func (u User) GetID() string { return u.ID }

// WithID returns a copy of the user carrying the assigned identity.
func (u User) WithID(id string) User { u.ID = id; return u }
