package staff

import "time"

// Role enumerates staff roles within the distribution company.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleStaff      Role = "Staff"
	RolePharmacist Role = "Pharmacist"
)

// Status enumerates employment states.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

var roleSet = map[Role]struct{}{
	RoleAdmin:      {},
	RoleManager:    {},
	RoleStaff:      {},
	RolePharmacist: {},
}

var statusBadges = map[Status]string{
	StatusActive:   "green",
	StatusInactive: "gray",
}

// Valid reports whether r is one of the closed enumeration values.
func (r Role) Valid() bool {
	_, ok := roleSet[r]
	return ok
}

// Valid reports whether s is one of the closed enumeration values.
func (s Status) Valid() bool {
	_, ok := statusBadges[s]
	return ok
}

// Badge returns the display color associated with the status.
func (s Status) Badge() string { return statusBadges[s] }

// Member models one staff directory entry.
type Member struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	Status     Status    `json:"status"`
	JoinDate   time.Time `json:"joinDate"`
}

// GetID returns the member identity.
func (m Member) GetID() string { return m.ID }

// WithID returns a copy of the member carrying the assigned identity.
func (m Member) WithID(id string) Member { m.ID = id; return m }

// Input describes a member submitted through the staff form.
type Input struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Role       string `json:"role" validate:"required,oneof=Admin Manager Staff Pharmacist"`
	Department string `json:"department" validate:"required"`
	JoinDate   string `json:"joinDate"`
}

// Filter narrows staff listings. Zero values pass everything.
type Filter struct {
	Query  string
	Role   string
	Status string
}
