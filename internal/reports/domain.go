package reports

import "time"

// Type enumerates counterfeit/quality report kinds.
type Type string

const (
	// TypeCounterfeit flags a suspected counterfeit product.
	TypeCounterfeit Type = "Counterfeit"
	// TypeQuality flags a product quality issue.
	TypeQuality Type = "Quality Issue"
	// TypePackaging flags a packaging or seal issue.
	TypePackaging Type = "Packaging Issue"
)

// Status enumerates report lifecycle states.
type Status string

const (
	// StatusPending is the initial state of every report.
	StatusPending Status = "Pending"
	// StatusInvestigating means the report is being looked into.
	StatusInvestigating Status = "Investigating"
	// StatusResolved means the report has been closed out. Conventionally
	// terminal, but not guarded: reopening moves it back to Pending.
	StatusResolved Status = "Resolved"
)

var typeSet = map[Type]struct{}{
	TypeCounterfeit: {},
	TypeQuality:     {},
	TypePackaging:   {},
}

// statusBadges is a closed enum-indexed table; no default fallthrough.
var statusBadges = map[Status]string{
	StatusPending:       "yellow",
	StatusInvestigating: "blue",
	StatusResolved:      "green",
}

// Valid reports whether t is one of the closed enumeration values.
func (t Type) Valid() bool {
	_, ok := typeSet[t]
	return ok
}

// Valid reports whether s is one of the closed enumeration values.
func (s Status) Valid() bool {
	_, ok := statusBadges[s]
	return ok
}

// Badge returns the display color associated with the status.
func (s Status) Badge() string { return statusBadges[s] }

// Report models one counterfeit/quality report.
type Report struct {
	ID          string    `json:"id"`
	ProductName string    `json:"productName"`
	ReportType  Type      `json:"reportType"`
	Status      Status    `json:"status"`
	Location    string    `json:"location"`
	ReportDate  time.Time `json:"reportDate"`
	ReportedBy  string    `json:"reportedBy"`
	Details     string    `json:"details"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GetID returns the report identity.
func (r Report) GetID() string { return r.ID }

// WithID returns a copy of the report carrying the assigned identity.
func (r Report) WithID(id string) Report { r.ID = id; return r }

// Input describes a report submitted through the report form.
type Input struct {
	ProductName string `json:"productName" validate:"required"`
	ReportType  string `json:"reportType" validate:"required,oneof='Counterfeit' 'Quality Issue' 'Packaging Issue'"`
	Location    string `json:"location" validate:"required"`
	ReportedBy  string `json:"reportedBy" validate:"required"`
	Details     string `json:"details"`
}

// Filter narrows report listings. Zero values pass everything.
type Filter struct {
	Query  string
	Type   string
	Status string
}
