package documents

import "time"

// Type enumerates supported document kinds.
type Type string

const (
	// TypeLicense represents a regulatory license.
	TypeLicense Type = "License"
	// TypeCertificate represents a compliance certificate.
	TypeCertificate Type = "Certificate"
	// TypeReport represents a filed report document.
	TypeReport Type = "Report"
	// TypeSOP represents a standard operating procedure.
	TypeSOP Type = "SOP"
	// TypeManual represents an operations manual.
	TypeManual Type = "Manual"
)

// Status enumerates document states. Status is derived on read: a document
// awaiting review is Pending, one past its expiry date is Expired, anything
// else is Active.
type Status string

const (
	// StatusActive means the document is reviewed and current.
	StatusActive Status = "Active"
	// StatusExpired means the document's expiry date has passed.
	StatusExpired Status = "Expired"
	// StatusPending means the document awaits review.
	StatusPending Status = "Pending"
)

var typeSet = map[Type]struct{}{
	TypeLicense:     {},
	TypeCertificate: {},
	TypeReport:      {},
	TypeSOP:         {},
	TypeManual:      {},
}

// statusBadges is a closed enum-indexed table; no default fallthrough.
var statusBadges = map[Status]string{
	StatusActive:  "green",
	StatusExpired: "red",
	StatusPending: "yellow",
}

// Valid reports whether t is one of the closed enumeration values.
func (t Type) Valid() bool {
	_, ok := typeSet[t]
	return ok
}

// Badge returns the display color associated with the status.
func (s Status) Badge() string { return statusBadges[s] }

// Document models one stored regulatory document. Only metadata is kept;
// file contents never reach the backend.
type Document struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Type       Type       `json:"type"`
	Category   string     `json:"category"`
	UploadDate time.Time  `json:"uploadDate"`
	Size       string     `json:"size"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Reviewed   bool       `json:"reviewed"`
	Status     Status     `json:"status"`
}

// GetID returns the document identity.
func (d Document) GetID() string { return d.ID }

// WithID returns a copy of the document carrying the assigned identity.
func (d Document) WithID(id string) Document { d.ID = id; return d }

// Input describes a document submitted through the upload form.
type Input struct {
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=License Certificate Report SOP Manual"`
	Category   string `json:"category" validate:"required"`
	Size       string `json:"size"`
	ExpiryDate string `json:"expiryDate"`
}

// Filter narrows document listings. Zero values pass everything.
type Filter struct {
	Query    string
	Type     string
	Category string
}
