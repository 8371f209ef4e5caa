package verification

import (
	"errors"
	"time"
)

// RegistryRecord is the authoritative product/batch entry used as ground
// truth for authenticity verdicts. Authenticity is a property of the record;
// the matcher never recomputes it.
type RegistryRecord struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"productId"`
	BatchNumber       string    `json:"batchNumber"`
	Name              string    `json:"name"`
	Manufacturer      string    `json:"manufacturer"`
	ManufacturingDate time.Time `json:"manufacturingDate"`
	ExpiryDate        time.Time `json:"expiryDate"`
	IsAuthentic       bool      `json:"isAuthentic"`
}

// GetID returns the record identity.
func (r RegistryRecord) GetID() string { return r.ID }

// WithID returns a copy of the record carrying the assigned identity.
func (r RegistryRecord) WithID(id string) RegistryRecord { r.ID = id; return r }

// Result is a successful lookup: the matched registry record plus the
// moment the verification happened. It is only ever constructed from a
// record that exists.
type Result struct {
	RegistryRecord
	VerificationDate time.Time `json:"verificationDate"`
}

// Outcome enumerates the three possible verdicts of a lookup.
type Outcome string

const (
	// OutcomeAuthentic means the record matched and is flagged authentic.
	OutcomeAuthentic Outcome = "authentic"
	// OutcomeCounterfeit means the record matched but is flagged as a
	// potential counterfeit.
	OutcomeCounterfeit Outcome = "counterfeit"
	// OutcomeNotFound means no registry record matched the query.
	OutcomeNotFound Outcome = "not_found"
)

// Verdict is the outcome of a verification lookup. Result is nil exactly
// when the outcome is not_found; Query always carries the trimmed query for
// display.
type Verdict struct {
	Outcome Outcome `json:"outcome"`
	Query   string  `json:"query"`
	Result  *Result `json:"result,omitempty"`
}

// RegistryInput describes a registry record submitted by an administrator.
type RegistryInput struct {
	ProductID         string `json:"productId" validate:"required"`
	BatchNumber       string `json:"batchNumber" validate:"required"`
	Name              string `json:"name" validate:"required"`
	Manufacturer      string `json:"manufacturer" validate:"required"`
	ManufacturingDate string `json:"manufacturingDate" validate:"required"`
	ExpiryDate        string `json:"expiryDate" validate:"required"`
	IsAuthentic       bool   `json:"isAuthentic"`
}

// ErrSuperseded signals that a newer query was issued while this lookup was
// in flight; the resolved verdict must be discarded, not applied.
var ErrSuperseded = errors.New("verification: lookup superseded by newer query")
