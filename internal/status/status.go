// Package status derives discrete operational statuses from raw values and
// configured thresholds. All classifiers are pure: same inputs, same status.
package status

import "time"

// Default thresholds applied when the settings module has no override.
const (
	DefaultLowStockThreshold = 100
	DefaultExpiryWarnDays    = 90
)

// StockStatus enumerates inventory stock levels.
type StockStatus string

const (
	// StockIn means quantity is above the low-stock threshold.
	StockIn StockStatus = "In Stock"
	// StockLow means quantity is positive but at or below the threshold.
	StockLow StockStatus = "Low Stock"
	// StockOut means quantity is zero. Terminal regardless of threshold.
	StockOut StockStatus = "Out of Stock"
)

// ExpiryStatus enumerates how close a dated record is to its expiry.
type ExpiryStatus string

const (
	// ExpiryActive means the expiry date is comfortably in the future.
	ExpiryActive ExpiryStatus = "Active"
	// ExpirySoon means the expiry date falls within the warning window.
	ExpirySoon ExpiryStatus = "Expiring Soon"
	// ExpiryExpired means the expiry date has passed.
	ExpiryExpired ExpiryStatus = "Expired"
)

// stockBadges and expiryBadges are closed enum-indexed tables. Lookups never
// fall through to a default: an unknown status is unrepresentable as long as
// construction goes through the classifiers.
var stockBadges = map[StockStatus]string{
	StockIn:  "green",
	StockLow: "yellow",
	StockOut: "red",
}

var expiryBadges = map[ExpiryStatus]string{
	ExpiryActive:  "green",
	ExpirySoon:    "yellow",
	ExpiryExpired: "red",
}

// Badge returns the display color associated with the status.
func (s StockStatus) Badge() string { return stockBadges[s] }

// Valid reports whether s is one of the closed enumeration values.
func (s StockStatus) Valid() bool {
	_, ok := stockBadges[s]
	return ok
}

// Badge returns the display color associated with the status.
func (s ExpiryStatus) Badge() string { return expiryBadges[s] }

// Valid reports whether s is one of the closed enumeration values.
func (s ExpiryStatus) Valid() bool {
	_, ok := expiryBadges[s]
	return ok
}

// ClassifyStock maps a quantity against the low-stock threshold.
// Quantity at or below zero is always Out of Stock; a quantity equal to the
// threshold is still Low Stock (the boundary is inclusive on the low side).
// Negative inputs are a caller validation error, guarded before this point.
func ClassifyStock(quantity, lowStockThreshold int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= lowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// ClassifyExpiry maps an expiry date against a reference date and warning
// window. Expiry strictly before the reference is Expired; within warnDays
// of the reference it is Expiring Soon. Moving the reference forward never
// moves a record from Expired back to Active.
func ClassifyExpiry(expiry, reference time.Time, warnDays int) ExpiryStatus {
	if expiry.Before(reference) {
		return ExpiryExpired
	}
	if !expiry.After(reference.AddDate(0, 0, warnDays)) {
		return ExpirySoon
	}
	return ExpiryActive
}
