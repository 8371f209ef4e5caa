package inventory

import (
	"time"

	"github.com/pharmasync/pharmasync/internal/status"
)

// Item models one stocked product. Status is derived from Quantity: it is
// kept on the struct for rendering, but every mutation path recomputes it so
// the two can never drift apart.
type Item struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Quantity   int                `json:"quantity"`
	UnitPrice  float64            `json:"price"`
	ExpiryDate time.Time          `json:"expiryDate"`
	Status     status.StockStatus `json:"status"`
}

// GetID returns the item identity.
func (i Item) GetID() string { return i.ID }

// WithID returns a copy of the item carrying the assigned identity.
func (i Item) WithID(id string) Item { i.ID = id; return i }

// Input describes an item submitted through the add/edit form.
type Input struct {
	Name       string  `json:"name" validate:"required"`
	Category   string  `json:"category" validate:"required"`
	Quantity   int     `json:"quantity" validate:"gte=0"`
	UnitPrice  float64 `json:"price" validate:"gte=0"`
	ExpiryDate string  `json:"expiryDate" validate:"required"`
}

// Filter narrows item listings. Zero values pass everything.
type Filter struct {
	Query    string
	Category string
}
