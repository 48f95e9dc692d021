package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt represents a stored receipt for data transfer between layers.
type Receipt struct {
	ID               uuid.UUID `json:"id"`
	Vendor           string    `json:"vendor"`
	TxDate           time.Time `json:"transaction_date"`
	Amount           float64   `json:"amount"`
	Category         string    `json:"category"`
	OriginalFilename string    `json:"original_filename"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
