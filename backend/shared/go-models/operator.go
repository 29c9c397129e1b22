package models

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a company that leases commercial space. Name is unique.
type Operator struct {
	Versioned
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Sector    *string   `json:"sector,omitempty"`
	Website   *string   `json:"website,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Operator) GetID() string {
	return o.ID.String()
}

// OperatorFields carries the mutable operator columns written by an upsert.
// Nil values never overwrite stored ones.
type OperatorFields struct {
	Name    string
	Sector  *string
	Website *string
	Notes   *string
}
