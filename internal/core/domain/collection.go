// internal/core/domain/collection.go
package domain

import (
	"fmt"
	"time"
)

// Collection groups the serialized stock units of one product line.
type Collection struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	StockUnits  []StockUnit `json:"serial_numbers,omitempty"`
	CreatedBy   *int64      `json:"created_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedBy   *int64      `json:"updated_by,omitempty"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}

// Validate performs domain validation on a collection about to be created.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}
