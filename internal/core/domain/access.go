// internal/core/domain/access.go
package domain

import (
	"fmt"
	"time"
)

// AccessStatus is the lifecycle state of one customer's visibility grant.
type AccessStatus string

const (
	AccessActive    AccessStatus = "ACTIVE"
	AccessInactive  AccessStatus = "INACTIVE"
	AccessPending   AccessStatus = "PENDING"
	AccessSuspended AccessStatus = "SUSPENDED"
	AccessExpired   AccessStatus = "EXPIRED"
)

// Valid reports whether s is a known access status.
func (s AccessStatus) Valid() bool {
	switch s {
	case AccessActive, AccessInactive, AccessPending, AccessSuspended, AccessExpired:
		return true
	}
	return false
}

// CollectionAccess grants one customer visibility into one collection. The
// pair (customer, collection) is unique; repeated grants flip the status
// instead of inserting a second row.
type CollectionAccess struct {
	ID             int64        `json:"id"`
	CustomerUserID int64        `json:"customer_user_id"`
	CollectionID   int64        `json:"collection_id"`
	Status         AccessStatus `json:"status"`
	CreatedBy      *int64       `json:"created_by,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedBy      *int64       `json:"updated_by,omitempty"`
	UpdatedAt      *time.Time   `json:"updated_at,omitempty"`
}

// AccessUpdate is one row of a bulk access status change.
type AccessUpdate struct {
	CollectionID int64        `json:"collection_id"`
	Status       AccessStatus `json:"status"`
}

// Validate performs domain validation on a single access update.
func (u AccessUpdate) Validate() error {
	if u.CollectionID <= 0 {
		return fmt.Errorf("%w: collection_id is required", ErrInvalidInput)
	}
	if !u.Status.Valid() {
		return fmt.Errorf("%w: unknown access status %q", ErrInvalidInput, u.Status)
	}
	return nil
}
