// internal/core/domain/order.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is an order's lifecycle state.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderApproved  OrderStatus = "APPROVED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// orderTransitions is the allowed state machine:
// PENDING -> APPROVED -> SHIPPED -> DELIVERED, and any non-terminal state
// may move to CANCELLED.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:  {OrderApproved, OrderCancelled},
	OrderApproved: {OrderShipped, OrderCancelled},
	OrderShipped:  {OrderDelivered, OrderCancelled},
}

// CanTransitionTo reports whether s -> next is an allowed transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OverdueStatuses are the states in which an order can become overdue.
var OverdueStatuses = []OrderStatus{OrderPending, OrderApproved, OrderShipped}

// Role of the acting user, as attributed by the auth layer.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "STAFF"
	RoleCustomer Role = "CUSTOMER"
)

// Actor identifies the user a mutation is attributed to.
type Actor struct {
	ID   int64
	Role Role
}

// Order is a customer purchase owning zero or more line items. Deleting an
// order removes its items first; stock reversal is tracked by
// StockReversedAt so cancel and delete never double-restore.
type Order struct {
	ID                int64       `json:"id"`
	Status            OrderStatus `json:"status"`
	CourierTrackingNo *string     `json:"courier_tracking_no,omitempty"`
	CourierCompany    *string     `json:"courier_company,omitempty"`
	StockReversedAt   *time.Time  `json:"stock_reversed_at,omitempty"`
	Items             []OrderItem `json:"order_items"`
	CreatedBy         *int64      `json:"created_by,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedBy         *int64      `json:"updated_by,omitempty"`
	UpdatedAt         *time.Time  `json:"updated_at,omitempty"`
}

// OrderItem is one requested quantity of a stock unit within an order.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	StockUnitID int64           `json:"stock_unit_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	SrNo        string          `json:"sr_no,omitempty"`
	Unit        UnitOfMeasure   `json:"unit,omitempty"`
	CreatedBy   *int64          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedBy   *int64          `json:"updated_by,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// NewOrderItem is a requested line item at order creation.
type NewOrderItem struct {
	StockUnitID int64           `json:"stock_unit_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// Validate checks a requested line item.
func (i *NewOrderItem) Validate() error {
	if i.StockUnitID <= 0 {
		return fmt.Errorf("%w: stock_unit_id is required", ErrInvalidInput)
	}
	if !i.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidInput)
	}
	return nil
}

// ItemOpAction tags an order-update item operation.
type ItemOpAction string

const (
	ItemOpCreate ItemOpAction = "create"
	ItemOpUpdate ItemOpAction = "update"
	ItemOpDelete ItemOpAction = "delete"
)

// OrderItemOp is one tagged item operation inside an order update.
// Operations are processed in caller order; a failure rolls back the whole
// update.
type OrderItemOp struct {
	Action      ItemOpAction    `json:"_action"`
	ID          int64           `json:"id,omitempty"`
	StockUnitID int64           `json:"stock_unit_id,omitempty"`
	Quantity    decimal.Decimal `json:"quantity,omitempty"`
}

// Validate checks the fields an action requires.
func (op *OrderItemOp) Validate() error {
	switch op.Action {
	case ItemOpCreate:
		if op.StockUnitID <= 0 {
			return fmt.Errorf("%w: stock_unit_id is required for create", ErrInvalidInput)
		}
		if !op.Quantity.IsPositive() {
			return fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidInput)
		}
	case ItemOpUpdate:
		if op.ID <= 0 {
			return fmt.Errorf("%w: id is required for update", ErrInvalidInput)
		}
		if !op.Quantity.IsPositive() {
			return fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidInput)
		}
	case ItemOpDelete:
		if op.ID <= 0 {
			return fmt.Errorf("%w: id is required for delete", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: action must be one of: create, update, delete", ErrInvalidInput)
	}
	return nil
}

// CourierInfo is the optional shipping detail set alongside a status change.
type CourierInfo struct {
	TrackingNo *string `json:"courier_tracking_no,omitempty"`
	Company    *string `json:"courier_company,omitempty"`
}
