// internal/core/domain/stock.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// UnitOfMeasure is how a stock unit's quantity is counted.
type UnitOfMeasure string

const (
	UnitMeter UnitOfMeasure = "mtr"
	UnitPiece UnitOfMeasure = "pcs"
)

// Valid reports whether u is a known unit of measure.
func (u UnitOfMeasure) Valid() bool {
	return u == UnitMeter || u == UnitPiece
}

// MovementAction is the direction of a stock movement.
type MovementAction string

const (
	MovementIn  MovementAction = "IN"
	MovementOut MovementAction = "OUT"
)

// Valid reports whether a is a known movement action.
func (a MovementAction) Valid() bool {
	return a == MovementIn || a == MovementOut
}

// StockUnit is one serialized unit of a collection with a denormalized
// quantity balance. current_stock is mutated only through the stock service
// so that every change is paired with a ledger entry.
type StockUnit struct {
	ID           int64           `json:"id"`
	CollectionID int64           `json:"collection_id"`
	SrNo         string          `json:"sr_no"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	MaxStock     decimal.Decimal `json:"max_stock"`
	Unit         UnitOfMeasure   `json:"unit"`
	CreatedBy    *int64          `json:"created_by,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedBy    *int64          `json:"updated_by,omitempty"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}

// Validate performs domain validation on a stock unit about to be created.
func (u *StockUnit) Validate() error {
	if u.CollectionID <= 0 {
		return fmt.Errorf("%w: collection_id is required", ErrInvalidInput)
	}
	if u.SrNo == "" {
		return fmt.Errorf("%w: sr_no is required", ErrInvalidInput)
	}
	if u.CurrentStock.IsNegative() {
		return fmt.Errorf("%w: current_stock cannot be negative", ErrInvalidInput)
	}
	if u.MinStock.IsNegative() || u.MaxStock.IsNegative() {
		return fmt.Errorf("%w: stock thresholds cannot be negative", ErrInvalidInput)
	}
	if u.Unit == "" {
		u.Unit = UnitMeter
	}
	if !u.Unit.Valid() {
		return fmt.Errorf("%w: unit must be %q or %q", ErrInvalidInput, UnitMeter, UnitPiece)
	}
	return nil
}

// StockUnitPatch describes a partial edit of a stock unit's non-quantity
// fields. Quantity changes never travel through a patch; they go through
// StockService.ApplyDelta so the ledger stays consistent.
type StockUnitPatch struct {
	SrNo     *string          `json:"sr_no,omitempty"`
	MinStock *decimal.Decimal `json:"min_stock,omitempty"`
	MaxStock *decimal.Decimal `json:"max_stock,omitempty"`
	Unit     *UnitOfMeasure   `json:"unit,omitempty"`

	// CurrentStock exists only so a direct quantity edit can be rejected
	// with a clear error. Quantity changes go through movements.
	CurrentStock *decimal.Decimal `json:"current_stock,omitempty"`
}

// Validate rejects empty and malformed patches.
func (p *StockUnitPatch) Validate() error {
	if p.CurrentStock != nil {
		return fmt.Errorf("%w: current_stock cannot be edited directly, record a stock movement instead", ErrInvalidInput)
	}
	if p.SrNo == nil && p.MinStock == nil && p.MaxStock == nil && p.Unit == nil {
		return fmt.Errorf("%w: patch has no fields", ErrInvalidInput)
	}
	if p.SrNo != nil && *p.SrNo == "" {
		return fmt.Errorf("%w: sr_no cannot be empty", ErrInvalidInput)
	}
	if p.MinStock != nil && p.MinStock.IsNegative() {
		return fmt.Errorf("%w: min_stock cannot be negative", ErrInvalidInput)
	}
	if p.MaxStock != nil && p.MaxStock.IsNegative() {
		return fmt.Errorf("%w: max_stock cannot be negative", ErrInvalidInput)
	}
	if p.Unit != nil && !p.Unit.Valid() {
		return fmt.Errorf("%w: unit must be %q or %q", ErrInvalidInput, UnitMeter, UnitPiece)
	}
	return nil
}

// StockMovement is an append-only ledger entry for one stock unit. There is
// no update path; corrections are written as reversing entries.
type StockMovement struct {
	ID          int64           `json:"id"`
	StockUnitID int64           `json:"stock_unit_id"`
	Action      MovementAction  `json:"action"`
	Quantity    decimal.Decimal `json:"quantity"`
	Message     string          `json:"message"`
	CreatedBy   *int64          `json:"created_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// StockDelta is a requested quantity change against one stock unit.
type StockDelta struct {
	StockUnitID int64
	Action      MovementAction
	Quantity    decimal.Decimal
	Reason      string
	ActorID     *int64
}

// Validate checks the delta's input constraints.
func (d *StockDelta) Validate() error {
	if d.StockUnitID <= 0 {
		return fmt.Errorf("%w: stock_unit_id is required", ErrInvalidInput)
	}
	if !d.Action.Valid() {
		return fmt.Errorf("%w: action must be %q or %q", ErrInvalidInput, MovementIn, MovementOut)
	}
	if !d.Quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be greater than 0", ErrInvalidInput)
	}
	return nil
}

// Signed returns the delta as a signed quantity: positive for IN, negative
// for OUT.
func (d *StockDelta) Signed() decimal.Decimal {
	if d.Action == MovementOut {
		return d.Quantity.Neg()
	}
	return d.Quantity
}

// DefaultMessage is used when a delta carries no reason, mirroring the
// ledger's human-readable convention.
func (d *StockDelta) DefaultMessage() string {
	if d.Action == MovementIn {
		return fmt.Sprintf("Stock added: %s", d.Quantity)
	}
	return fmt.Sprintf("Stock reduced: %s", d.Quantity)
}
