// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type names registered with the asynq mux.
const (
	TypeOverdueScan     = "orders:overdue_scan"
	TypeLedgerReconcile = "stock:ledger_reconcile"
)

// OverdueScanPayload parameterizes an overdue order scan.
type OverdueScanPayload struct {
	OverdueDays int `json:"overdue_days"`
}

// NewOverdueScanTask creates a task that flags orders stuck in a non-terminal
// state past the delivery window.
func NewOverdueScanTask(overdueDays int) (*asynq.Task, error) {
	payload, err := json.Marshal(OverdueScanPayload{OverdueDays: overdueDays})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal overdue scan payload: %w", err)
	}
	return asynq.NewTask(TypeOverdueScan, payload), nil
}

// NewLedgerReconcileTask creates a task that compares each stock unit's
// balance against the sum of its movement ledger.
func NewLedgerReconcileTask() *asynq.Task {
	return asynq.NewTask(TypeLedgerReconcile, nil)
}
