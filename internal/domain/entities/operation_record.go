package entities

import "time"

// OperationOutcome is the final state of a forwarded provider mutation.
type OperationOutcome string

const (
	OperationOutcomeSucceeded   OperationOutcome = "succeeded"
	OperationOutcomeFailed      OperationOutcome = "failed"
	OperationOutcomeCompensated OperationOutcome = "compensated"
)

// OperationRecord is one journal line for a provider mutation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (resource_id-index): resource_id, sorted by date
//
// Only identifiers and outcomes are kept; provider objects are never copied.

type OperationRecord struct {
	ID         string           `json:"id"`
	Operation  string           `json:"operation"`
	ResourceID string           `json:"resource_id"`
	RelatedIDs []string         `json:"related_ids,omitempty"`
	Outcome    OperationOutcome `json:"outcome"`
	Error      string           `json:"error,omitempty"`
	Date       time.Time        `json:"date"`
}
