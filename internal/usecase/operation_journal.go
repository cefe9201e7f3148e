package usecase

import (
	"context"
	"time"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Operation names written to the journal.
const (
	OpCreateCustomer         = "create_customer"
	OpSetDefaultMethod       = "set_default_payment_method"
	OpAttachPaymentMethod    = "attach_payment_method"
	OpDetachPaymentMethod    = "detach_payment_method"
	OpUpdatePaymentMethod    = "update_payment_method"
	OpCreatePaymentIntent    = "create_payment_intent"
	OpUpdatePaymentIntent    = "update_payment_intent"
	OpConfirmPaymentIntent   = "confirm_payment_intent"
	OpCreateOffSessionCharge = "create_off_session_payment"
)

// operationJournal records provider mutations. A nil repository disables it.
// Journal failures are logged and never surface to the caller.
type operationJournal struct {
	repo interfaces.IOperationLogRepository
	now  func() time.Time
}

func newOperationJournal(repo interfaces.IOperationLogRepository) operationJournal {
	return operationJournal{repo: repo, now: time.Now}
}

func (j operationJournal) record(ctx context.Context, operation, resourceID string, related []string, opErr error) {
	outcome := entities.OperationOutcomeSucceeded
	if opErr != nil {
		outcome = entities.OperationOutcomeFailed
	}
	j.write(ctx, operation, resourceID, related, outcome, opErr)
}

func (j operationJournal) compensated(ctx context.Context, operation, resourceID string, related []string, cause error) {
	j.write(ctx, operation, resourceID, related, entities.OperationOutcomeCompensated, cause)
}

func (j operationJournal) write(ctx context.Context, operation, resourceID string, related []string, outcome entities.OperationOutcome, opErr error) {
	if j.repo == nil || resourceID == "" {
		return
	}
	rec := entities.OperationRecord{
		ID:         uuid.NewString(),
		Operation:  operation,
		ResourceID: resourceID,
		RelatedIDs: related,
		Outcome:    outcome,
		Date:       j.now().UTC(),
	}
	if opErr != nil {
		rec.Error = opErr.Error()
	}
	// The journal must not be lost when the client goes away mid-request.
	if _, err := j.repo.Create(context.WithoutCancel(ctx), rec); err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("operation", operation).
			Str("resource_id", resourceID).
			Msg("[payment][usecase] operation journal write failed")
	}
}
