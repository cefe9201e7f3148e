package interfaces

import (
	"context"

	"payment_gateway/internal/domain/entities"
)

// IOperationLogRepository abstracts the DynamoDB journal of provider mutations.
type IOperationLogRepository interface {
	Create(ctx context.Context, r entities.OperationRecord) (entities.OperationRecord, error)
	ListByResourceID(ctx context.Context, resourceID string) ([]entities.OperationRecord, error)
}
