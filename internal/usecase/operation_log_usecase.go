package usecase

import (
	"context"
	"sort"

	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
)

// IOperationLogUseCase reads the journal of provider mutations.
type IOperationLogUseCase interface {
	ListByResourceID(ctx context.Context, resourceID string) ([]entities.OperationRecord, error)
}

type OperationLogUseCase struct {
	repo interfaces.IOperationLogRepository
}

var _ IOperationLogUseCase = (*OperationLogUseCase)(nil)

func NewOperationLogUseCase(repo interfaces.IOperationLogRepository) *OperationLogUseCase {
	return &OperationLogUseCase{repo: repo}
}

// ListByResourceID returns the journal for a resource, oldest first.
func (u *OperationLogUseCase) ListByResourceID(ctx context.Context, resourceID string) ([]entities.OperationRecord, error) {
	resourceID, err := requireID(resourceID, ErrInvalidResourceID)
	if err != nil {
		return nil, err
	}
	if u.repo == nil {
		return nil, ErrOperationJournalDisabled
	}
	records, err := u.repo.ListByResourceID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}
