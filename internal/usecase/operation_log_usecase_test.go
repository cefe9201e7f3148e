package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment_gateway/internal/domain/entities"
	mock_interfaces "payment_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOperationLogUseCase_ListByResourceID(t *testing.T) {
	t.Run("journal disabled", func(t *testing.T) {
		uc := NewOperationLogUseCase(nil)
		if _, err := uc.ListByResourceID(context.Background(), "pm_1"); !errors.Is(err, ErrOperationJournalDisabled) {
			t.Fatalf("expected ErrOperationJournalDisabled, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := NewOperationLogUseCase(nil)
		if _, err := uc.ListByResourceID(context.Background(), " "); !errors.Is(err, ErrInvalidResourceID) {
			t.Fatalf("expected ErrInvalidResourceID, got %v", err)
		}
	})

	t.Run("oldest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperationLogRepository(ctrl)
		uc := NewOperationLogUseCase(repo)

		now := time.Now().UTC()
		repo.EXPECT().ListByResourceID(gomock.Any(), "pm_1").Return([]entities.OperationRecord{
			{ID: "b", Date: now},
			{ID: "a", Date: now.Add(-time.Minute)},
		}, nil)

		records, err := uc.ListByResourceID(context.Background(), "pm_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 || records[0].ID != "a" {
			t.Fatalf("unexpected order: %+v", records)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOperationLogRepository(ctrl)
		uc := NewOperationLogUseCase(repo)

		repo.EXPECT().ListByResourceID(gomock.Any(), "pm_1").Return(nil, errors.New("ddb"))

		if _, err := uc.ListByResourceID(context.Background(), "pm_1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestOperationJournal_NilRepositoryIsNoop(t *testing.T) {
	j := newOperationJournal(nil)
	j.record(context.Background(), OpCreateCustomer, "cus_1", nil, nil)
}

func TestOperationJournal_UsesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOperationLogRepository(ctrl)

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*3600))
	j := newOperationJournal(repo)
	j.now = func() time.Time { return fixed }

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.OperationRecord) (entities.OperationRecord, error) {
		if !r.Date.Equal(fixed) || r.Date.Location() != time.UTC {
			t.Fatalf("expected UTC date, got %v", r.Date)
		}
		if r.Error != "boom" || r.Outcome != entities.OperationOutcomeFailed {
			t.Fatalf("unexpected record: %+v", r)
		}
		return r, nil
	})

	j.record(context.Background(), OpDetachPaymentMethod, "pm_1", nil, errors.New("boom"))
	j.record(context.Background(), OpDetachPaymentMethod, "", nil, nil)
}
