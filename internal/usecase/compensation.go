package usecase

import (
	"context"

	"github.com/rs/zerolog/log"
)

type compensationStep struct {
	operation  string
	resourceID string
	related    []string
	undo       func(ctx context.Context) error
}

// compensator collects undo actions for a multi-call sequence and replays them in
// reverse order when a later call fails.
type compensator struct {
	steps []compensationStep
}

// push registers an undo action. operation and resourceID name the provider call the
// undo performs, so a failed undo lands in the journal under that call.
func (c *compensator) push(operation, resourceID string, related []string, undo func(ctx context.Context) error) {
	c.steps = append(c.steps, compensationStep{operation: operation, resourceID: resourceID, related: related, undo: undo})
}

func (c *compensator) pending() bool {
	return len(c.steps) > 0
}

// rollback runs every undo action and reports whether all of them succeeded.
// Undo calls use a context detached from the request's cancellation; each failed
// undo is journaled as a failed record of its own operation.
func (c *compensator) rollback(ctx context.Context, journal operationJournal) bool {
	undoCtx := context.WithoutCancel(ctx)
	ok := true
	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]
		if err := step.undo(undoCtx); err != nil {
			ok = false
			log.Ctx(ctx).Error().Err(err).
				Str("operation", step.operation).
				Str("resource_id", step.resourceID).
				Msg("[payment][usecase] compensation failed")
			journal.record(ctx, step.operation, step.resourceID, step.related, err)
			continue
		}
		log.Ctx(ctx).Info().
			Str("operation", step.operation).
			Str("resource_id", step.resourceID).
			Msg("[payment][usecase] compensation applied")
	}
	c.steps = nil
	return ok
}
