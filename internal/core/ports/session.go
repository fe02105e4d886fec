package ports

import (
	"context"

	"go.trai.ch/endotarter/internal/core/domain"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

// Endorser performs the endorsement loop one target at a time.
type Endorser interface {
	// EndorseNext endorses the next queued target.
	// A rejected endorsement is reported in the attempt, not as an error.
	// An error means the run cannot continue.
	EndorseNext(ctx context.Context) (domain.Attempt, error)

	// Remaining returns the targets still queued.
	Remaining() []domain.Identifier
}

// Driver lets the operator step through an Endorser.
type Driver interface {
	// Run blocks until the operator quits, the queue is exhausted, ctx is cancelled,
	// or the endorser fails. Quitting and exhaustion return nil.
	Run(ctx context.Context, endorser Endorser) error
}
