// Package session drives endorsements off the resolver's queue.
package session

import (
	"context"
	"errors"

	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/core/ports"
)

// Queue is the part of the resolver a session consumes.
type Queue interface {
	TakeNext() (domain.Identifier, bool)
	Remaining() []domain.Identifier
}

// Session implements ports.Endorser.
type Session struct {
	queue   Queue
	sink    ports.ActionSink
	tracer  ports.Tracer
	metrics ports.Metrics
}

// New creates a Session.
func New(queue Queue, sink ports.ActionSink, tracer ports.Tracer, metrics ports.Metrics) *Session {
	return &Session{
		queue:   queue,
		sink:    sink,
		tracer:  tracer,
		metrics: metrics,
	}
}

// EndorseNext takes the next target off the queue and endorses it.
// The target stays marked as endorsed even when the site rejects it.
func (s *Session) EndorseNext(ctx context.Context) (domain.Attempt, error) {
	target, ok := s.queue.TakeNext()
	if !ok {
		s.metrics.SetRemaining(0)
		return domain.Attempt{Outcome: domain.OutcomeExhausted}, nil
	}

	ctx, span := s.tracer.Start(ctx, "Endorsing")
	defer span.End()
	span.SetAttribute("endotarter.target", target.String())

	err := s.sink.Endorse(ctx, target)
	remaining := len(s.queue.Remaining())
	s.metrics.SetRemaining(remaining)

	attempt := domain.Attempt{Target: target, Remaining: remaining, Err: err}
	switch {
	case err == nil:
		attempt.Outcome = domain.OutcomeEndorsed
	case errors.Is(err, domain.ErrActionRejected):
		attempt.Outcome = domain.OutcomeRejected
	default:
		attempt.Outcome = domain.OutcomeFailed
		span.RecordError(err)
	}
	span.SetAttribute("endotarter.outcome", attempt.Outcome.String())
	s.metrics.ObserveEndorsement(attempt.Outcome.String())

	if attempt.Outcome == domain.OutcomeFailed {
		return attempt, err
	}
	return attempt, nil
}

// Remaining returns the targets still queued.
func (s *Session) Remaining() []domain.Identifier {
	return s.queue.Remaining()
}
