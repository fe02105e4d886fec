package session_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/core/ports"
	"go.trai.ch/endotarter/internal/core/ports/mocks"
	"go.trai.ch/endotarter/internal/engine/session"
	"go.uber.org/mock/gomock"
)

// sliceQueue is an in-memory Queue.
type sliceQueue struct {
	items []domain.Identifier
	taken []domain.Identifier
}

func (q *sliceQueue) TakeNext() (domain.Identifier, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	next := q.items[0]
	q.items = q.items[1:]
	q.taken = append(q.taken, next)
	return next, true
}

func (q *sliceQueue) Remaining() []domain.Identifier {
	return slices.Clone(q.items)
}

type sessionTestMocks struct {
	sink    *mocks.MockActionSink
	metrics *mocks.MockMetrics
	span    *mocks.MockSpan
}

func setupSessionTest(t *testing.T, targets ...domain.Identifier) (*session.Session, *sliceQueue, sessionTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := sessionTestMocks{
		sink:    mocks.NewMockActionSink(ctrl),
		metrics: mocks.NewMockMetrics(ctrl),
		span:    mocks.NewMockSpan(ctrl),
	}

	tracer := mocks.NewMockTracer(ctrl)
	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	tracer.EXPECT().Start(gomock.Any(), "Endorsing").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()

	q := &sliceQueue{items: targets}
	return session.New(q, m.sink, tracer, m.metrics), q, m
}

func TestSession_EndorseNext(t *testing.T) {
	s, q, m := setupSessionTest(t, "nation_1", "nation_2")
	ctx := context.Background()

	m.sink.EXPECT().Endorse(gomock.Any(), domain.Identifier("nation_1")).Return(nil)
	m.metrics.EXPECT().SetRemaining(1)
	m.metrics.EXPECT().ObserveEndorsement("endorsed")

	attempt, err := s.EndorseNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Attempt{Target: "nation_1", Outcome: domain.OutcomeEndorsed, Remaining: 1}, attempt)
	assert.Equal(t, []domain.Identifier{"nation_2"}, s.Remaining())
	assert.Equal(t, []domain.Identifier{"nation_1"}, q.taken)
}

func TestSession_Rejected(t *testing.T) {
	s, q, m := setupSessionTest(t, "nation_1", "nation_2")

	rejection := errors.Join(domain.ErrActionRejected, errors.New("already endorsed"))
	m.sink.EXPECT().Endorse(gomock.Any(), domain.Identifier("nation_1")).Return(rejection)
	m.metrics.EXPECT().SetRemaining(1)
	m.metrics.EXPECT().ObserveEndorsement("rejected")

	attempt, err := s.EndorseNext(context.Background())
	require.NoError(t, err, "a rejection does not stop the run")
	assert.Equal(t, domain.OutcomeRejected, attempt.Outcome)
	assert.ErrorIs(t, attempt.Err, domain.ErrActionRejected)
	assert.Equal(t, []domain.Identifier{"nation_1"}, q.taken, "rejected target stays consumed")
}

func TestSession_Failed(t *testing.T) {
	s, _, m := setupSessionTest(t, "nation_1")

	failure := errors.Join(domain.ErrSiteRequestFailed, errors.New("502"))
	m.sink.EXPECT().Endorse(gomock.Any(), domain.Identifier("nation_1")).Return(failure)
	m.metrics.EXPECT().SetRemaining(0)
	m.metrics.EXPECT().ObserveEndorsement("failed")
	m.span.EXPECT().RecordError(failure)

	attempt, err := s.EndorseNext(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSiteRequestFailed)
	assert.Equal(t, domain.OutcomeFailed, attempt.Outcome)
	assert.Equal(t, domain.Identifier("nation_1"), attempt.Target)
}

func TestSession_Exhausted(t *testing.T) {
	s, _, m := setupSessionTest(t)

	m.metrics.EXPECT().SetRemaining(0)

	attempt, err := s.EndorseNext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeExhausted, attempt.Outcome)
	assert.Empty(t, attempt.Target)
}
