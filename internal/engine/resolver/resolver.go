// Package resolver reconciles the nations dump, the cache and the live membership
// queries into the queue of nations still to endorse.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/endotarter/internal/core/domain"
	"go.trai.ch/endotarter/internal/core/ports"
	"go.trai.ch/endotarter/internal/engine/export"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// State is the lifecycle position of a Resolver.
type State uint8

const (
	// StateIdle means no endorsed set is loaded.
	StateIdle State = iota
	// StateEndorsedReady means the endorsed set is resolved.
	StateEndorsedReady
	// StateEligibleReady means the eligible queue is computed and may be consumed.
	StateEligibleReady
	// StateExhausted means the eligible queue has been fully consumed.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEndorsedReady:
		return "endorsed-ready"
	case StateEligibleReady:
		return "eligible-ready"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Options carries the per-run settings of a Resolver.
type Options struct {
	Profile   domain.Profile
	CachePath string
	Cutoff    domain.DailyCutoff
	Mode      domain.RefreshMode
	Export    domain.ExportLocation
	FullScan  bool
}

// OptionsFromConfig derives resolver options from the runtime configuration.
func OptionsFromConfig(cfg *domain.Config) Options {
	return Options{
		Profile:   cfg.Profile,
		CachePath: cfg.CachePath,
		Cutoff:    cfg.Cutoff,
		Mode:      cfg.Mode,
		Export:    cfg.Export,
		FullScan:  cfg.FullScan,
	}
}

// Resolver owns the endorsed set and the eligible queue for one run.
// It is not safe for concurrent use.
type Resolver struct {
	opts       Options
	store      ports.CacheStore
	exports    ports.ExportSource
	membership ports.MembershipSource
	tracer     ports.Tracer
	clock      clockwork.Clock

	state    State
	record   *domain.CacheRecord
	endorsed domain.IdentifierSet
	queue    []domain.Identifier
}

// New creates a Resolver in the idle state.
func New(
	opts Options,
	store ports.CacheStore,
	exports ports.ExportSource,
	membership ports.MembershipSource,
	tracer ports.Tracer,
	clock clockwork.Clock,
) *Resolver {
	return &Resolver{
		opts:       opts,
		store:      store,
		exports:    exports,
		membership: membership,
		tracer:     tracer,
		clock:      clock,
		state:      StateIdle,
	}
}

// State returns the current lifecycle state.
func (r *Resolver) State() State {
	return r.state
}

// ResolveEndorsed loads the endorsed set from the cache, rebuilding it from the dump
// when the cache is missing or stale and dump updates are enabled.
func (r *Resolver) ResolveEndorsed(ctx context.Context) (err error) {
	if r.state != StateIdle {
		return r.outOfOrder("ResolveEndorsed")
	}

	ctx, span := r.tracer.Start(ctx, "Resolving Endorsed")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	record, err := r.store.Load(r.opts.CachePath)
	if err != nil {
		return err
	}

	now := r.clock.Now()
	switch {
	case r.opts.Mode == domain.ModeCacheOnly && record == nil:
		return zerr.With(zerr.Wrap(domain.ErrMissingCache, "resolve endorsed"), "path", r.opts.CachePath)
	case r.opts.Mode == domain.ModeExport && (record == nil || !record.IsFresh(now, r.opts.Cutoff)):
		span.SetAttribute("endotarter.cache.source", "dump")
		return r.rebuildFromExport(ctx, record, now)
	default:
		span.SetAttribute("endotarter.cache.source", "cache")
		values, _ := record.Get(domain.EndorsedCacheKey)
		r.record = record
		r.endorsed = domain.CanonicalSet(values)
		span.SetAttribute("endotarter.endorsed", r.endorsed.Len())
		r.state = StateEndorsedReady
		return nil
	}
}

func (r *Resolver) rebuildFromExport(ctx context.Context, previous *domain.CacheRecord, now time.Time) (err error) {
	_, span := r.tracer.Start(ctx, "Scanning Dump")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	doc, err := r.exports.Open(ctx, r.opts.Export)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := doc.Close(); closeErr != nil && err == nil {
			err = zerr.With(errors.Join(domain.ErrExportUnavailable, closeErr), "path", r.opts.Export.Path)
		}
	}()

	res, err := export.NewReader(r.opts.FullScan).Extract(doc, r.opts.Profile.Region, r.opts.Profile.Nation)
	if err != nil {
		return err
	}
	span.SetAttribute("endotarter.dump.scanned", res.Scanned)
	span.SetAttribute("endotarter.dump.region_records", res.RegionRecords)
	span.SetAttribute("endotarter.dump.stopped_early", res.StoppedEarly)

	var base domain.CacheRecord
	if previous != nil {
		base = *previous
	}
	record := domain.NewCacheRecord(now, base.Entries()).With(domain.EndorsedCacheKey, res.Endorsed.Strings())
	if err := r.store.Save(r.opts.CachePath, record); err != nil {
		return err
	}

	r.record = &record
	r.endorsed = res.Endorsed
	r.state = StateEndorsedReady
	return nil
}

// ComputeEligible queries the live membership lists and builds the queue of region
// World Assembly members that are not yet endorsed.
func (r *Resolver) ComputeEligible(ctx context.Context) (err error) {
	if r.state != StateEndorsedReady {
		return r.outOfOrder("ComputeEligible")
	}

	ctx, span := r.tracer.Start(ctx, "Computing Eligible")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	var wa, region domain.IdentifierSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		members, err := r.membership.WorldAssemblyMembers(gctx)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrLiveQuery, err), "query", "wa_members")
		}
		wa = members
		return nil
	})
	g.Go(func() error {
		members, err := r.membership.RegionMembers(gctx)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrLiveQuery, err), "query", "region_members")
		}
		region = members
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	r.queue = wa.Intersect(region).Difference(r.endorsed).Sorted()
	span.SetAttribute("endotarter.eligible", len(r.queue))

	if len(r.queue) == 0 {
		r.state = StateExhausted
	} else {
		r.state = StateEligibleReady
	}
	return nil
}

// TakeNext pops the next target and marks it as endorsed before returning it.
// It reports false once the queue is empty.
func (r *Resolver) TakeNext() (domain.Identifier, bool) {
	if r.state != StateEligibleReady || len(r.queue) == 0 {
		if r.state == StateEligibleReady {
			r.state = StateExhausted
		}
		return "", false
	}

	next := r.queue[0]
	r.queue = r.queue[1:]
	r.endorsed.Add(next)
	if len(r.queue) == 0 {
		r.state = StateExhausted
	}
	return next, true
}

// Remaining returns a snapshot of the targets still queued.
func (r *Resolver) Remaining() []domain.Identifier {
	return slices.Clone(r.queue)
}

// Endorsed returns a snapshot of the endorsed set.
func (r *Resolver) Endorsed() domain.IdentifierSet {
	if r.endorsed == nil {
		return domain.NewIdentifierSet()
	}
	return r.endorsed.Clone()
}

// Commit persists the endorsed set stamped with the current time and returns
// the resolver to the idle state.
func (r *Resolver) Commit(ctx context.Context) (err error) {
	if r.state == StateIdle {
		return r.outOfOrder("Commit")
	}

	_, span := r.tracer.Start(ctx, "Committing Cache")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	var entries map[string][]string
	if r.record != nil {
		entries = r.record.Entries()
	}
	record := domain.NewCacheRecord(r.clock.Now(), entries).With(domain.EndorsedCacheKey, r.endorsed.Strings())
	if err := r.store.Save(r.opts.CachePath, record); err != nil {
		return err
	}
	span.SetAttribute("endotarter.endorsed", r.endorsed.Len())

	r.record = nil
	r.endorsed = nil
	r.queue = nil
	r.state = StateIdle
	return nil
}

func (r *Resolver) outOfOrder(op string) error {
	err := zerr.Wrap(domain.ErrResolverState, op)
	return zerr.With(err, "state", r.state.String())
}
