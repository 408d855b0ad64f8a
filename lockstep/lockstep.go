// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lockstep wraps a [tickqueue.Queue] for use as a shared per-tick
// input buffer in a lockstep simulation. The wrapper owns the locking,
// logging, and metrics the bare container intentionally leaves out, so the
// container's hot path stays allocation- and branch-minimal.
package lockstep

import (
	"errors"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/tickqueue/tick"
	"github.com/ava-labs/tickqueue/tickqueue"
)

type Config struct {
	// InitialTick is the first tick the buffer accepts after creation.
	InitialTick uint32 `json:"initialTick"`

	// SoftCap is the buffered-input count above which the buffer logs a
	// warning. A value <= 0 disables the warning.
	SoftCap int `json:"softCap"`
}

func NewDefaultConfig() Config {
	return Config{
		SoftCap: 1_024, // ~17s of inputs at 60 ticks/s
	}
}

// Buffer is a synchronized, observable per-tick input buffer. All
// continuity and ordering guarantees come from the wrapped queue; Buffer
// only adds external mutual exclusion and instrumentation.
type Buffer[T any] struct {
	log     logging.Logger
	metrics *metrics
	config  Config

	lock  sync.Mutex
	queue *tickqueue.Queue[T]
}

func New[T any](log logging.Logger, registry prometheus.Registerer, config Config) (*Buffer[T], error) {
	metrics, err := newMetrics(registry)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{
		log:     log,
		metrics: metrics,
		config:  config,
		queue:   tickqueue.New[T](tick.ID(config.InitialTick)),
	}, nil
}

// AddInput buffers [item] at [id]. Inputs that break tick continuity are
// rejected, counted, and logged; the buffer is left unchanged.
func (b *Buffer[T]) AddInput(id tick.ID, item T) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if err := b.queue.Push(id, item); err != nil {
		wrongTick := &tickqueue.WrongTickError{}
		if errors.As(err, &wrongTick) {
			b.metrics.rejected.Inc()
			b.log.Warn("input rejected",
				zap.Stringer("expected", wrongTick.Expected),
				zap.Stringer("encountered", wrongTick.Encountered),
			)
		}
		return err
	}

	b.metrics.accepted.Inc()
	length := b.queue.Len()
	b.metrics.buffered.Set(float64(length))
	if b.config.SoftCap > 0 && length > b.config.SoftCap {
		b.log.Warn("buffered inputs exceed soft cap",
			zap.Int("buffered", length),
			zap.Int("softCap", b.config.SoftCap),
		)
	}
	return nil
}

// CollectAuthoritative removes up to [count] inputs from the front for the
// simulation to apply, returning the tick of the first input. Returns false
// if nothing is buffered.
func (b *Buffer[T]) CollectAuthoritative(count int) (tick.ID, []T, bool) {
	b.lock.Lock()
	defer b.lock.Unlock()

	first, items, ok := b.queue.Take(count)
	if ok {
		b.metrics.collected.Add(float64(len(items)))
		b.metrics.buffered.Set(float64(b.queue.Len()))
	}
	return first, items, ok
}

// TrimConfirmed drops all inputs older than [id], typically the tick the
// remote authority has confirmed.
func (b *Buffer[T]) TrimConfirmed(id tick.ID) {
	b.lock.Lock()
	defer b.lock.Unlock()

	before := b.queue.Len()
	b.queue.DiscardUpTo(id)
	if dropped := before - b.queue.Len(); dropped > 0 {
		b.metrics.trimmed.Add(float64(dropped))
		b.metrics.buffered.Set(float64(b.queue.Len()))
		b.log.Debug("confirmed inputs trimmed",
			zap.Int("dropped", dropped),
			zap.Stringer("upTo", id),
		)
	}
}

// Reset empties the buffer and restarts the sequence at [initial], e.g.
// after a session restart or resync.
func (b *Buffer[T]) Reset(initial tick.ID) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.queue.Clear(initial)
	b.metrics.buffered.Set(0)
	b.log.Info("input buffer reset", zap.Stringer("initialTick", initial))
}

// Buffered returns the number of inputs currently held.
func (b *Buffer[T]) Buffered() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.queue.Len()
}

// NextTick returns the tick the next added input must carry.
func (b *Buffer[T]) NextTick() tick.ID {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.queue.ExpectedTick()
}
