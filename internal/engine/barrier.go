package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// LoadFunc performs asynchronous module setup such as loading sprites.
type LoadFunc func(ctx context.Context) error

// Barrier joins the loaders registered during Init.
type Barrier struct {
	group  *errgroup.Group
	ctx    context.Context
	logger *log.Logger

	mu     sync.Mutex
	names  []string
	failed []string
}

func newBarrier(ctx context.Context, logger *log.Logger) *Barrier {
	g, gctx := errgroup.WithContext(ctx)
	return &Barrier{group: g, ctx: gctx, logger: logger}
}

// WaitFor starts an essential loader.
func (b *Barrier) WaitFor(name string, fn LoadFunc) {
	b.track(name)
	b.group.Go(func() error {
		if err := fn(b.ctx); err != nil {
			b.markFailed(name)
			return fmt.Errorf("engine: load %s: %w", name, err)
		}
		return nil
	})
}

// WaitForOptional starts a loader whose failure only disables its module.
func (b *Barrier) WaitForOptional(name string, fn LoadFunc) {
	b.track(name)
	b.group.Go(func() error {
		if err := fn(b.ctx); err != nil {
			b.markFailed(name)
			b.logger.Warn("optional loader failed", "loader", name, "error", err)
		}
		return nil
	})
}

// Wait blocks until every loader has finished and returns the first essential
// failure.
func (b *Barrier) Wait() error {
	return b.group.Wait()
}

// Loaders returns the names of every registered loader.
func (b *Barrier) Loaders() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.names...)
}

// Failed returns the names of loaders that returned an error.
func (b *Barrier) Failed() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.failed...)
}

func (b *Barrier) track(name string) {
	b.mu.Lock()
	b.names = append(b.names, name)
	b.mu.Unlock()
}

func (b *Barrier) markFailed(name string) {
	b.mu.Lock()
	b.failed = append(b.failed, name)
	b.mu.Unlock()
}
