package engine

import (
	"iter"
	"slices"
	"time"

	"github.com/vovakirdan/skyscroll/internal/core"
)

// GameObject is anything that lives in the world. Implementations must be
// pointer types so they can be used as registry keys.
type GameObject interface {
	Kind() string
}

// Ticker objects are advanced once per simulation tick.
type Ticker interface {
	Tick(dt time.Duration)
}

// Drawer objects paint themselves in world coordinates shifted by viewportX.
type Drawer interface {
	Draw(dst core.Surface, viewportX int)
}

// Expiring objects are removed once the viewport reaches AutoRemoveAt.
type Expiring interface {
	AutoRemoveAt() int
}

// Persistent objects survive Reset.
type Persistent interface {
	Persistent() bool
}

// Objects is the set of live game objects, kept in insertion order.
type Objects struct {
	order []GameObject
	live  map[GameObject]struct{}
}

// NewObjects creates an empty registry.
func NewObjects() *Objects {
	return &Objects{live: make(map[GameObject]struct{})}
}

// Add registers obj. Adding an object that is already present does nothing.
func (o *Objects) Add(obj GameObject) {
	if obj == nil {
		return
	}
	if _, ok := o.live[obj]; ok {
		return
	}
	o.live[obj] = struct{}{}
	o.order = append(o.order, obj)
}

// Delete removes obj if present.
func (o *Objects) Delete(obj GameObject) {
	if _, ok := o.live[obj]; !ok {
		return
	}
	delete(o.live, obj)
	if i := slices.Index(o.order, obj); i >= 0 {
		o.order = slices.Delete(o.order, i, i+1)
	}
}

// Has reports whether obj is registered.
func (o *Objects) Has(obj GameObject) bool {
	_, ok := o.live[obj]
	return ok
}

// Len returns the number of live objects.
func (o *Objects) Len() int {
	return len(o.order)
}

// All iterates a snapshot taken when iteration starts. Objects deleted after
// the snapshot are skipped; objects added after it are not visited.
func (o *Objects) All() iter.Seq[GameObject] {
	return func(yield func(GameObject) bool) {
		snapshot := slices.Clone(o.order)
		for _, obj := range snapshot {
			if !o.Has(obj) {
				continue
			}
			if !yield(obj) {
				return
			}
		}
	}
}

// Count returns how many live objects report the given kind.
func (o *Objects) Count(kind string) int {
	n := 0
	for _, obj := range o.order {
		if obj.Kind() == kind {
			n++
		}
	}
	return n
}

// clear removes every object for which keep returns false.
func (o *Objects) clear(keep func(GameObject) bool) int {
	removed := 0
	kept := o.order[:0]
	for _, obj := range o.order {
		if keep(obj) {
			kept = append(kept, obj)
			continue
		}
		delete(o.live, obj)
		removed++
	}
	clear(o.order[len(kept):])
	o.order = kept
	return removed
}

func isPersistent(obj GameObject) bool {
	p, ok := obj.(Persistent)
	return ok && p.Persistent()
}
