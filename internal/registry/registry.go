// Package registry provides a global catalog of gameplay modules.
// Modules register themselves in init() functions, allowing the hosts to
// discover and attach them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/skyscroll/internal/config"
	"github.com/vovakirdan/skyscroll/internal/engine"
)

var (
	// ErrUnknownModule is returned when a module ID is not registered.
	ErrUnknownModule = errors.New("registry: unknown module")
	// ErrMissingService is returned by Lookup when no module provided the type.
	ErrMissingService = errors.New("registry: missing service")
)

// Module is a unit of gameplay that plugs into the engine through the bus.
// Attach subscribes handlers and may add objects; it runs once per engine.
type Module struct {
	// ID is a unique identifier used in config and CLI output (e.g. "bird").
	ID string

	// Title is a human-readable name.
	Title string

	// Order fixes attach order, and with it bus registration order.
	// Lower values attach first and therefore draw first.
	Order int

	Attach func(env *Env) error
}

// Env is what a module sees while attaching.
type Env struct {
	Engine     *engine.Engine
	Config     config.Config
	Logger     *log.Logger
	Difficulty *config.DifficultyManager

	services map[reflect.Type]any
}

// NewEnv bundles the engine with its configuration for attaching modules.
func NewEnv(e *engine.Engine, cfg config.Config, logger *log.Logger) *Env {
	if logger == nil {
		logger = e.Logger()
	}
	return &Env{
		Engine:     e,
		Config:     cfg,
		Logger:     logger,
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
		services:   make(map[reflect.Type]any),
	}
}

// Bus is shorthand for env.Engine.Bus().
func (env *Env) Bus() *engine.Bus { return env.Engine.Bus() }

// Provide publishes a value under type T for modules attached later.
func Provide[T any](env *Env, v T) {
	env.services[reflect.TypeFor[T]()] = v
}

// Lookup returns the value provided for type T.
func Lookup[T any](env *Env) (T, error) {
	var zero T
	t := reflect.TypeFor[T]()
	v, ok := env.services[t]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrMissingService, t)
	}
	return v.(T), nil
}

// Catalog holds registered modules.
type Catalog struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{modules: make(map[string]Module)}
}

// Register adds a module to the catalog.
// Panics if the module is incomplete or its ID is already registered.
func (c *Catalog) Register(m Module) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if m.ID == "" || m.Attach == nil {
		panic(fmt.Sprintf("registry: module %q is missing an ID or Attach", m.ID))
	}
	if _, exists := c.modules[m.ID]; exists {
		panic(fmt.Sprintf("registry: module %q already registered", m.ID))
	}
	c.modules[m.ID] = m
}

// List returns every registered module in attach order.
func (c *Catalog) List() []Module {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Module, 0, len(c.modules))
	for _, m := range c.modules {
		result = append(result, m)
	}
	sortModules(result)
	return result
}

// Get returns the module registered under id.
func (c *Catalog) Get(id string) (Module, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.modules[id]
	if !ok {
		return Module{}, fmt.Errorf("%w %q", ErrUnknownModule, id)
	}
	return m, nil
}

// Exists checks if a module with the given ID is registered.
func (c *Catalog) Exists(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.modules[id]
	return ok
}

// Attach attaches the named modules, or every module when ids is empty, in
// Order. It stops at the first failure.
func (c *Catalog) Attach(env *Env, ids ...string) ([]Module, error) {
	var selected []Module
	if len(ids) == 0 {
		selected = c.List()
	} else {
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			m, err := c.Get(id)
			if err != nil {
				return nil, err
			}
			selected = append(selected, m)
		}
		sortModules(selected)
	}

	for i, m := range selected {
		if err := m.Attach(env); err != nil {
			return selected[:i], fmt.Errorf("registry: attach %s: %w", m.ID, err)
		}
		env.Logger.Debug("module attached", "module", m.ID, "order", m.Order)
	}
	return selected, nil
}

func sortModules(ms []Module) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Order != ms[j].Order {
			return ms[i].Order < ms[j].Order
		}
		return ms[i].ID < ms[j].ID
	})
}

var defaultCatalog = NewCatalog()

// Register adds a module to the default catalog.
// Typically called from a module's init() function.
func Register(m Module) { defaultCatalog.Register(m) }

// List returns the modules of the default catalog in attach order.
func List() []Module { return defaultCatalog.List() }

// Get returns a module of the default catalog.
func Get(id string) (Module, error) { return defaultCatalog.Get(id) }

// Exists checks the default catalog.
func Exists(id string) bool { return defaultCatalog.Exists(id) }

// Attach attaches modules from the default catalog.
func Attach(env *Env, ids ...string) ([]Module, error) { return defaultCatalog.Attach(env, ids...) }
