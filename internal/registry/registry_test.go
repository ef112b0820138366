package registry

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/skyscroll/internal/config"
	"github.com/vovakirdan/skyscroll/internal/engine"
)

type greeter interface{ Greet() string }

type hello struct{}

func (hello) Greet() string { return "hello" }

func newEnv() *Env {
	logger := log.New(io.Discard)
	e := engine.New(engine.DefaultConfig(), engine.WithLogger(logger))
	return NewEnv(e, config.DefaultConfig(), logger)
}

func TestAttachOrder(t *testing.T) {
	c := NewCatalog()
	var order []string
	add := func(id string, ord int) {
		c.Register(Module{ID: id, Order: ord, Attach: func(*Env) error {
			order = append(order, id)
			return nil
		}})
	}
	add("ui", 90)
	add("world", 10)
	add("avatar", 40)
	add("alpha", 40)

	if _, err := c.Attach(newEnv()); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	want := []string{"world", "alpha", "avatar", "ui"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}

	order = nil
	if _, err := c.Attach(newEnv(), "ui", "world", "ui"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(order, []string{"world", "ui"}) {
		t.Fatalf("filtered order = %v", order)
	}
}

func TestAttachErrors(t *testing.T) {
	c := NewCatalog()
	boom := errors.New("boom")
	c.Register(Module{ID: "ok", Order: 1, Attach: func(*Env) error { return nil }})
	c.Register(Module{ID: "bad", Order: 2, Attach: func(*Env) error { return boom }})

	if _, err := c.Attach(newEnv(), "ghost"); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("unknown module error = %v", err)
	}
	attached, err := c.Attach(newEnv())
	if !errors.Is(err, boom) {
		t.Fatalf("attach error = %v", err)
	}
	if len(attached) != 1 || attached[0].ID != "ok" {
		t.Fatalf("attached before failure = %v", attached)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		m    Module
	}{
		{"missing id", Module{Attach: func(*Env) error { return nil }}},
		{"missing attach", Module{ID: "x"}},
		{"duplicate", Module{ID: "dup", Attach: func(*Env) error { return nil }}},
	}
	c := NewCatalog()
	c.Register(Module{ID: "dup", Attach: func(*Env) error { return nil }})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("Register did not panic")
				}
			}()
			c.Register(tt.m)
		})
	}
}

func TestProvideLookup(t *testing.T) {
	env := newEnv()
	if _, err := Lookup[greeter](env); !errors.Is(err, ErrMissingService) {
		t.Fatalf("Lookup before Provide = %v", err)
	}
	Provide[greeter](env, hello{})
	g, err := Lookup[greeter](env)
	if err != nil {
		t.Fatal(err)
	}
	if g.Greet() != "hello" {
		t.Fatalf("Greet = %q", g.Greet())
	}
}
