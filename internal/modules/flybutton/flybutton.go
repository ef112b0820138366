// Package flybutton turns Space, ArrowUp, gamepad button 0 or a touch on the
// on-screen button into upward thrust for the avatar. While the demo runs an
// autopilot presses the button instead.
package flybutton

import (
	"image"
	"image/color"

	"github.com/vovakirdan/skyscroll/internal/core"
	"github.com/vovakirdan/skyscroll/internal/engine"
	"github.com/vovakirdan/skyscroll/internal/modules/contract"
	"github.com/vovakirdan/skyscroll/internal/registry"
	"github.com/vovakirdan/skyscroll/internal/sprite"
)

// ID is the module identifier.
const ID = "flybutton"

const (
	label        = "FLY"
	labelSize    = 30
	cornerRadius = 10

	// lookahead is how far ahead, in ms, the autopilot extrapolates the
	// avatar's vertical motion.
	lookahead = 250.0
)

func init() {
	registry.Register(registry.Module{
		ID:     ID,
		Title:  "Fly button",
		Order:  30,
		Attach: attach,
	})
}

// Button is the fly button state. It implements contract.Thrust.
type Button struct {
	rect    core.Rect
	state   engine.StateView
	avatar  contract.Avatar
	targetY float64

	last    core.InputState
	pressed bool

	up, down *image.NRGBA
}

var _ contract.Thrust = (*Button)(nil)

func attach(env *registry.Env) error {
	cfg := env.Engine.Config()
	ui := env.Config.UI.FlyButton
	b := &Button{
		rect:    core.NewRect(ui.Margin, cfg.ViewportHeight-ui.Height-ui.Margin, ui.Width, ui.Height),
		state:   env.Engine.State(),
		targetY: float64(cfg.ViewportHeight) / 2,
		last:    core.NewInputState(),
	}

	var err error
	if b.up, err = b.render(core.Palette.ButtonBg); err != nil {
		return err
	}
	if b.down, err = b.render(core.Palette.ButtonPressed); err != nil {
		return err
	}

	registry.Provide[contract.Thrust](env, b)

	bus := env.Bus()
	// The avatar attaches after this module, so resolve it once every
	// module is in place.
	engine.On(bus, func(engine.Init) {
		if a, err := registry.Lookup[contract.Avatar](env); err == nil {
			b.avatar = a
		} else if env.Engine.Config().Demo {
			env.Logger.Warn("demo autopilot disabled", "error", err)
		}
	})
	engine.On(bus, func(ev engine.InputChanged) {
		b.last = ev.Input
		b.update()
	})
	engine.On(bus, func(engine.StateChanged) { b.update() })
	engine.On(bus, func(ev engine.DrawStaticUI) {
		img := b.up
		if b.Pressed() {
			img = b.down
		}
		core.Blit(ev.Surface, img, b.rect.X, b.rect.Y)
	})
	return nil
}

// Pressed reports whether thrust is engaged.
func (b *Button) Pressed() bool {
	if b.state.Phase() == engine.PhaseDemoing {
		return b.autopilot()
	}
	return b.pressed
}

func (b *Button) update() {
	in := b.last
	held := in.KeyDown(core.KeySpace) ||
		in.KeyDown(core.KeyArrowUp) ||
		in.Gamepad.Pressed(0) ||
		len(in.TouchesInArea(b.rect.X, b.rect.Y, b.rect.W, b.rect.H)) > 0
	b.pressed = b.state.Phase() == engine.PhasePlaying && held
}

// autopilot thrusts whenever the avatar's centre, extrapolated a little into
// the future, sits below the middle of the world.
func (b *Button) autopilot() bool {
	if b.avatar == nil {
		return false
	}
	body := b.avatar.Body()
	centre := float64(body.Y)
	if body.Map != nil {
		centre += float64(body.Map.Height) / 2
	}
	return centre+b.avatar.VelocityY()*lookahead > b.targetY
}

func (b *Button) render(bg color.RGBA) (*image.NRGBA, error) {
	img := sprite.RoundedRect(b.rect.W, b.rect.H, cornerRadius, bg)
	text, err := sprite.Text(label, labelSize, core.Palette.ButtonText)
	if err != nil {
		return nil, err
	}
	sprite.DrawCentered(img, text, b.rect.W/2, b.rect.H/2)
	return img, nil
}
