package paramsform

import "github.com/rs/zerolog"

// BoundsFunc reports the panel's current on-screen rectangle. ok is false
// while the panel has not been laid out.
type BoundsFunc func() (r Rect, ok bool)

// Panel tracks whether the settings panel is open. While open it keeps one
// subscription on the pointer bus and closes itself when a pointer-down lands
// outside its bounds.
type Panel struct {
	open    bool
	bus     *PointerBus
	bounds  BoundsFunc
	release func()
	log     zerolog.Logger
}

// NewPanel returns a closed panel.
func NewPanel(bus *PointerBus, bounds BoundsFunc, log zerolog.Logger) *Panel {
	return &Panel{bus: bus, bounds: bounds, log: log}
}

// IsOpen reports the visibility state.
func (p *Panel) IsOpen() bool {
	return p.open
}

// Toggle is the action behind the toggle affordance.
func (p *Panel) Toggle() {
	p.setOpen(!p.open)
}

// Unmount closes the panel and drops its subscription.
func (p *Panel) Unmount() {
	p.setOpen(false)
}

// setOpen is the only place the subscription is acquired or released.
func (p *Panel) setOpen(open bool) {
	if p.open == open {
		return
	}
	if p.release != nil {
		p.release()
		p.release = nil
	}
	p.open = open
	if open {
		p.release = p.bus.Subscribe(p.onPointerDown)
	}
	p.log.Debug().Bool("open", open).Msg("panel visibility changed")
}

func (p *Panel) onPointerDown(ev PointerEvent) {
	if p.bounds == nil {
		return
	}
	r, ok := p.bounds()
	if !ok || r.Empty() {
		return
	}
	if r.Contains(ev.X, ev.Y) {
		return
	}
	p.log.Debug().Int("x", ev.X).Int("y", ev.Y).Msg("pointer down outside panel")
	p.setOpen(false)
}
