package paramsform

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// PointerEvent is a pointer-down at a terminal cell.
type PointerEvent struct {
	X, Y int
}

// PointerHandler observes pointer-down events.
type PointerHandler func(PointerEvent)

// PointerBus broadcasts every pointer-down of the program to the handlers
// currently subscribed. It belongs to the UI goroutine and is not safe for
// concurrent use.
type PointerBus struct {
	nextID   int
	handlers map[int]PointerHandler
	order    []int
}

// NewPointerBus returns an empty bus.
func NewPointerBus() *PointerBus {
	return &PointerBus{handlers: make(map[int]PointerHandler)}
}

// Subscribe registers h and returns the function that removes it. The
// release function may be called any number of times.
func (b *PointerBus) Subscribe(h PointerHandler) (release func()) {
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.order = append(b.order, id)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		delete(b.handlers, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers ev to the handlers subscribed when Dispatch was called.
// A handler released by an earlier handler in the same dispatch is skipped.
func (b *PointerBus) Dispatch(ev PointerEvent) {
	ids := append([]int(nil), b.order...)
	for _, id := range ids {
		h, ok := b.handlers[id]
		if !ok {
			continue
		}
		h(ev)
	}
}

// Len returns the number of live subscriptions.
func (b *PointerBus) Len() int {
	return len(b.handlers)
}
