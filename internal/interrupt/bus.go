// Package interrupt routes interrupt requests (ctrl+c, SIGINT) to a set of
// listeners that a prompt can temporarily take over.
package interrupt

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// InterruptMsg is delivered to the program when an interrupt arrives from outside the key stream.
type InterruptMsg struct{}

// Listener reacts to an interrupt. The returned command, if any, is run by the program.
type Listener func() tea.Cmd

type entry struct {
	id int
	fn Listener
}

// Bus holds the active interrupt listeners.
type Bus struct {
	mu        sync.Mutex
	listeners []entry
	nextID    int
}

func NewBus() *Bus {
	return &Bus{}
}

// Add registers l and returns a function that removes it again.
func (b *Bus) Add(l Listener) (remove func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.add(l)
	return func() { b.remove(id) }
}

func (b *Bus) add(l Listener) int {
	b.nextID++
	b.listeners = append(b.listeners, entry{id: b.nextID, fn: l})
	return b.nextID
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range b.listeners {
		if e.id == id {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns a snapshot of the active listeners in registration order.
func (b *Bus) Listeners() []Listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Listener, len(b.listeners))
	for i, e := range b.listeners {
		out[i] = e.fn
	}
	return out
}

// Emit calls every active listener and batches their commands.
func (b *Bus) Emit() tea.Cmd {
	listeners := b.Listeners()
	cmds := make([]tea.Cmd, 0, len(listeners))
	for _, l := range listeners {
		cmds = append(cmds, l())
	}
	return tea.Batch(cmds...)
}

// Acquire makes l the only listener until the returned lease is released.
// The displaced listeners are restored, in order, on release.
func (b *Bus) Acquire(l Listener) *Lease {
	b.mu.Lock()
	defer b.mu.Unlock()

	saved := b.listeners
	b.listeners = nil
	id := b.add(l)

	return &Lease{bus: b, id: id, saved: saved}
}

// Lease is exclusive ownership of a Bus.
type Lease struct {
	bus   *Bus
	id    int
	saved []entry
	once  sync.Once
}

// Release removes the owner and restores the listeners it displaced.
// Listeners added while the lease was held are kept. Calling Release again does nothing.
func (l *Lease) Release() {
	l.once.Do(func() {
		l.bus.remove(l.id)

		l.bus.mu.Lock()
		defer l.bus.mu.Unlock()
		l.bus.listeners = append(append([]entry{}, l.saved...), l.bus.listeners...)
	})
}
