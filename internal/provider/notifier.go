package provider

import (
	"strings"
	"sync"

	"pets-provider/internal/domain/changes"
)

// Observer recibe los cambios de una URI registrada.
type Observer func(c changes.Change)

type registration struct {
	uri         string
	descendants bool
	observer    Observer
}

// Notifier reparte cambios a observers por URI.
// - un cambio en la URI exacta siempre notifica
// - un cambio en una fila notifica a la colección solo si se registró con descendants
// - un cambio en la colección notifica también a los observers de sus filas
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	regs   map[int]registration
}

func NewNotifier() *Notifier {
	return &Notifier{regs: make(map[int]registration)}
}

// Register devuelve una función para desregistrar. Es idempotente.
func (n *Notifier) Register(uri string, descendants bool, obs Observer) func() {
	uri = strings.TrimRight(strings.TrimSpace(uri), "/")

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.regs[id] = registration{uri: uri, descendants: descendants, observer: obs}
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.regs, id)
		n.mu.Unlock()
	}
}

// NotifyChange llama a los observers fuera del lock, en el goroutine actual.
func (n *Notifier) NotifyChange(c changes.Change) {
	n.mu.RLock()
	targets := make([]Observer, 0)
	for _, r := range n.regs {
		if r.observer != nil && interested(r, c.URI) {
			targets = append(targets, r.observer)
		}
	}
	n.mu.RUnlock()

	for _, obs := range targets {
		obs(c)
	}
}

func interested(r registration, uri string) bool {
	switch {
	case r.uri == uri:
		return true
	case strings.HasPrefix(uri, r.uri+"/"):
		return r.descendants
	case strings.HasPrefix(r.uri, uri+"/"):
		return true
	default:
		return false
	}
}
