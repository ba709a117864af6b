package identity

import "sync"

// Hub is a tiny synchronous event channel: subscribers are invoked in-line
// by Emit. A Provider implementation embeds one to satisfy Subscribe.
type Hub struct {
	mu   sync.Mutex
	subs map[int]func(Event)
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(Event))}
}

func (h *Hub) Subscribe(fn func(Event)) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	h.subs[id] = fn
	return &hubSubscription{hub: h, id: id}
}

// Emit delivers e to every active subscriber. Callbacks run outside the
// hub lock so they may cancel their own subscription.
func (h *Hub) Emit(e Event) {
	h.mu.Lock()
	fns := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

type hubSubscription struct {
	hub  *Hub
	id   int
	once sync.Once
}

func (s *hubSubscription) Cancel() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs, s.id)
		s.hub.mu.Unlock()
	})
}
