// Package session holds the in-process record of the current authenticated
// identity, login status, and the first-launch marker. The store is explicit
// state passed to the orchestrator and the navigation gate, with observers
// notified synchronously on every change.
package session

import "sync"

// Session is an immutable snapshot of the store.
//
// Invariant maintained by callers: LoggedIn implies User is non-empty. The
// inverse need not hold during transient recovery states.
type Session struct {
	User        string // subject id, "" when unauthenticated
	LoggedIn    bool
	FirstLaunch bool
}

// Store is the process-wide session holder. Zero value is not usable; use New.
type Store struct {
	mu   sync.RWMutex
	s    Session
	subs map[int]func(Session)
	next int
}

// New returns a store in the pre-launch state: logged out, first launch
// assumed true until Bootstrap resolves the persisted flag.
func New() *Store {
	return &Store{
		s:    Session{FirstLaunch: true},
		subs: make(map[int]func(Session)),
	}
}

// Snapshot returns the current session value.
func (st *Store) Snapshot() Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.s
}

// SetAuthState records the outcome of an authentication transition. No
// validation is performed; callers are responsible for consistency.
func (st *Store) SetAuthState(user string, loggedIn bool) {
	st.mu.Lock()
	st.s.User = user
	st.s.LoggedIn = loggedIn
	snap := st.s
	fns := st.observersLocked()
	st.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// SetFirstLaunch records whether the app is in its first-ever launch.
func (st *Store) SetFirstLaunch(v bool) {
	st.mu.Lock()
	st.s.FirstLaunch = v
	snap := st.s
	fns := st.observersLocked()
	st.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// Subscribe registers fn to be called synchronously with the new snapshot on
// every change. The returned function removes the registration; it is safe to
// call more than once.
func (st *Store) Subscribe(fn func(Session)) (unsubscribe func()) {
	st.mu.Lock()
	id := st.next
	st.next++
	st.subs[id] = fn
	st.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			st.mu.Lock()
			delete(st.subs, id)
			st.mu.Unlock()
		})
	}
}

func (st *Store) observersLocked() []func(Session) {
	fns := make([]func(Session), 0, len(st.subs))
	for _, fn := range st.subs {
		fns = append(fns, fn)
	}
	return fns
}
