package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_StartsLoggedOutFirstLaunch(t *testing.T) {
	st := New()
	s := st.Snapshot()

	require.Equal(t, "", s.User)
	require.False(t, s.LoggedIn)
	require.True(t, s.FirstLaunch)
}

func TestSetAuthState_UpdatesSnapshot(t *testing.T) {
	st := New()

	st.SetAuthState("sub-1", true)
	s := st.Snapshot()
	require.Equal(t, "sub-1", s.User)
	require.True(t, s.LoggedIn)

	st.SetAuthState("", false)
	s = st.Snapshot()
	require.Equal(t, "", s.User)
	require.False(t, s.LoggedIn)
}

func TestSetFirstLaunch_DoesNotTouchAuthFields(t *testing.T) {
	st := New()
	st.SetAuthState("sub-1", true)

	st.SetFirstLaunch(false)
	s := st.Snapshot()
	require.False(t, s.FirstLaunch)
	require.Equal(t, "sub-1", s.User)
	require.True(t, s.LoggedIn)
}

func TestSubscribe_NotifiedSynchronouslyOnEveryChange(t *testing.T) {
	st := New()

	var seen []Session
	unsub := st.Subscribe(func(s Session) { seen = append(seen, s) })
	defer unsub()

	st.SetAuthState("sub-1", true)
	st.SetFirstLaunch(false)

	require.Len(t, seen, 2)
	require.Equal(t, Session{User: "sub-1", LoggedIn: true, FirstLaunch: true}, seen[0])
	require.Equal(t, Session{User: "sub-1", LoggedIn: true, FirstLaunch: false}, seen[1])
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	st := New()

	var n int
	unsub := st.Subscribe(func(Session) { n++ })

	st.SetAuthState("a", true)
	unsub()
	unsub() // safe to call twice
	st.SetAuthState("", false)

	require.Equal(t, 1, n)
}

func TestSubscribe_MultipleObserversAllNotified(t *testing.T) {
	st := New()

	var a, b int
	u1 := st.Subscribe(func(Session) { a++ })
	u2 := st.Subscribe(func(Session) { b++ })
	defer u1()
	defer u2()

	st.SetAuthState("x", true)
	require.Equal(t, 1, a)
	require.Equal(t, 1, b)
}
