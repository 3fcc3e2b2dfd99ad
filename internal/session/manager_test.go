package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerPutGetDelete(t *testing.T) {
	m := NewManager(time.Hour)
	s := newTestSession(2)
	m.Put(s)

	got, err := m.Get("sess-1")
	require.NoError(t, err)
	assert.Same(t, s, got)

	m.Delete("sess-1")
	_, err = m.Get("sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.Count())
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager(time.Hour)
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerSweepExpiresIdleSessions(t *testing.T) {
	m := NewManager(30 * time.Minute)

	idle := newTestSession(2)
	m.Put(idle)

	fresh := New("sess-2", "exam-2", "", "student-2", makeQuestions(2), false)
	m.Put(fresh)

	// only the idle session is past the TTL an hour from now after the fresh
	// one is touched again
	removed := m.Sweep(time.Now())
	assert.Equal(t, 0, removed)

	idle.touched = time.Now().Add(-time.Hour)
	removed = m.Sweep(time.Now())
	assert.Equal(t, 1, removed)

	_, err := m.Get("sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get("sess-2")
	assert.NoError(t, err)
}
