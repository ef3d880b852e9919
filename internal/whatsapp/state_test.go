package whatsapp

import (
	"sync"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	store := NewSessionStore()

	s := store.GetOrCreate("u1")
	if s.State != StateNew {
		t.Errorf("State = %q, want new", s.State)
	}
	if s.UserID != "u1" {
		t.Errorf("UserID = %q", s.UserID)
	}

	store.Update("u1", func(s *Session) { s.Score = 3 })
	if got := store.GetOrCreate("u1"); got.Score != 3 {
		t.Errorf("Score = %d, want 3 (same session)", got.Score)
	}
}

func TestUpdateIsAtomicUnderConcurrency(t *testing.T) {
	store := NewSessionStore()
	const n = 200

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update("u1", func(s *Session) {
				s.Score++
				s.QuestionIndex++
			})
		}()
	}
	wg.Wait()

	got := store.GetOrCreate("u1")
	if got.Score != n {
		t.Errorf("Score = %d, want %d (lost updates)", got.Score, n)
	}
	if got.QuestionIndex != n {
		t.Errorf("QuestionIndex = %d, want %d", got.QuestionIndex, n)
	}
}

func TestCompletedSessionIsRemoved(t *testing.T) {
	store := NewSessionStore()

	store.Update("u1", func(s *Session) { s.State = StateInProgress })
	after := store.Update("u1", func(s *Session) {
		s.Score = 1
		s.State = StateCompleted
	})

	if after.Score != 1 {
		t.Errorf("returned copy Score = %d, want 1", after.Score)
	}
	if len(store.Snapshot()) != 0 {
		t.Error("completed session must be removed from the store")
	}

	// The user starts over from scratch.
	if got := store.GetOrCreate("u1"); got.State != StateNew {
		t.Errorf("State = %q, want new after completion", got.State)
	}
}

func TestDelete(t *testing.T) {
	store := NewSessionStore()
	store.Update("u1", func(s *Session) { s.State = StateAwaitingStart })
	store.Delete("u1")

	if len(store.Snapshot()) != 0 {
		t.Error("session not deleted")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewSessionStore()
	store.Update("u1", func(s *Session) { s.Score = 1 })

	snap := store.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("got %d sessions, want 1", len(snap))
	}
	snap[0].Score = 99

	if got := store.GetOrCreate("u1"); got.Score != 1 {
		t.Error("mutating a snapshot must not touch the store")
	}
}
