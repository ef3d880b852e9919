package whatsapp

import "sync"

const (
	StateNew           = ""
	StateAwaitingStart = "awaiting_start"
	StateInProgress    = "in_progress"
	StateCompleted     = "completed"
)

// Session is one user's quiz progress, keyed by phone number. It lives only
// for the process lifetime; a completed session is removed and the next
// message starts over.
type Session struct {
	UserID        string `json:"user_id"`
	State         string `json:"state"`
	QuestionIndex int    `json:"question_index"`
	Score         int    `json:"score"`
}

// SessionStore owns all sessions. Webhook deliveries for the same user can
// arrive concurrently (provider retries), so every read-modify-write goes
// through Update, which holds the store lock for the whole mutation. Callers
// must not do I/O inside the mutator.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns a copy of the user's session, creating a fresh one in
// StateNew if the user has not been seen.
func (s *SessionStore) GetOrCreate(userID string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{UserID: userID, State: StateNew}
		s.sessions[userID] = sess
	}
	return *sess
}

// Update applies fn to the user's session atomically, creating the session if
// absent. A session left in StateCompleted is removed before the lock is
// released, so the terminal state is never observable by a later event.
// Returns a copy of the post-mutation session.
func (s *SessionStore) Update(userID string, fn func(*Session)) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{UserID: userID, State: StateNew}
		s.sessions[userID] = sess
	}
	fn(sess)
	cp := *sess
	if sess.State == StateCompleted {
		delete(s.sessions, userID)
	}
	return cp
}

func (s *SessionStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Snapshot returns copies of all live sessions, for the admin surface.
func (s *SessionStore) Snapshot() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, *sess)
	}
	return out
}
