package api

import (
	"sync"
	"time"

	"stresscheck/internal/services"
)

// Session holds one respondent's in-progress answers and, after submission,
// the computed result. Sessions live in memory only: they are discarded on
// reset and on process exit, and are owned by a single respondent at a time.
type Session struct {
	ID        string
	Answers   map[string]services.Option
	Result    *SessionResult
	CreatedAt time.Time
}

// SessionResult is the derived outcome stored after a completed submission.
type SessionResult struct {
	ItemScores     map[string]int
	ScaleScores    map[string]int
	Classification services.Result
	SubmittedAt    time.Time
}

// Store abstracts session persistence for the router.
type Store interface {
	AddSession(s *Session)
	GetSession(id string) *Session
	PutAnswers(id string, answers map[string]services.Option) bool
	SnapshotAnswers(id string) (map[string]services.Option, bool)
	AnsweredCount(id string) (int, bool)
	SetResult(id string, res *SessionResult) bool
	GetResult(id string) (*SessionResult, bool)
	DeleteSession(id string) bool
}

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]*Session{}}
}

func (s *memoryStore) AddSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.Answers == nil {
		sess.Answers = map[string]services.Option{}
	}
	s.sessions[sess.ID] = sess
}

func (s *memoryStore) GetSession(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// PutAnswers merges the given answers into the session, overwriting earlier
// answers for the same item.
func (s *memoryStore) PutAnswers(id string, answers map[string]services.Option) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[id]
	if sess == nil {
		return false
	}
	for itemID, opt := range answers {
		sess.Answers[itemID] = opt
	}
	return true
}

// SnapshotAnswers returns a copy of the session's answers so scoring runs
// over an immutable snapshot.
func (s *memoryStore) SnapshotAnswers(id string) (map[string]services.Option, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sessions[id]
	if sess == nil {
		return nil, false
	}
	out := make(map[string]services.Option, len(sess.Answers))
	for k, v := range sess.Answers {
		out[k] = v
	}
	return out, true
}

func (s *memoryStore) AnsweredCount(id string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sessions[id]
	if sess == nil {
		return 0, false
	}
	return len(sess.Answers), true
}

func (s *memoryStore) SetResult(id string, res *SessionResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[id]
	if sess == nil {
		return false
	}
	sess.Result = res
	return true
}

func (s *memoryStore) GetResult(id string) (*SessionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sessions[id]
	if sess == nil || sess.Result == nil {
		return nil, false
	}
	return sess.Result, true
}

func (s *memoryStore) DeleteSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

var _ Store = (*memoryStore)(nil)
