package conversation

import "sync"

// State is the pending conversational mode of a chat.
type State int

const (
	StateNone State = iota
	StateAwaitingGoal
	StateAwaitingProgress
)

func (s State) String() string {
	switch s {
	case StateAwaitingGoal:
		return "awaiting_goal"
	case StateAwaitingProgress:
		return "awaiting_progress"
	default:
		return "none"
	}
}

// StateArmer lets batch jobs put a chat into a pending state.
type StateArmer interface {
	Set(chatID int64, s State)
}

// StateStore holds the in-memory pending state per chat. It is not persisted.
type StateStore struct {
	mu    sync.RWMutex
	state map[int64]State
}

// NewStateStore returns an empty store.
func NewStateStore() *StateStore {
	return &StateStore{state: make(map[int64]State)}
}

// Get returns the pending state for a chat, StateNone if there is none.
func (s *StateStore) Get(chatID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state[chatID]
}

// Set replaces the pending state for a chat.
func (s *StateStore) Set(chatID int64, st State) {
	if st == StateNone {
		s.Clear(chatID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[chatID] = st
}

// Clear drops the pending state for a chat.
func (s *StateStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.state, chatID)
}
