package bot

import "sync"

// SessionStore maps chat IDs to each user's selected group. It lives in
// memory only; users re-pick a group after a restart. The store is owned
// by the transport layer and handed to handlers explicitly, never held
// as package state.
type SessionStore struct {
	mu     sync.RWMutex
	groups map[int64]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{groups: make(map[int64]string)}
}

// Group returns the schedule URL the chat has selected, if any.
func (s *SessionStore) Group(chatID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	url, ok := s.groups[chatID]
	return url, ok
}

// SetGroup records the chat's selected schedule URL.
func (s *SessionStore) SetGroup(chatID int64, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[chatID] = url
}
