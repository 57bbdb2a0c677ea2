package http

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/domain/mvc"
)

// sessionStore holds the engines of live swap sessions.
// The least recently used session is evicted once the store is full.
type sessionStore struct {
	usecase  mvc.SwapUsecase
	sessions *lru.Cache[string, mvc.SwapEngine]
}

func newSessionStore(usecase mvc.SwapUsecase, maxSessions int) (*sessionStore, error) {
	sessions, err := lru.NewWithEvict[string, mvc.SwapEngine](maxSessions, func(string, mvc.SwapEngine) {
		domain.SwapSessionsEvictedCounter.Inc()
	})
	if err != nil {
		return nil, err
	}

	return &sessionStore{
		usecase:  usecase,
		sessions: sessions,
	}, nil
}

// Create starts a new session and returns its id.
func (s *sessionStore) Create() (string, mvc.SwapEngine) {
	id := uuid.NewString()
	engine := s.usecase.NewEngine()
	s.sessions.Add(id, engine)
	return id, engine
}

// Get returns the engine of the session, or SessionNotFoundError.
func (s *sessionStore) Get(id string) (mvc.SwapEngine, error) {
	engine, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.SessionNotFoundError{SessionID: id}
	}
	return engine, nil
}

// Delete ends the session.
func (s *sessionStore) Delete(id string) bool {
	return s.sessions.Remove(id)
}

// Len returns the number of live sessions.
func (s *sessionStore) Len() int {
	return s.sessions.Len()
}
