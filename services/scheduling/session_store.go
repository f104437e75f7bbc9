// File: services/scheduling/session_store.go
package scheduling

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"schedly/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "nego:sess:"

// SessionStore persists negotiation sessions between conversational turns.
// A missing session is not an error: Get returns a fresh one in the request
// state, matching the "any utterance starts a new request" default.
type SessionStore interface {
	Get(ctx context.Context, conversationID string) (*models.NegotiationSession, error)
	Save(ctx context.Context, session *models.NegotiationSession) error
	Clear(ctx context.Context, conversationID string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL, so an abandoned
// negotiation expires on its own.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, conversationID string) (*models.NegotiationSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+conversationID).Result()
	if err == redis.Nil {
		return models.NewNegotiationSession(conversationID), nil
	}
	if err != nil {
		return nil, err
	}
	var session models.NegotiationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.NegotiationSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ConversationID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, conversationID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+conversationID).Err()
}

// MemorySessionStore serves tests and single-process runs.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.NegotiationSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.NegotiationSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, conversationID string) (*models.NegotiationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[conversationID]; ok {
		copied := *sess
		copied.Alternatives = append([]models.Alternative(nil), sess.Alternatives...)
		return &copied, nil
	}
	return models.NewNegotiationSession(conversationID), nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.NegotiationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	copied.Alternatives = append([]models.Alternative(nil), session.Alternatives...)
	s.sessions[session.ConversationID] = &copied
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, conversationID)
	return nil
}
