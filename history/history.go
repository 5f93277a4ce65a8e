// Package history stores per-session conversation transcripts. The assistant
// itself is stateless across requests; callers that want multi-turn sessions
// persist the exchange here and replay what they need.
package history

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Message is one turn of a conversation.
type Message struct {
	ID        string
	SessionID string
	Role      string // "user" or "assistant"
	Content   string
	// AgentsUsed records which agents produced an assistant message.
	AgentsUsed []string
	CreatedAt  time.Time
}

// NewMessage creates a message with a fresh ID and timestamp.
func NewMessage(sessionID, role, content string, agentsUsed []string) Message {
	return Message{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		Role:       role,
		Content:    content,
		AgentsUsed: agentsUsed,
		CreatedAt:  time.Now().UTC(),
	}
}

// Store persists conversation messages per session.
type Store interface {
	// Append stores one message.
	Append(ctx context.Context, msg Message) error
	// List returns up to limit messages for a session, most recent first.
	// limit <= 0 means no limit.
	List(ctx context.Context, sessionID string, limit int) ([]Message, error)
	// Clear removes all messages of a session.
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore is an in-memory Store for tests and single-process use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]Message
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]Message)}
}

// Append stores one message.
func (s *MemoryStore) Append(ctx context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[msg.SessionID] = append(s.sessions[msg.SessionID], msg)
	return nil
}

// List returns up to limit messages, most recent first.
func (s *MemoryStore) List(ctx context.Context, sessionID string, limit int) ([]Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.sessions[sessionID]

	// Append order is chronological; reverse it for recent-first.
	msgs := make([]Message, len(stored))
	for i, msg := range stored {
		msgs[len(stored)-1-i] = msg
	}

	if limit > 0 && len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

// Clear removes all messages of a session.
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// JoinAgents flattens an agents list for storage in a single column.
func JoinAgents(agents []string) string {
	return strings.Join(agents, ",")
}

// SplitAgents is the inverse of JoinAgents.
func SplitAgents(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
