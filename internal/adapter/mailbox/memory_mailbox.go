// Package mailbox holds the single-slot hand-off between the quote builder and
// the contact form of one visitor session.
package mailbox

import (
	"context"
	"strings"
	"sync"

	"andicot_proforma/internal/usecase/interfaces"
)

// MemoryMailbox keeps slots in process. Used when no Redis is configured.
type MemoryMailbox struct {
	mu          sync.Mutex
	slots       map[string]string
	subscribers map[string]map[chan struct{}]struct{}
}

var _ interfaces.IQuoteMailbox = (*MemoryMailbox)(nil)

func NewMemoryMailbox() *MemoryMailbox {
	return &MemoryMailbox{
		slots:       make(map[string]string),
		subscribers: make(map[string]map[chan struct{}]struct{}),
	}
}

func (m *MemoryMailbox) Publish(_ context.Context, sessionID, message string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrEmptySessionID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[sessionID] = message
	for ch := range m.subscribers[sessionID] {
		signal(ch)
	}
	return nil
}

func (m *MemoryMailbox) TakeIfPresent(_ context.Context, sessionID string) (string, bool, error) {
	sessionID = strings.TrimSpace(sessionID)

	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.slots[sessionID]
	if ok {
		delete(m.slots, sessionID)
	}
	return msg, ok, nil
}

// Subscribe returns a channel that receives a signal after every publish for
// the session. It is closed when ctx is done.
func (m *MemoryMailbox) Subscribe(ctx context.Context, sessionID string) (<-chan struct{}, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	ch := make(chan struct{}, 1)
	m.mu.Lock()
	if m.subscribers[sessionID] == nil {
		m.subscribers[sessionID] = make(map[chan struct{}]struct{})
	}
	m.subscribers[sessionID][ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subscribers[sessionID], ch)
		if len(m.subscribers[sessionID]) == 0 {
			delete(m.subscribers, sessionID)
		}
		m.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

// signal never blocks: a pending signal already tells the consumer to pull.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
