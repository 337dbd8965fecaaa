// Package cart holds the per-visitor quote session: the service currently
// being configured and the confirmed line items.
package cart

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrNoServiceSelected = errors.New("no service selected")
	ErrUnknownService    = errors.New("unknown service")
	ErrLineItemNotFound  = errors.New("line item not found")
)

// Catalog resolves service ids against the current catalog snapshot.
type Catalog interface {
	Lookup(id string) (entities.Service, bool)
}

// Services is a Catalog over an in-memory snapshot.
type Services []entities.Service

func (s Services) Lookup(id string) (entities.Service, bool) {
	for _, svc := range s {
		if svc.ID == id {
			return svc, true
		}
	}
	return entities.Service{}, false
}

// Snapshot is a copy of the session state safe to hand out.
type Snapshot struct {
	SelectedServiceID string
	PendingQuantity   int
	Items             []entities.LineItem
	ItemAddedVisible  bool
}

type Option func(*Session)

// WithUIDGenerator replaces uuid.NewString for line item uids.
func WithUIDGenerator(fn func() string) Option {
	return func(s *Session) { s.newUID = fn }
}

// WithNotice replaces the default "item added" notice.
func WithNotice(n *Notice) Option {
	return func(s *Session) { s.notice = n }
}

// Session is safe for concurrent use; every operation is applied atomically
// in call order.
type Session struct {
	mu              sync.Mutex
	selectedID      string
	pendingQuantity int
	items           []entities.LineItem

	newUID func() string
	notice *Notice
}

func NewSession(opts ...Option) *Session {
	s := &Session{pendingQuantity: 1, newUID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	if s.notice == nil {
		s.notice = NewNotice(DefaultNoticeDelay, nil)
	}
	return s
}

// SelectService sets the service being configured. An empty id clears the
// selection; an id missing from the catalog is rejected and the selection is
// kept as it was.
func (s *Session) SelectService(catalog Catalog, serviceID string) error {
	serviceID = strings.TrimSpace(serviceID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if serviceID == "" {
		s.selectedID = ""
		return nil
	}
	if _, ok := catalog.Lookup(serviceID); !ok {
		return ErrUnknownService
	}
	s.selectedID = serviceID
	return nil
}

// SetQuantity clamps n to a minimum of 1. There is no upper bound.
func (s *Session) SetQuantity(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingQuantity = max(n, 1)
	return s.pendingQuantity
}

func (s *Session) Increment() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingQuantity++
	return s.pendingQuantity
}

func (s *Session) Decrement() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingQuantity = max(s.pendingQuantity-1, 1)
	return s.pendingQuantity
}

// ConfirmAddition turns the current selection into a line item. A rejected
// call leaves the session untouched.
func (s *Session) ConfirmAddition(catalog Catalog) (entities.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedID == "" {
		return entities.LineItem{}, ErrNoServiceSelected
	}
	svc, ok := catalog.Lookup(s.selectedID)
	if !ok {
		return entities.LineItem{}, ErrUnknownService
	}

	li := entities.LineItem{
		UID:       s.newUID(),
		ServiceID: svc.ID,
		Title:     svc.Title,
		UnitPrice: svc.UnitPrice,
		Quantity:  max(s.pendingQuantity, 1),
	}
	s.items = append(s.items, li)
	s.pendingQuantity = 1
	s.notice.Flash()
	return li, nil
}

// RemoveItem drops the line item with the given uid. A stale uid returns
// ErrLineItemNotFound and changes nothing.
func (s *Session) RemoveItem(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.UID == uid {
			s.items = slices.Delete(s.items, i, i+1)
			return nil
		}
	}
	return ErrLineItemNotFound
}

// Items returns a copy of the confirmed line items.
func (s *Session) Items() []entities.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.LineItem(nil), s.items...)
}

// Totals prices the current items against the rates handed in.
func (s *Session) Totals(rates pricing.Rates) pricing.QuoteTotals {
	return pricing.ComputeTotals(s.Items(), rates)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		SelectedServiceID: s.selectedID,
		PendingQuantity:   s.pendingQuantity,
		Items:             append([]entities.LineItem(nil), s.items...),
		ItemAddedVisible:  s.notice.Visible(),
	}
}

// Close cancels the pending notice timer.
func (s *Session) Close() {
	s.notice.Stop()
}
