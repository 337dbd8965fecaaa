package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"andicot_proforma/internal/domain/cart"
	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/domain/pricing"
	"andicot_proforma/internal/domain/quote"
	"andicot_proforma/internal/infrastructure/metrics"
	"andicot_proforma/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// DefaultSessionIdleTTL is how long an untouched quote session is kept.
const DefaultSessionIdleTTL = 2 * time.Hour

var (
	ErrInvalidSessionID = errors.New("invalid quote session id")
	ErrSessionNotFound  = errors.New("quote session not found")
)

// QuoteView is what a visitor sees of a session: its state and the totals
// priced against the live rates.
type QuoteView struct {
	SessionID string
	State     cart.Snapshot
	Rates     pricing.Rates
	Totals    pricing.QuoteTotals
}

// IQuoteSessionUseCase drives the quote builder for anonymous visitors.
//
// Cart rejections (cart.ErrNoServiceSelected, cart.ErrUnknownService,
// cart.ErrLineItemNotFound) are returned as-is; callers may ignore them.
type IQuoteSessionUseCase interface {
	CreateSession(ctx context.Context) (QuoteView, error)
	GetSession(ctx context.Context, sessionID string) (QuoteView, error)
	SelectService(ctx context.Context, sessionID, serviceID string) (QuoteView, error)
	SetQuantity(ctx context.Context, sessionID string, quantity int) (QuoteView, error)
	AddItem(ctx context.Context, sessionID string) (entities.LineItem, QuoteView, error)
	RemoveItem(ctx context.Context, sessionID, uid string) (QuoteView, error)
	MessagingLink(ctx context.Context, sessionID string) (string, error)
	ContactFormMessage(ctx context.Context, sessionID string) (string, error)
	HandOffToContactForm(ctx context.Context, sessionID string) (string, error)
	TakeHandOff(ctx context.Context, sessionID string) (string, bool, error)
	SubscribeHandOff(ctx context.Context, sessionID string) (<-chan struct{}, error)
}

type sessionEntry struct {
	session  *cart.Session
	lastSeen time.Time
}

type QuoteSessionUseCase struct {
	catalog    ICatalogUseCase
	mailbox    interfaces.IQuoteMailbox
	dispatcher quote.Dispatcher
	idleTTL    time.Duration
	now        func() time.Time
	newSession func() *cart.Session

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

var _ IQuoteSessionUseCase = (*QuoteSessionUseCase)(nil)

func NewQuoteSessionUseCase(catalog ICatalogUseCase, mailbox interfaces.IQuoteMailbox, dispatcher quote.Dispatcher, idleTTL time.Duration) *QuoteSessionUseCase {
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdleTTL
	}
	return &QuoteSessionUseCase{
		catalog:    catalog,
		mailbox:    mailbox,
		dispatcher: dispatcher,
		idleTTL:    idleTTL,
		now:        time.Now,
		newSession: func() *cart.Session { return cart.NewSession() },
		sessions:   make(map[string]*sessionEntry),
	}
}

func (u *QuoteSessionUseCase) CreateSession(ctx context.Context) (QuoteView, error) {
	id := uuid.NewString()
	s := u.newSession()

	u.mu.Lock()
	u.sweepLocked()
	u.sessions[id] = &sessionEntry{session: s, lastSeen: u.now()}
	metrics.ActiveSessions.Set(float64(len(u.sessions)))
	u.mu.Unlock()

	slog.Debug("[quote][usecase] session created", "session_id", id)
	return u.view(ctx, id, s)
}

func (u *QuoteSessionUseCase) GetSession(ctx context.Context, sessionID string) (QuoteView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteView{}, err
	}
	return u.view(ctx, sessionID, s)
}

func (u *QuoteSessionUseCase) SelectService(ctx context.Context, sessionID, serviceID string) (QuoteView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteView{}, err
	}
	services, err := u.catalog.ListServices(ctx)
	if err != nil {
		return QuoteView{}, err
	}
	if err := s.SelectService(cart.Services(services), serviceID); err != nil {
		return QuoteView{}, err
	}
	return u.view(ctx, sessionID, s)
}

func (u *QuoteSessionUseCase) SetQuantity(ctx context.Context, sessionID string, quantity int) (QuoteView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteView{}, err
	}
	s.SetQuantity(quantity)
	return u.view(ctx, sessionID, s)
}

func (u *QuoteSessionUseCase) AddItem(ctx context.Context, sessionID string) (entities.LineItem, QuoteView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.LineItem{}, QuoteView{}, err
	}
	services, err := u.catalog.ListServices(ctx)
	if err != nil {
		return entities.LineItem{}, QuoteView{}, err
	}
	li, err := s.ConfirmAddition(cart.Services(services))
	if err != nil {
		slog.Debug("[quote][usecase] addition rejected", "session_id", sessionID, "reason", err)
		return entities.LineItem{}, QuoteView{}, err
	}
	if li.UnitPrice.IsZero() {
		slog.Warn("[quote][usecase] line item added with zero unit price", "session_id", sessionID, "service_id", li.ServiceID)
	}
	metrics.LineItemsAdded.Inc()

	v, err := u.view(ctx, sessionID, s)
	if err != nil {
		return entities.LineItem{}, QuoteView{}, err
	}
	return li, v, nil
}

func (u *QuoteSessionUseCase) RemoveItem(ctx context.Context, sessionID, uid string) (QuoteView, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return QuoteView{}, err
	}
	if err := s.RemoveItem(strings.TrimSpace(uid)); err != nil {
		return QuoteView{}, err
	}
	return u.view(ctx, sessionID, s)
}

func (u *QuoteSessionUseCase) MessagingLink(ctx context.Context, sessionID string) (string, error) {
	v, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	metrics.QuotesDispatched.WithLabelValues(metrics.ChannelWhatsApp).Inc()
	return u.dispatcher.MessagingLink(v.State.Items, v.Totals, v.Rates), nil
}

func (u *QuoteSessionUseCase) ContactFormMessage(ctx context.Context, sessionID string) (string, error) {
	v, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return u.dispatcher.ContactFormMessage(v.State.Items, v.Totals, v.Rates), nil
}

// HandOffToContactForm formats the quote for the contact form and leaves it in
// the session mailbox. Delivery is fire-and-forget: the message waits there
// until a contact form pulls it, or is overwritten by the next hand-off.
func (u *QuoteSessionUseCase) HandOffToContactForm(ctx context.Context, sessionID string) (string, error) {
	msg, err := u.ContactFormMessage(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if err := u.mailbox.Publish(ctx, sessionID, msg); err != nil {
		slog.Error("[quote][usecase] hand-off publish failed", "session_id", sessionID, "error", err)
		return "", err
	}
	metrics.QuotesDispatched.WithLabelValues(metrics.ChannelContactForm).Inc()
	slog.Info("[quote][usecase] quote handed off to contact form", "session_id", sessionID)
	return msg, nil
}

// TakeHandOff reads and clears the session mailbox.
func (u *QuoteSessionUseCase) TakeHandOff(ctx context.Context, sessionID string) (string, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if _, err := u.session(sessionID); err != nil {
		return "", false, err
	}
	return u.mailbox.TakeIfPresent(ctx, sessionID)
}

func (u *QuoteSessionUseCase) SubscribeHandOff(ctx context.Context, sessionID string) (<-chan struct{}, error) {
	sessionID = strings.TrimSpace(sessionID)
	if _, err := u.session(sessionID); err != nil {
		return nil, err
	}
	return u.mailbox.Subscribe(ctx, sessionID)
}

// Sweep drops sessions idle for longer than the TTL.
func (u *QuoteSessionUseCase) Sweep() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sweepLocked()
	metrics.ActiveSessions.Set(float64(len(u.sessions)))
}

// RunJanitor sweeps periodically until ctx is done.
func (u *QuoteSessionUseCase) RunJanitor(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			u.Sweep()
		}
	}
}

func (u *QuoteSessionUseCase) sweepLocked() {
	cutoff := u.now().Add(-u.idleTTL)
	for id, e := range u.sessions {
		if e.lastSeen.Before(cutoff) {
			e.session.Close()
			delete(u.sessions, id)
		}
	}
}

func (u *QuoteSessionUseCase) session(sessionID string) (*cart.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	e, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := u.now()
	if e.lastSeen.Before(now.Add(-u.idleTTL)) {
		e.session.Close()
		delete(u.sessions, sessionID)
		return nil, ErrSessionNotFound
	}
	e.lastSeen = now
	return e.session, nil
}

func (u *QuoteSessionUseCase) view(ctx context.Context, sessionID string, s *cart.Session) (QuoteView, error) {
	rates, err := u.catalog.GetRates(ctx)
	if err != nil {
		return QuoteView{}, err
	}
	state := s.Snapshot()
	return QuoteView{
		SessionID: sessionID,
		State:     state,
		Rates:     rates,
		Totals:    pricing.ComputeTotals(state.Items, rates),
	}, nil
}
