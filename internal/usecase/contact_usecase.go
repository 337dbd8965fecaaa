package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"andicot_proforma/internal/domain/entities"
	"andicot_proforma/internal/infrastructure/metrics"
	"andicot_proforma/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrContactNotFound      = errors.New("contact message not found")
	ErrInvalidContactID     = errors.New("invalid contact message id")
	ErrInvalidContactStatus = errors.New("invalid contact status")
	ErrInvalidContactInput  = errors.New("invalid contact input")
)

// ContactSubmission is what a visitor types into the contact form.
type ContactSubmission struct {
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email,max=160"`
	Phone   string `validate:"omitempty,max=32"`
	Message string `validate:"required,max=5000"`
}

// QuoteSubmission sends a quote session to the CRM. An empty Message is filled
// from the session: the handed-off text when one is waiting, otherwise the
// live quote.
type QuoteSubmission struct {
	SessionID string
	Name      string
	Email     string
	Phone     string
	Message   string
}

// QuoteSource is the part of the quote builder the contact intake reads from.
type QuoteSource interface {
	TakeHandOff(ctx context.Context, sessionID string) (string, bool, error)
	ContactFormMessage(ctx context.Context, sessionID string) (string, error)
}

type IContactUseCase interface {
	Submit(ctx context.Context, in ContactSubmission) (entities.ContactMessage, error)
	SubmitQuote(ctx context.Context, in QuoteSubmission) (entities.ContactMessage, error)
	List(ctx context.Context) ([]entities.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status entities.ContactStatus) (entities.ContactMessage, error)
	Delete(ctx context.Context, id string) error
}

type ContactUseCase struct {
	repo     interfaces.IContactMessageRepository
	events   interfaces.IContactEventPublisher
	quotes   QuoteSource
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

var _ IContactUseCase = (*ContactUseCase)(nil)

// NewContactUseCase wires contact intake. events and quotes may be nil.
func NewContactUseCase(repo interfaces.IContactMessageRepository, events interfaces.IContactEventPublisher, quotes QuoteSource) *ContactUseCase {
	return &ContactUseCase{
		repo:     repo,
		events:   events,
		quotes:   quotes,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (u *ContactUseCase) Submit(ctx context.Context, in ContactSubmission) (entities.ContactMessage, error) {
	return u.create(ctx, in, entities.ContactSourceForm)
}

func (u *ContactUseCase) SubmitQuote(ctx context.Context, in QuoteSubmission) (entities.ContactMessage, error) {
	if u.quotes == nil {
		return entities.ContactMessage{}, ErrInvalidSessionID
	}
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return entities.ContactMessage{}, ErrInvalidSessionID
	}

	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		taken, ok, err := u.quotes.TakeHandOff(ctx, sessionID)
		if err != nil {
			return entities.ContactMessage{}, err
		}
		if ok {
			msg = taken
		}
	}
	if msg == "" {
		live, err := u.quotes.ContactFormMessage(ctx, sessionID)
		if err != nil {
			return entities.ContactMessage{}, err
		}
		msg = live
	}

	return u.create(ctx, ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: msg,
	}, entities.ContactSourceQuote)
}

func (u *ContactUseCase) List(ctx context.Context) ([]entities.ContactMessage, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (u *ContactUseCase) UpdateStatus(ctx context.Context, id string, status entities.ContactStatus) (entities.ContactMessage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactMessage{}, ErrInvalidContactID
	}
	if !status.Valid() {
		return entities.ContactMessage{}, ErrInvalidContactStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		slog.Error("[contact][usecase] status update failed", "id", id, "status", status, "error", err)
		return entities.ContactMessage{}, err
	}
	if updated.ID == "" {
		return entities.ContactMessage{}, ErrContactNotFound
	}
	slog.Info("[contact][usecase] status updated", "id", id, "status", status)
	return updated, nil
}

func (u *ContactUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidContactID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactNotFound
	}
	slog.Info("[contact][usecase] message deleted", "id", id)
	return nil
}

func (u *ContactUseCase) create(ctx context.Context, in ContactSubmission, source entities.ContactSource) (entities.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
	if err := u.validate.Struct(in); err != nil {
		slog.Debug("[contact][usecase] submission rejected", "source", source, "reason", err)
		return entities.ContactMessage{}, errors.Join(ErrInvalidContactInput, err)
	}

	now := u.now().UTC()
	m := entities.ContactMessage{
		ID:        u.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Status:    entities.ContactStatusPendiente,
		Source:    source,
		AINote:    entities.DefaultAINote,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		slog.Error("[contact][usecase] create failed", "source", source, "error", err)
		return entities.ContactMessage{}, err
	}
	metrics.ContactSubmissions.WithLabelValues(string(source)).Inc()
	slog.Info("[contact][usecase] message stored", "id", created.ID, "source", source)

	if u.events != nil {
		if err := u.events.PublishContactSubmitted(ctx, created); err != nil {
			slog.Warn("[contact][usecase] submitted event not published", "id", created.ID, "error", err)
		}
	}
	return created, nil
}
