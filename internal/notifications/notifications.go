package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salepointhq/salepoint-backend/pkg/enums"
	pkgerrors "github.com/salepointhq/salepoint-backend/pkg/errors"
)

// Notification is one entry in the dashboard feed.
type Notification struct {
	ID        uuid.UUID              `json:"id"`
	Kind      enums.NotificationKind `json:"kind"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	CreatedAt time.Time              `json:"created_at"`
	ReadAt    *time.Time             `json:"read_at,omitempty"`
}

// Repository stores the feed. The memory implementation is the default;
// the seam exists so a backed store can replace it.
type Repository interface {
	Insert(ctx context.Context, notification Notification) error
	List(ctx context.Context, unreadOnly bool, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	MarkAllRead(ctx context.Context, at time.Time) (int64, error)
}

// ListParams configures feed reads.
type ListParams struct {
	UnreadOnly bool
	Limit      int
}

// Service defines feed publish/list/read operations.
type Service interface {
	Publish(ctx context.Context, kind enums.NotificationKind, title, body string) (*Notification, error)
	List(ctx context.Context, params ListParams) ([]Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService wires notification dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) Publish(ctx context.Context, kind enums.NotificationKind, title, body string) (*Notification, error) {
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "notification title required")
	}

	notification := Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, notification); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert notification")
	}
	return &notification, nil
}

func (s *service) List(ctx context.Context, params ListParams) ([]Notification, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.repo.List(ctx, params.UnreadOnly, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list notifications")
	}
	return rows, nil
}

func (s *service) MarkRead(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}

	found, err := s.repo.MarkRead(ctx, id, s.now().UTC())
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notification read")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context) (int64, error) {
	count, err := s.repo.MarkAllRead(ctx, s.now().UTC())
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notifications read")
	}
	return count, nil
}

const defaultListLimit = 50
