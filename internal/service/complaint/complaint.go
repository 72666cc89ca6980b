package complaint

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/WINZED31/Baladeya/internal/domain/complaint"
	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"
	"github.com/WINZED31/Baladeya/internal/pkg/i18n"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the persistence surface for complaints.
type Store interface {
	Create(ctx context.Context, c *complaint.Complaint) error
	FindByID(ctx context.Context, id int64) (*complaint.Complaint, error)
	FindByUser(ctx context.Context, userID int64) ([]complaint.Complaint, error)
	ListAll(ctx context.Context) ([]complaint.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status complaint.Status) error
	CountByStatus(ctx context.Context) (map[complaint.Status]int, error)
	CountByCategory(ctx context.Context) (map[complaint.Category]int, error)
}

const recentLimit = 3

type Service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Create files a new complaint for userID with a fresh tracking number.
// A missing priority defaults to medium; category and wilaya must be known.
func (s *Service) Create(ctx context.Context, userID int64, req *complaint.CreateRequest) (*complaint.Complaint, error) {
	if req.Title == "" || req.Description == "" {
		return nil, xerrors.ErrInvalidInput
	}

	category := complaint.Category(req.Category)
	if !category.Valid() {
		return nil, xerrors.ErrInvalidInput
	}
	if !i18n.WilayaKnown(req.Wilaya) {
		return nil, xerrors.ErrInvalidInput
	}

	priority := complaint.Priority(req.Priority)
	if req.Priority == "" {
		priority = complaint.PriorityMedium
	}
	if !priority.Valid() {
		return nil, xerrors.ErrInvalidInput
	}

	c := &complaint.Complaint{
		TrackingNumber: NewTrackingNumber(),
		UserID:         userID,
		Title:          req.Title,
		Description:    req.Description,
		Category:       category,
		Wilaya:         req.Wilaya,
		Status:         complaint.StatusPending,
		Priority:       priority,
	}
	if err := s.store.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to file complaint: %w", err)
	}

	s.logger.Info("complaint filed",
		zap.String("tracking_number", c.TrackingNumber),
		zap.Int64("user_id", userID),
	)
	return c, nil
}

// List returns the user's complaints, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]complaint.Complaint, error) {
	complaints, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(complaints)
	return complaints, nil
}

// Get returns one complaint, enforcing ownership unless admin is set.
func (s *Service) Get(ctx context.Context, id, userID int64, admin bool) (*complaint.Complaint, error) {
	c, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !admin && c.UserID != userID {
		return nil, xerrors.ErrForbidden
	}
	return c, nil
}

// Dashboard computes the home-page aggregates for one user: total count,
// open count (pending or processing), resolved count, and the three most
// recent complaints.
func (s *Service) Dashboard(ctx context.Context, userID int64) (*complaint.Dashboard, error) {
	complaints, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	d := &complaint.Dashboard{Total: len(complaints)}
	for _, c := range complaints {
		if c.Status.Open() {
			d.Open++
		}
		if c.Status == complaint.StatusResolved {
			d.Resolved++
		}
	}

	sortNewestFirst(complaints)
	if len(complaints) > recentLimit {
		complaints = complaints[:recentLimit]
	}
	d.Recent = complaints
	return d, nil
}

// ListAll returns every complaint for administrators.
func (s *Service) ListAll(ctx context.Context) ([]complaint.Complaint, error) {
	complaints, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(complaints)
	return complaints, nil
}

// SetStatus moves a complaint to a new triage status.
func (s *Service) SetStatus(ctx context.Context, id int64, status complaint.Status) error {
	if !status.Valid() {
		return xerrors.ErrInvalidInput
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.logger.Info("complaint status updated",
		zap.Int64("complaint_id", id),
		zap.String("status", string(status)),
	)
	return nil
}

// Analytics aggregates the whole corpus by status and category.
func (s *Service) Analytics(ctx context.Context) (*complaint.Analytics, error) {
	byStatus, err := s.store.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.store.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range byStatus {
		total += n
	}
	return &complaint.Analytics{Total: total, ByStatus: byStatus, ByCategory: byCategory}, nil
}

// NewTrackingNumber returns a short citizen-facing reference.
func NewTrackingNumber() string {
	return "CMP-" + strings.ToUpper(uuid.NewString()[:8])
}

// sortNewestFirst orders by creation time descending; ties keep their
// incoming order.
func sortNewestFirst(complaints []complaint.Complaint) {
	sort.SliceStable(complaints, func(i, j int) bool {
		return complaints[i].CreatedAt.After(complaints[j].CreatedAt)
	})
}
