package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/WINZED31/Baladeya/internal/domain/complaint"
	xerrors "github.com/WINZED31/Baladeya/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ComplaintRepository struct {
	db *pgxpool.Pool
}

func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

const complaintColumns = `id, tracking_number, user_id, title, description,
	       category, wilaya, status, priority, created_at, updated_at`

// Create inserts a new complaint.
func (r *ComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	query := `
		INSERT INTO complaints (tracking_number, user_id, title, description, category, wilaya, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		c.TrackingNumber, c.UserID, c.Title, c.Description, c.Category, c.Wilaya, c.Status, c.Priority,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// FindByID retrieves a complaint by ID.
func (r *ComplaintRepository) FindByID(ctx context.Context, id int64) (*complaint.Complaint, error) {
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE id = $1`, complaintColumns)

	var c complaint.Complaint
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.TrackingNumber, &c.UserID, &c.Title, &c.Description,
		&c.Category, &c.Wilaya, &c.Status, &c.Priority, &c.CreatedAt, &c.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}
	return &c, nil
}

// FindByUser lists a user's complaints, newest first.
func (r *ComplaintRepository) FindByUser(ctx context.Context, userID int64) ([]complaint.Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM complaints
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, complaintColumns)

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

// ListAll lists every complaint, newest first, for the admin dashboard.
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]complaint.Complaint, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM complaints
		ORDER BY created_at DESC, id DESC
	`, complaintColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

// UpdateStatus moves a complaint to a new status.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status complaint.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE complaints SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// CountByStatus groups the whole corpus by status.
func (r *ComplaintRepository) CountByStatus(ctx context.Context) (map[complaint.Status]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM complaints GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[complaint.Status]int)
	for rows.Next() {
		var status complaint.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// CountByCategory groups the whole corpus by category.
func (r *ComplaintRepository) CountByCategory(ctx context.Context) (map[complaint.Category]int, error) {
	rows, err := r.db.Query(ctx, `SELECT category, COUNT(*) FROM complaints GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[complaint.Category]int)
	for rows.Next() {
		var category complaint.Category
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

func scanComplaints(rows pgx.Rows) ([]complaint.Complaint, error) {
	var complaints []complaint.Complaint
	for rows.Next() {
		var c complaint.Complaint
		if err := rows.Scan(
			&c.ID, &c.TrackingNumber, &c.UserID, &c.Title, &c.Description,
			&c.Category, &c.Wilaya, &c.Status, &c.Priority, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}
