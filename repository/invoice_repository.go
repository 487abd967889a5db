package repository

import (
	"context"

	"github.com/bucketlistprince/hpm-tech-solutions/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InvoiceRepository handles database operations for invoices
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create creates a new invoice record
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	query := `
		INSERT INTO invoices (project_id, user_id, amount_cents, status, due_date, paid_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		invoice.ProjectID,
		invoice.UserID,
		invoice.AmountCents,
		invoice.Status,
		invoice.DueDate,
		invoice.PaidDate,
	).Scan(&invoice.ID, &invoice.CreatedAt)
}

// ListByProjectID retrieves all invoices for a project, newest first
func (r *InvoiceRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.Invoice, error) {
	query := `
		SELECT id, project_id, user_id, amount_cents, status, due_date, paid_date, created_at
		FROM invoices
		WHERE project_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		invoice := &models.Invoice{}
		err := rows.Scan(
			&invoice.ID,
			&invoice.ProjectID,
			&invoice.UserID,
			&invoice.AmountCents,
			&invoice.Status,
			&invoice.DueDate,
			&invoice.PaidDate,
			&invoice.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}
