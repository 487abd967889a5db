package repository

import (
	"context"
	"errors"

	"github.com/bucketlistprince/hpm-tech-solutions/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FileRepository handles database operations for file metadata
type FileRepository struct {
	db *pgxpool.Pool
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{db: db}
}

// Create creates a new file metadata record
func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (project_id, name, mime_type, size, url, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		file.ProjectID,
		file.Name,
		file.MimeType,
		file.Size,
		file.URL,
		file.StoragePath,
	).Scan(&file.ID, &file.CreatedAt, &file.UpdatedAt)
}

// GetByID retrieves a file by ID
func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	file := &models.File{}
	query := `
		SELECT id, project_id, name, mime_type, size, url, storage_path, created_at, updated_at
		FROM files
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.ProjectID,
		&file.Name,
		&file.MimeType,
		&file.Size,
		&file.URL,
		&file.StoragePath,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return file, nil
}

// ListByProjectID retrieves all files for a project, newest first
func (r *FileRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.File, error) {
	query := `
		SELECT id, project_id, name, mime_type, size, url, storage_path, created_at, updated_at
		FROM files
		WHERE project_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*models.File
	for rows.Next() {
		file := &models.File{}
		err := rows.Scan(
			&file.ID,
			&file.ProjectID,
			&file.Name,
			&file.MimeType,
			&file.Size,
			&file.URL,
			&file.StoragePath,
			&file.CreatedAt,
			&file.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, rows.Err()
}

// Delete deletes a file metadata record
func (r *FileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM files WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
