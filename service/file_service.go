package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bucketlistprince/hpm-tech-solutions/models"
	"github.com/bucketlistprince/hpm-tech-solutions/storage"

	"github.com/google/uuid"
)

// FileStore defines the file metadata access interface consumed by services.
type FileStore interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.File, error)
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.File, error)
}

// FileService handles attachment metadata and blob storage for projects
type FileService struct {
	files    FileStore
	projects ProjectStore
	blobs    storage.Storage
}

// FileServiceOption is a functional option for FileService
type FileServiceOption func(*FileService)

// WithFileStore sets the file metadata store
func WithFileStore(store FileStore) FileServiceOption {
	return func(s *FileService) {
		s.files = store
	}
}

// WithFileProjectStore sets the project store used for access checks
func WithFileProjectStore(store ProjectStore) FileServiceOption {
	return func(s *FileService) {
		s.projects = store
	}
}

// WithBlobStorage sets the blob storage backend
func WithBlobStorage(blobs storage.Storage) FileServiceOption {
	return func(s *FileService) {
		s.blobs = blobs
	}
}

// NewFileService creates a new file service
func NewFileService(opts ...FileServiceOption) *FileService {
	s := &FileService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileService) authorizeProject(ctx context.Context, session models.Session, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !models.CanAccess(session, project) {
		return nil, models.ErrForbidden
	}
	return project, nil
}

// List returns a project's files, newest first. Access requires the session
// user to own the project or hold the ADMIN role.
func (s *FileService) List(ctx context.Context, session models.Session, projectID uuid.UUID) ([]*models.File, error) {
	if s.files == nil || s.projects == nil {
		return nil, errors.New("file service not fully configured")
	}

	if _, err := s.authorizeProject(ctx, session, projectID); err != nil {
		return nil, err
	}

	return s.files.ListByProjectID(ctx, projectID)
}

// UploadInput carries one uploaded attachment
type UploadInput struct {
	Name     string
	MimeType string
	Size     int64
	Data     io.Reader
}

// Upload persists the attachment bytes to blob storage under a
// collision-resistant stored name and records the metadata row.
func (s *FileService) Upload(ctx context.Context, session models.Session, projectID uuid.UUID, in UploadInput) (*models.File, error) {
	if s.files == nil || s.projects == nil || s.blobs == nil {
		return nil, errors.New("file service not fully configured")
	}

	if _, err := s.authorizeProject(ctx, session, projectID); err != nil {
		return nil, err
	}

	mimeType := in.MimeType
	if mimeType == "" {
		mimeType = contentTypeFor(in.Name)
	}

	storedName := generateStoredName(in.Name)

	if err := s.blobs.Upload(ctx, storedName, mimeType, in.Data); err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}

	file := &models.File{
		ProjectID:   projectID,
		Name:        in.Name,
		MimeType:    mimeType,
		Size:        in.Size,
		URL:         "/uploads/" + storedName,
		StoragePath: storedName,
	}

	if err := s.files.Create(ctx, file); err != nil {
		// Don't leave orphaned blobs behind a failed metadata insert
		s.blobs.Delete(ctx, storedName)
		return nil, err
	}

	return file, nil
}

// Download streams an attachment's bytes after the same owner-or-admin check
// as listing, applied through the parent project.
func (s *FileService) Download(ctx context.Context, session models.Session, fileID uuid.UUID) (*models.File, io.ReadCloser, error) {
	if s.files == nil || s.projects == nil || s.blobs == nil {
		return nil, nil, errors.New("file service not fully configured")
	}

	file, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.authorizeProject(ctx, session, file.ProjectID); err != nil {
		return nil, nil, err
	}

	reader, err := s.blobs.Download(ctx, file.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("download attachment: %w", err)
	}

	return file, reader, nil
}

// generateStoredName builds a stored filename from the current unix-millis
// timestamp, a random suffix and the original extension.
func generateStoredName(original string) string {
	ext := filepath.Ext(original)
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
