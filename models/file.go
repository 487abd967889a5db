package models

import (
	"time"

	"github.com/google/uuid"
)

// File represents attachment metadata for a project. The bytes themselves
// live in the configured storage backend under StoragePath.
type File struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	StoragePath string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
