package service

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/bucketlistprince/hpm-tech-solutions/models"

	"github.com/google/uuid"
)

// In-memory stores mirroring the repository contracts, including the
// newest-first ordering of the list queries.

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return models.ErrConflict
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

type fakeProjectStore struct {
	projects []*models.Project
	clock    time.Time
}

func (f *fakeProjectStore) Create(_ context.Context, project *models.Project) error {
	if f.clock.IsZero() {
		f.clock = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	f.clock = f.clock.Add(time.Second)
	project.ID = uuid.New()
	project.CreatedAt = f.clock
	project.UpdatedAt = f.clock
	f.projects = append(f.projects, project)
	return nil
}

func (f *fakeProjectStore) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeProjectStore) ListByClientID(_ context.Context, clientID uuid.UUID) ([]*models.Project, error) {
	var out []*models.Project
	for i := len(f.projects) - 1; i >= 0; i-- {
		if f.projects[i].ClientID == clientID {
			out = append(out, f.projects[i])
		}
	}
	return out, nil
}

type fakeInvoiceStore struct {
	invoices []*models.Invoice
}

func (f *fakeInvoiceStore) ListByProjectID(_ context.Context, projectID uuid.UUID) ([]*models.Invoice, error) {
	var out []*models.Invoice
	for i := len(f.invoices) - 1; i >= 0; i-- {
		if f.invoices[i].ProjectID == projectID {
			out = append(out, f.invoices[i])
		}
	}
	return out, nil
}

type fakeFileStore struct {
	files     []*models.File
	createErr error
}

func (f *fakeFileStore) Create(_ context.Context, file *models.File) error {
	if f.createErr != nil {
		return f.createErr
	}
	file.ID = uuid.New()
	file.CreatedAt = time.Now()
	file.UpdatedAt = file.CreatedAt
	f.files = append(f.files, file)
	return nil
}

func (f *fakeFileStore) GetByID(_ context.Context, id uuid.UUID) (*models.File, error) {
	for _, file := range f.files {
		if file.ID == id {
			return file, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeFileStore) ListByProjectID(_ context.Context, projectID uuid.UUID) ([]*models.File, error) {
	var out []*models.File
	for i := len(f.files) - 1; i >= 0; i-- {
		if f.files[i].ProjectID == projectID {
			out = append(out, f.files[i])
		}
	}
	return out, nil
}

type memBlobs struct {
	objects map[string][]byte
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}}
}

func (m *memBlobs) Upload(_ context.Context, key, _ string, data io.Reader) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.objects[key] = b
	return nil
}

func (m *memBlobs) Download(_ context.Context, key string) (io.ReadCloser, error) {
	b, ok := m.objects[key]
	if !ok {
		return nil, models.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memBlobs) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}
