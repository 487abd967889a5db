package service

import (
	"context"
	"errors"
	"time"

	"github.com/bucketlistprince/hpm-tech-solutions/models"

	"github.com/google/uuid"
)

// ProjectStore defines the project data access interface consumed by services.
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListByClientID(ctx context.Context, clientID uuid.UUID) ([]*models.Project, error)
}

// InvoiceStore defines the invoice data access interface consumed by services.
type InvoiceStore interface {
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.Invoice, error)
}

// ProjectService handles business logic for project requests
type ProjectService struct {
	projects ProjectStore
	invoices InvoiceStore
	users    UserStore
}

// ProjectServiceOption is a functional option for ProjectService
type ProjectServiceOption func(*ProjectService)

// WithProjectStore sets the project store
func WithProjectStore(store ProjectStore) ProjectServiceOption {
	return func(s *ProjectService) {
		s.projects = store
	}
}

// WithInvoiceStore sets the invoice store
func WithInvoiceStore(store InvoiceStore) ProjectServiceOption {
	return func(s *ProjectService) {
		s.invoices = store
	}
}

// WithProjectUserStore sets the user store used for owner lookups
func WithProjectUserStore(store UserStore) ProjectServiceOption {
	return func(s *ProjectService) {
		s.users = store
	}
}

// NewProjectService creates a new project service
func NewProjectService(opts ...ProjectServiceOption) *ProjectService {
	s := &ProjectService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateProjectInput carries the fields accepted by project creation. The
// seven required fields are validated here; everything else is optional.
type CreateProjectInput struct {
	Title       string
	Description string
	Type        string
	Budget      float64
	Timeline    string

	PreferredFeatures string

	WebsiteType       string
	ResponsiveDesign  bool
	CMSRequired       bool
	DomainName        string
	ContentReady      bool
	WebsiteManagement bool

	MobilePlatform       string
	MobileFeatures       []string
	AppStoreRequirements string

	SoftwareType            string
	IntegrationRequirements string
	DatabaseRequirements    string
	DevelopmentEnvironment  string
	TestingEnvironment      string
	DeploymentEnvironment   string

	SoftwareName  string
	LicenseType   string
	NumberOfUsers int

	CompanyName    string
	CompanyMotto   string
	CompanyHistory string
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	BusinessPhone  string
	Address        string

	StartDate       *time.Time
	EndDate         *time.Time
	Deadline        *time.Time
	EstimatedHours  int
	ActualHours     int
	Progress        int
	Milestones      string
	Priority        int
	Notes           string
	SpecialFeatures string
	LogoStatus      string
}

func (in CreateProjectInput) missingRequired() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"title", in.Title},
		{"description", in.Description},
		{"type", in.Type},
		{"companyName", in.CompanyName},
		{"clientName", in.ClientName},
		{"clientEmail", in.ClientEmail},
		{"clientPhone", in.ClientPhone},
	}
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// Create persists a new project request owned by the session user. Status is
// always PENDING regardless of what the client sends.
func (s *ProjectService) Create(ctx context.Context, session models.Session, in CreateProjectInput) (*models.Project, error) {
	if s.projects == nil {
		return nil, errors.New("project store not set")
	}

	if missing := in.missingRequired(); len(missing) > 0 {
		return nil, &models.ValidationError{Fields: missing}
	}

	priority := in.Priority
	if priority == 0 {
		priority = 3
	}
	mobileFeatures := in.MobileFeatures
	if mobileFeatures == nil {
		mobileFeatures = []string{}
	}

	project := &models.Project{
		ClientID:    session.UserID,
		Title:       in.Title,
		Description: in.Description,
		Type:        models.ProjectType(in.Type),
		Status:      models.StatusPending,
		Budget:      in.Budget,
		Timeline:    in.Timeline,

		PreferredFeatures: in.PreferredFeatures,

		WebsiteType:       in.WebsiteType,
		ResponsiveDesign:  in.ResponsiveDesign,
		CMSRequired:       in.CMSRequired,
		DomainName:        in.DomainName,
		ContentReady:      in.ContentReady,
		WebsiteManagement: in.WebsiteManagement,

		MobilePlatform:       in.MobilePlatform,
		MobileFeatures:       mobileFeatures,
		AppStoreRequirements: in.AppStoreRequirements,

		SoftwareType:            in.SoftwareType,
		IntegrationRequirements: in.IntegrationRequirements,
		DatabaseRequirements:    in.DatabaseRequirements,
		DevelopmentEnvironment:  in.DevelopmentEnvironment,
		TestingEnvironment:      in.TestingEnvironment,
		DeploymentEnvironment:   in.DeploymentEnvironment,

		SoftwareName:  in.SoftwareName,
		LicenseType:   in.LicenseType,
		NumberOfUsers: in.NumberOfUsers,

		CompanyName:    in.CompanyName,
		CompanyMotto:   in.CompanyMotto,
		CompanyHistory: in.CompanyHistory,
		ClientName:     in.ClientName,
		ClientEmail:    in.ClientEmail,
		ClientPhone:    in.ClientPhone,
		BusinessPhone:  in.BusinessPhone,
		Address:        in.Address,

		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Deadline:        in.Deadline,
		EstimatedHours:  in.EstimatedHours,
		ActualHours:     in.ActualHours,
		Progress:        in.Progress,
		Milestones:      in.Milestones,
		Priority:        priority,
		Notes:           in.Notes,
		SpecialFeatures: in.SpecialFeatures,
		LogoStatus:      in.LogoStatus,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// ContactPerson is the contact snapshot rendered in the project list view.
type ContactPerson struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProjectViewDetails groups the type-specific fields of the list view.
type ProjectViewDetails struct {
	PreferredFeatures string   `json:"preferredFeatures"`
	Platform          string   `json:"platform"`
	MobilePlatform    string   `json:"mobilePlatform"`
	MobileFeatures    []string `json:"mobileFeatures"`
	WebsiteType       string   `json:"websiteType"`
	ResponsiveDesign  bool     `json:"responsiveDesign"`
	CMSRequired       bool     `json:"cmsRequired"`
	CompanyMotto      string   `json:"companyMotto"`
	SpecialFeatures   string   `json:"specialFeatures"`
}

// ProjectView is the flattened list representation. Every nullable field is
// substituted with its documented default so the UI never renders blanks.
type ProjectView struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Type          string             `json:"type"`
	Status        string             `json:"status"`
	Company       string             `json:"company"`
	Industry      string             `json:"industry"`
	ContactPerson ContactPerson      `json:"contactPerson"`
	Budget        float64            `json:"budget"`
	Timeline      string             `json:"timeline"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Details       ProjectViewDetails `json:"details"`
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// NewProjectView reshapes a stored project into the list view model. The
// session supplies contact fallbacks, mirroring the snapshot-over-join rule.
func NewProjectView(p *models.Project, session models.Session) ProjectView {
	return ProjectView{
		ID:          p.ID,
		Title:       orDefault(p.Title, "Untitled Project"),
		Description: orDefault(p.Description, "No description available"),
		Type:        orDefault(string(p.Type), "UNKNOWN"),
		Status:      orDefault(string(p.Status), "DRAFT"),
		Company:     orDefault(p.CompanyName, "N/A"),
		Industry:    "N/A",
		ContactPerson: ContactPerson{
			Name:  orDefault(p.ClientName, orDefault(session.Name, "N/A")),
			Email: orDefault(p.ClientEmail, orDefault(session.Email, "N/A")),
			Phone: orDefault(p.ClientPhone, "N/A"),
		},
		Budget:    p.Budget,
		Timeline:  orDefault(p.Timeline, "Not specified"),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Details: ProjectViewDetails{
			PreferredFeatures: p.PreferredFeatures,
			Platform:          p.MobilePlatform,
			MobilePlatform:    p.MobilePlatform,
			MobileFeatures:    p.MobileFeatures,
			WebsiteType:       p.WebsiteType,
			ResponsiveDesign:  p.ResponsiveDesign,
			CMSRequired:       p.CMSRequired,
			CompanyMotto:      p.CompanyMotto,
			SpecialFeatures:   p.SpecialFeatures,
		},
	}
}

// List returns the session user's projects, newest first, as view models.
func (s *ProjectService) List(ctx context.Context, session models.Session) ([]ProjectView, error) {
	if s.projects == nil {
		return nil, errors.New("project store not set")
	}

	projects, err := s.projects.ListByClientID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, NewProjectView(p, session))
	}

	return views, nil
}

// ProjectOwner is the owning user's public subset included in detail views.
type ProjectOwner struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ProjectDetail is the full single-project representation.
type ProjectDetail struct {
	*models.Project
	User     *ProjectOwner     `json:"user,omitempty"`
	Invoices []*models.Invoice `json:"invoices"`
}

// GetDetail retrieves one project with its owner and invoices. Only the owner
// or an ADMIN may read it; everyone else gets models.ErrForbidden.
func (s *ProjectService) GetDetail(ctx context.Context, session models.Session, id uuid.UUID) (*ProjectDetail, error) {
	if s.projects == nil {
		return nil, errors.New("project store not set")
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanAccess(session, project) {
		return nil, models.ErrForbidden
	}

	detail := &ProjectDetail{Project: project, Invoices: []*models.Invoice{}}

	if s.users != nil {
		if owner, err := s.users.GetByID(ctx, project.ClientID); err == nil {
			detail.User = &ProjectOwner{ID: owner.ID, Name: owner.Name, Email: owner.Email}
		}
	}

	if s.invoices != nil {
		invoices, err := s.invoices.ListByProjectID(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		if invoices != nil {
			detail.Invoices = invoices
		}
	}

	return detail, nil
}
