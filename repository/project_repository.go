package repository

import (
	"context"
	"errors"

	"github.com/bucketlistprince/hpm-tech-solutions/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `
	id, client_id, title, description, type, status, budget, timeline,
	preferred_features,
	website_type, responsive_design, cms_required, domain_name, content_ready, website_management,
	mobile_platform, mobile_features, app_store_requirements,
	software_type, integration_requirements, database_requirements,
	development_environment, testing_environment, deployment_environment,
	software_name, license_type, number_of_users,
	company_name, company_motto, company_history,
	client_name, client_email, client_phone, business_phone, address,
	start_date, end_date, deadline, estimated_hours, actual_hours,
	progress, milestones, priority, notes, special_features, logo_status,
	created_at, updated_at`

// Create inserts a new project. The mobile feature list is serialized to its
// comma-delimited storage form on the way in.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (
			client_id, title, description, type, status, budget, timeline,
			preferred_features,
			website_type, responsive_design, cms_required, domain_name, content_ready, website_management,
			mobile_platform, mobile_features, app_store_requirements,
			software_type, integration_requirements, database_requirements,
			development_environment, testing_environment, deployment_environment,
			software_name, license_type, number_of_users,
			company_name, company_motto, company_history,
			client_name, client_email, client_phone, business_phone, address,
			start_date, end_date, deadline, estimated_hours, actual_hours,
			progress, milestones, priority, notes, special_features, logo_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
			$29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41,
			$42, $43, $44, $45
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		project.ClientID,
		project.Title,
		project.Description,
		project.Type,
		project.Status,
		project.Budget,
		project.Timeline,
		project.PreferredFeatures,
		project.WebsiteType,
		project.ResponsiveDesign,
		project.CMSRequired,
		project.DomainName,
		project.ContentReady,
		project.WebsiteManagement,
		project.MobilePlatform,
		models.JoinFeatures(project.MobileFeatures),
		project.AppStoreRequirements,
		project.SoftwareType,
		project.IntegrationRequirements,
		project.DatabaseRequirements,
		project.DevelopmentEnvironment,
		project.TestingEnvironment,
		project.DeploymentEnvironment,
		project.SoftwareName,
		project.LicenseType,
		project.NumberOfUsers,
		project.CompanyName,
		project.CompanyMotto,
		project.CompanyHistory,
		project.ClientName,
		project.ClientEmail,
		project.ClientPhone,
		project.BusinessPhone,
		project.Address,
		project.StartDate,
		project.EndDate,
		project.Deadline,
		project.EstimatedHours,
		project.ActualHours,
		project.Progress,
		project.Milestones,
		project.Priority,
		project.Notes,
		project.SpecialFeatures,
		project.LogoStatus,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	return err
}

func scanProject(row pgx.Row) (*models.Project, error) {
	project := &models.Project{}
	var mobileFeatures string

	err := row.Scan(
		&project.ID,
		&project.ClientID,
		&project.Title,
		&project.Description,
		&project.Type,
		&project.Status,
		&project.Budget,
		&project.Timeline,
		&project.PreferredFeatures,
		&project.WebsiteType,
		&project.ResponsiveDesign,
		&project.CMSRequired,
		&project.DomainName,
		&project.ContentReady,
		&project.WebsiteManagement,
		&project.MobilePlatform,
		&mobileFeatures,
		&project.AppStoreRequirements,
		&project.SoftwareType,
		&project.IntegrationRequirements,
		&project.DatabaseRequirements,
		&project.DevelopmentEnvironment,
		&project.TestingEnvironment,
		&project.DeploymentEnvironment,
		&project.SoftwareName,
		&project.LicenseType,
		&project.NumberOfUsers,
		&project.CompanyName,
		&project.CompanyMotto,
		&project.CompanyHistory,
		&project.ClientName,
		&project.ClientEmail,
		&project.ClientPhone,
		&project.BusinessPhone,
		&project.Address,
		&project.StartDate,
		&project.EndDate,
		&project.Deadline,
		&project.EstimatedHours,
		&project.ActualHours,
		&project.Progress,
		&project.Milestones,
		&project.Priority,
		&project.Notes,
		&project.SpecialFeatures,
		&project.LogoStatus,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	project.MobileFeatures = models.SplitFeatures(mobileFeatures)
	return project, nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return project, nil
}

// ListByClientID retrieves all projects for a client, newest first
func (r *ProjectRepository) ListByClientID(ctx context.Context, clientID uuid.UUID) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects
		WHERE client_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// Delete deletes a project record
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
