package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "PENDING"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusCompleted  ProjectStatus = "COMPLETED"
	StatusCancelled  ProjectStatus = "CANCELLED"
)

// ProjectType represents the classification of a project request
type ProjectType string

const (
	TypeWebsite          ProjectType = "WEBSITE"
	TypeMobileApp        ProjectType = "MOBILE_APP"
	TypeCustomSoftware   ProjectType = "CUSTOM_SOFTWARE"
	TypePurchaseSoftware ProjectType = "PURCHASE_SOFTWARE"
	TypeSoftware         ProjectType = "SOFTWARE"
	TypeECommerce        ProjectType = "E_COMMERCE"
)

// Project represents a client project request and its management state.
// The contact fields are a snapshot captured at submission time, not a live
// join against the owning user.
type Project struct {
	ID       uuid.UUID     `json:"id"`
	ClientID uuid.UUID     `json:"client_id"`
	Title    string        `json:"title"`
	Description string     `json:"description"`
	Type     ProjectType   `json:"type"`
	Status   ProjectStatus `json:"status"`
	Budget   float64       `json:"budget"`
	Timeline string        `json:"timeline"`

	PreferredFeatures string `json:"preferred_features,omitempty"`

	// Website specific
	WebsiteType       string `json:"website_type,omitempty"`
	ResponsiveDesign  bool   `json:"responsive_design"`
	CMSRequired       bool   `json:"cms_required"`
	DomainName        string `json:"domain_name,omitempty"`
	ContentReady      bool   `json:"content_ready"`
	WebsiteManagement bool   `json:"website_management"`

	// Mobile app specific
	MobilePlatform       string   `json:"mobile_platform,omitempty"`
	MobileFeatures       []string `json:"mobile_features"`
	AppStoreRequirements string   `json:"app_store_requirements,omitempty"`

	// Custom software specific
	SoftwareType            string `json:"software_type,omitempty"`
	IntegrationRequirements string `json:"integration_requirements,omitempty"`
	DatabaseRequirements    string `json:"database_requirements,omitempty"`
	DevelopmentEnvironment  string `json:"development_environment,omitempty"`
	TestingEnvironment      string `json:"testing_environment,omitempty"`
	DeploymentEnvironment   string `json:"deployment_environment,omitempty"`

	// Purchase software specific
	SoftwareName  string `json:"software_name,omitempty"`
	LicenseType   string `json:"license_type,omitempty"`
	NumberOfUsers int    `json:"number_of_users,omitempty"`

	// Company / contact snapshot
	CompanyName    string `json:"company_name"`
	CompanyMotto   string `json:"company_motto,omitempty"`
	CompanyHistory string `json:"company_history,omitempty"`
	ClientName     string `json:"client_name"`
	ClientEmail    string `json:"client_email"`
	ClientPhone    string `json:"client_phone"`
	BusinessPhone  string `json:"business_phone,omitempty"`
	Address        string `json:"address,omitempty"`

	// Management fields
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	EstimatedHours  int        `json:"estimated_hours,omitempty"`
	ActualHours     int        `json:"actual_hours,omitempty"`
	Progress        int        `json:"progress"`
	Milestones      string     `json:"milestones,omitempty"`
	Priority        int        `json:"priority"`
	Notes           string     `json:"notes,omitempty"`
	SpecialFeatures string     `json:"special_features,omitempty"`
	LogoStatus      string     `json:"logo_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanAccess is the single authorization predicate for project-scoped
// resources: the owner or an ADMIN may access, nobody else.
func CanAccess(s Session, p *Project) bool {
	return s.IsAdmin() || p.ClientID == s.UserID
}

// JoinFeatures serializes a feature list to its comma-delimited storage form.
func JoinFeatures(features []string) string {
	return strings.Join(features, ",")
}

// SplitFeatures parses the comma-delimited storage form back into a list.
// An empty string yields an empty list, not a single empty element.
func SplitFeatures(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
