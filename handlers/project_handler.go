package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bucketlistprince/hpm-tech-solutions/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project requests
type ProjectHandler struct {
	responder
	projects *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects *service.ProjectService, dev bool) *ProjectHandler {
	return &ProjectHandler{responder: responder{dev: dev}, projects: projects}
}

// CreateProjectRequest represents the request body for creating a project.
// Budget is accepted as either a number or a string; non-numeric values
// coerce to zero.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Budget      any    `json:"budget"`
	Timeline    string `json:"timeline"`

	PreferredFeatures string `json:"preferredFeatures"`

	WebsiteType       string `json:"websiteType"`
	ResponsiveDesign  bool   `json:"responsiveDesign"`
	CMSRequired       bool   `json:"cmsRequired"`
	DomainName        string `json:"domainName"`
	ContentReady      bool   `json:"contentReady"`
	WebsiteManagement bool   `json:"websiteManagement"`

	MobilePlatform       string   `json:"mobilePlatform"`
	MobileFeatures       []string `json:"mobileFeatures"`
	AppStoreRequirements string   `json:"appStoreRequirements"`

	SoftwareType            string `json:"softwareType"`
	IntegrationRequirements string `json:"integrationRequirements"`
	DatabaseRequirements    string `json:"databaseRequirements"`
	DevelopmentEnvironment  string `json:"developmentEnvironment"`
	TestingEnvironment      string `json:"testingEnvironment"`
	DeploymentEnvironment   string `json:"deploymentEnvironment"`

	SoftwareName  string `json:"softwareName"`
	LicenseType   string `json:"licenseType"`
	NumberOfUsers int    `json:"numberOfUsers"`

	CompanyName    string `json:"companyName"`
	CompanyMotto   string `json:"companyMotto"`
	CompanyHistory string `json:"companyHistory"`
	ClientName     string `json:"clientName"`
	ClientEmail    string `json:"clientEmail"`
	ClientPhone    string `json:"clientPhone"`
	BusinessPhone  string `json:"businessPhone"`
	Address        string `json:"address"`

	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Deadline        string `json:"deadline"`
	EstimatedHours  int    `json:"estimatedHours"`
	ActualHours     int    `json:"actualHours"`
	Progress        int    `json:"progress"`
	Milestones      string `json:"milestones"`
	Priority        int    `json:"priority"`
	Notes           string `json:"notes"`
	SpecialFeatures string `json:"specialFeatures"`
	LogoStatus      string `json:"logoStatus"`
}

// Create handles POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	project, err := h.projects.Create(c.Request.Context(), session, service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Budget:      coerceFloat(req.Budget),
		Timeline:    req.Timeline,

		PreferredFeatures: req.PreferredFeatures,

		WebsiteType:       req.WebsiteType,
		ResponsiveDesign:  req.ResponsiveDesign,
		CMSRequired:       req.CMSRequired,
		DomainName:        req.DomainName,
		ContentReady:      req.ContentReady,
		WebsiteManagement: req.WebsiteManagement,

		MobilePlatform:       req.MobilePlatform,
		MobileFeatures:       req.MobileFeatures,
		AppStoreRequirements: req.AppStoreRequirements,

		SoftwareType:            req.SoftwareType,
		IntegrationRequirements: req.IntegrationRequirements,
		DatabaseRequirements:    req.DatabaseRequirements,
		DevelopmentEnvironment:  req.DevelopmentEnvironment,
		TestingEnvironment:      req.TestingEnvironment,
		DeploymentEnvironment:   req.DeploymentEnvironment,

		SoftwareName:  req.SoftwareName,
		LicenseType:   req.LicenseType,
		NumberOfUsers: req.NumberOfUsers,

		CompanyName:    req.CompanyName,
		CompanyMotto:   req.CompanyMotto,
		CompanyHistory: req.CompanyHistory,
		ClientName:     req.ClientName,
		ClientEmail:    req.ClientEmail,
		ClientPhone:    req.ClientPhone,
		BusinessPhone:  req.BusinessPhone,
		Address:        req.Address,

		StartDate:       parseTime(req.StartDate),
		EndDate:         parseTime(req.EndDate),
		Deadline:        parseTime(req.Deadline),
		EstimatedHours:  req.EstimatedHours,
		ActualHours:     req.ActualHours,
		Progress:        req.Progress,
		Milestones:      req.Milestones,
		Priority:        req.Priority,
		Notes:           req.Notes,
		SpecialFeatures: req.SpecialFeatures,
		LogoStatus:      req.LogoStatus,
	})
	if err != nil {
		h.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"projectId": project.ID,
		"message":   "Project created successfully",
	})
}

// List handles GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	views, err := h.projects.List(c.Request.Context(), session)
	if err != nil {
		h.FromError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store, max-age=0")
	c.JSON(http.StatusOK, views)
}

// Get handles GET /api/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	session, ok := GetSession(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "Invalid project ID format", nil)
		return
	}

	detail, err := h.projects.GetDetail(c.Request.Context(), session, id)
	if err != nil {
		h.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func coerceFloat(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
