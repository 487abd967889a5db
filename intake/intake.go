// Package intake implements the multi-step project request wizard as an
// explicit accumulator threaded through pure per-step validators. A failed
// validation returns the field errors and leaves the accumulated form intact.
package intake

import (
	"regexp"
	"strconv"

	"github.com/bucketlistprince/hpm-tech-solutions/models"
)

// Step identifies a wizard step. Steps are linear; the only branching is
// type-conditional required fields inside StepDetails.
type Step int

const (
	StepType Step = iota + 1
	StepDetails
	StepContact
	StepReview
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// FormData accumulates every field collected across the wizard steps.
// Numeric inputs are kept as entered (strings) until Payload coerces them.
type FormData struct {
	// Step 1: project type
	Type string

	// Step 2: project details
	Title             string
	Description       string
	Budget            string
	Timeline          string
	PreferredFeatures string

	// Website specific
	WebsiteType       string
	ResponsiveDesign  bool
	CMSRequired       bool
	DomainName        string
	ContentReady      bool
	WebsiteManagement bool

	// Mobile app specific
	MobilePlatform       string
	MobileFeatures       []string
	AppStoreRequirements string

	// Custom software specific
	SoftwareType            string
	IntegrationRequirements string
	DatabaseRequirements    string
	DevelopmentEnvironment  string
	TestingEnvironment      string
	DeploymentEnvironment   string

	// Purchase software specific
	SoftwareName  string
	LicenseType   string
	NumberOfUsers string

	// Step 3: company / contact
	CompanyName    string
	CompanyMotto   string
	CompanyHistory string
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	BusinessPhone  string
	Address        string

	// Additional fields
	SpecialFeatures string
	LogoStatus      string
	Milestones      string
	Notes           string
	Priority        int
}

// Wizard tracks the current step and the accumulated form.
type Wizard struct {
	Step Step
	Form FormData
}

// New returns a wizard positioned on the type-selection step.
func New() *Wizard {
	return &Wizard{Step: StepType, Form: FormData{LogoStatus: "NEEDED", Priority: 3}}
}

// Next validates the current step and advances on success. On failure the
// field errors are returned and neither the step nor the form changes.
func (w *Wizard) Next() map[string]string {
	errs := w.validateStep()
	if len(errs) > 0 {
		return errs
	}
	if w.Step < StepReview {
		w.Step++
	}
	return nil
}

// Prev moves back one step without validating.
func (w *Wizard) Prev() {
	if w.Step > StepType {
		w.Step--
	}
}

// ToggleMobileFeature adds the feature if absent and removes it if present.
func (w *Wizard) ToggleMobileFeature(id string) {
	for i, f := range w.Form.MobileFeatures {
		if f == id {
			w.Form.MobileFeatures = append(w.Form.MobileFeatures[:i], w.Form.MobileFeatures[i+1:]...)
			return
		}
	}
	w.Form.MobileFeatures = append(w.Form.MobileFeatures, id)
}

func (w *Wizard) validateStep() map[string]string {
	switch w.Step {
	case StepType:
		return ValidateType(w.Form)
	case StepDetails:
		return ValidateDetails(w.Form)
	case StepContact:
		return ValidateContact(w.Form)
	default:
		return nil
	}
}

// ValidateType checks the type-selection step.
func ValidateType(f FormData) map[string]string {
	errs := map[string]string{}
	if f.Type == "" {
		errs["type"] = "Project type is required"
	}
	return errs
}

// ValidateDetails checks the details step, including the fields required
// only for the selected project type.
func ValidateDetails(f FormData) map[string]string {
	errs := map[string]string{}
	if f.Title == "" {
		errs["title"] = "Project title is required"
	}
	if f.Description == "" {
		errs["description"] = "Project description is required"
	}

	switch models.ProjectType(f.Type) {
	case models.TypeWebsite:
		if f.WebsiteType == "" {
			errs["websiteType"] = "Website type is required"
		}
	case models.TypeMobileApp:
		if f.MobilePlatform == "" {
			errs["mobilePlatform"] = "Mobile platform is required"
		}
	case models.TypeCustomSoftware:
		if f.SoftwareType == "" {
			errs["softwareType"] = "Software type is required"
		}
	case models.TypePurchaseSoftware:
		if f.SoftwareName == "" {
			errs["softwareName"] = "Software name is required"
		}
		if f.LicenseType == "" {
			errs["licenseType"] = "License type is required"
		}
		if f.NumberOfUsers == "" {
			errs["numberOfUsers"] = "Number of users is required"
		}
	}
	return errs
}

// ValidateContact checks the contact step.
func ValidateContact(f FormData) map[string]string {
	errs := map[string]string{}
	if f.CompanyName == "" {
		errs["companyName"] = "Company name is required"
	}
	if f.ClientName == "" {
		errs["clientName"] = "Your name is required"
	}
	if f.ClientEmail == "" {
		errs["clientEmail"] = "Email is required"
	} else if !emailPattern.MatchString(f.ClientEmail) {
		errs["clientEmail"] = "Please enter a valid email address"
	}
	if f.ClientPhone == "" {
		errs["clientPhone"] = "Phone number is required"
	}
	return errs
}

// MissingRequired returns the subset of the seven submission-required fields
// that are still empty, in the order the create endpoint reports them.
func MissingRequired(f FormData) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"title", f.Title},
		{"description", f.Description},
		{"type", f.Type},
		{"companyName", f.CompanyName},
		{"clientName", f.ClientName},
		{"clientEmail", f.ClientEmail},
		{"clientPhone", f.ClientPhone},
	}
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// Payload flattens the accumulated form into the body submitted to the
// project create endpoint. Non-numeric budget entries coerce to 0.
func (f FormData) Payload() map[string]any {
	budget, err := strconv.ParseFloat(f.Budget, 64)
	if err != nil {
		budget = 0
	}
	numberOfUsers, err := strconv.Atoi(f.NumberOfUsers)
	if err != nil {
		numberOfUsers = 0
	}
	priority := f.Priority
	if priority == 0 {
		priority = 3
	}

	return map[string]any{
		"title":                   f.Title,
		"description":             f.Description,
		"type":                    f.Type,
		"status":                  string(models.StatusPending),
		"budget":                  budget,
		"timeline":                f.Timeline,
		"preferredFeatures":       f.PreferredFeatures,
		"websiteType":             f.WebsiteType,
		"responsiveDesign":        f.ResponsiveDesign,
		"cmsRequired":             f.CMSRequired,
		"domainName":              f.DomainName,
		"contentReady":            f.ContentReady,
		"websiteManagement":       f.WebsiteManagement,
		"mobilePlatform":          f.MobilePlatform,
		"mobileFeatures":          f.MobileFeatures,
		"appStoreRequirements":    f.AppStoreRequirements,
		"softwareType":            f.SoftwareType,
		"integrationRequirements": f.IntegrationRequirements,
		"databaseRequirements":    f.DatabaseRequirements,
		"developmentEnvironment":  f.DevelopmentEnvironment,
		"testingEnvironment":      f.TestingEnvironment,
		"deploymentEnvironment":   f.DeploymentEnvironment,
		"softwareName":            f.SoftwareName,
		"licenseType":             f.LicenseType,
		"numberOfUsers":           numberOfUsers,
		"companyName":             f.CompanyName,
		"companyMotto":            f.CompanyMotto,
		"companyHistory":          f.CompanyHistory,
		"clientName":              f.ClientName,
		"clientEmail":             f.ClientEmail,
		"clientPhone":             f.ClientPhone,
		"businessPhone":           f.BusinessPhone,
		"address":                 f.Address,
		"specialFeatures":         f.SpecialFeatures,
		"logoStatus":              f.LogoStatus,
		"milestones":              f.Milestones,
		"notes":                   f.Notes,
		"priority":                priority,
		"progress":                0,
	}
}
