package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardLinearFlow(t *testing.T) {
	w := New()
	assert.Equal(t, StepType, w.Step)

	// Cannot advance without selecting a type
	errs := w.Next()
	require.NotEmpty(t, errs)
	assert.Equal(t, "Project type is required", errs["type"])
	assert.Equal(t, StepType, w.Step)

	w.Form.Type = "WEBSITE"
	require.Empty(t, w.Next())
	assert.Equal(t, StepDetails, w.Step)

	errs = w.Next()
	assert.Equal(t, "Project title is required", errs["title"])
	assert.Equal(t, "Project description is required", errs["description"])
	assert.Equal(t, "Website type is required", errs["websiteType"])
	assert.Equal(t, StepDetails, w.Step)

	w.Form.Title = "Redesign"
	w.Form.Description = "Refresh the homepage"
	w.Form.WebsiteType = "CORPORATE"
	require.Empty(t, w.Next())
	assert.Equal(t, StepContact, w.Step)

	errs = w.Next()
	assert.Equal(t, "Company name is required", errs["companyName"])
	assert.Equal(t, "Your name is required", errs["clientName"])
	assert.Equal(t, "Email is required", errs["clientEmail"])
	assert.Equal(t, "Phone number is required", errs["clientPhone"])

	w.Form.CompanyName = "Acme"
	w.Form.ClientName = "Jane Doe"
	w.Form.ClientEmail = "not-an-email"
	w.Form.ClientPhone = "555-0100"
	errs = w.Next()
	assert.Equal(t, "Please enter a valid email address", errs["clientEmail"])
	assert.Equal(t, StepContact, w.Step)

	w.Form.ClientEmail = "jane@acme.com"
	require.Empty(t, w.Next())
	assert.Equal(t, StepReview, w.Step)

	// Review is terminal
	require.Empty(t, w.Next())
	assert.Equal(t, StepReview, w.Step)

	w.Prev()
	assert.Equal(t, StepContact, w.Step)
}

func TestPrevStopsAtFirstStep(t *testing.T) {
	w := New()
	w.Prev()
	assert.Equal(t, StepType, w.Step)
}

func TestValidationFailureKeepsForm(t *testing.T) {
	w := New()
	w.Form.Type = "MOBILE_APP"
	require.Empty(t, w.Next())

	w.Form.Title = "Field app"
	w.Form.MobileFeatures = []string{"push", "offline"}
	before := w.Form

	errs := w.Next()
	require.NotEmpty(t, errs)
	assert.Equal(t, before, w.Form)
	assert.Equal(t, StepDetails, w.Step)
}

func TestValidateDetailsPerType(t *testing.T) {
	base := FormData{Title: "T", Description: "D"}

	tests := []struct {
		name    string
		prepare func(*FormData)
		missing []string
	}{
		{
			name:    "website requires website type",
			prepare: func(f *FormData) { f.Type = "WEBSITE" },
			missing: []string{"websiteType"},
		},
		{
			name:    "mobile app requires platform",
			prepare: func(f *FormData) { f.Type = "MOBILE_APP" },
			missing: []string{"mobilePlatform"},
		},
		{
			name:    "custom software requires software type",
			prepare: func(f *FormData) { f.Type = "CUSTOM_SOFTWARE" },
			missing: []string{"softwareType"},
		},
		{
			name:    "purchase software requires name license and seats",
			prepare: func(f *FormData) { f.Type = "PURCHASE_SOFTWARE" },
			missing: []string{"softwareName", "licenseType", "numberOfUsers"},
		},
		{
			name:    "plain software has no extra requirements",
			prepare: func(f *FormData) { f.Type = "SOFTWARE" },
			missing: nil,
		},
		{
			name:    "e-commerce has no extra requirements",
			prepare: func(f *FormData) { f.Type = "E_COMMERCE" },
			missing: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := base
			tt.prepare(&form)
			errs := ValidateDetails(form)
			assert.Len(t, errs, len(tt.missing))
			for _, field := range tt.missing {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestToggleMobileFeatureIsSymmetric(t *testing.T) {
	w := New()
	w.Form.MobileFeatures = []string{"push", "offline"}
	initial := append([]string(nil), w.Form.MobileFeatures...)

	w.ToggleMobileFeature("payments")
	assert.Equal(t, []string{"push", "offline", "payments"}, w.Form.MobileFeatures)

	w.ToggleMobileFeature("payments")
	assert.Equal(t, initial, w.Form.MobileFeatures)

	// Removing from the middle preserves order of the rest
	w.ToggleMobileFeature("push")
	assert.Equal(t, []string{"offline"}, w.Form.MobileFeatures)
}

func TestMissingRequired(t *testing.T) {
	assert.Equal(t,
		[]string{"title", "description", "type", "companyName", "clientName", "clientEmail", "clientPhone"},
		MissingRequired(FormData{}))

	full := FormData{
		Title:       "T",
		Description: "D",
		Type:        "WEBSITE",
		CompanyName: "Acme",
		ClientName:  "Jane",
		ClientEmail: "jane@acme.com",
		ClientPhone: "555-0100",
	}
	assert.Empty(t, MissingRequired(full))

	partial := full
	partial.ClientEmail = ""
	partial.Title = ""
	assert.Equal(t, []string{"title", "clientEmail"}, MissingRequired(partial))
}

func TestPayloadCoercion(t *testing.T) {
	f := FormData{
		Title:          "T",
		Budget:         "not-a-number",
		NumberOfUsers:  "25",
		MobileFeatures: []string{"push", "offline"},
	}

	payload := f.Payload()
	assert.Equal(t, float64(0), payload["budget"])
	assert.Equal(t, 25, payload["numberOfUsers"])
	assert.Equal(t, 3, payload["priority"])
	assert.Equal(t, "PENDING", payload["status"])
	assert.Equal(t, []string{"push", "offline"}, payload["mobileFeatures"])

	f.Budget = "4500.50"
	f.Priority = 1
	payload = f.Payload()
	assert.Equal(t, 4500.50, payload["budget"])
	assert.Equal(t, 1, payload["priority"])
}
