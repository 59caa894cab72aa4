package email

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateManager_BuiltInTemplates(t *testing.T) {
	tm := NewTemplateManager()

	// Все встроенные шаблоны доступны сразу
	for name := range defaultTemplates {
		_, err := tm.Render(name, TemplateData{})
		require.NoError(t, err, "template %s", name)
	}
}

func TestTemplateManager_RenderSubstitutesData(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render("invitation_sent", TemplateData{
		"RecipientName": "DJ Max",
		"EventName":     "Summer wedding",
		"Location":      "Riverside hall",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "DJ Max")
	assert.Contains(t, html, "Summer wedding")
	assert.Contains(t, html, "Riverside hall")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()

	_, err := tm.Render("no_such_template", TemplateData{})
	require.Error(t, err)
}

func TestTemplateManager_DiskOverridesBuiltIn(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "invitation_sent.html")
	require.NoError(t, os.WriteFile(custom, []byte("<p>Custom: {{.EventName}}</p>"), 0o644))

	tm := NewTemplateManager()
	require.NoError(t, tm.LoadTemplates(dir))

	html, err := tm.Render("invitation_sent", TemplateData{"EventName": "Gala"})
	require.NoError(t, err)
	assert.Equal(t, "<p>Custom: Gala</p>", html)
}

func TestSMTPProvider_ValidateRequiresHost(t *testing.T) {
	provider := NewSMTPProvider(&SMTPConfig{Port: 587}, NewTemplateManager())
	require.Error(t, provider.Validate())

	provider = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587}, NewTemplateManager())
	require.NoError(t, provider.Validate())
}
