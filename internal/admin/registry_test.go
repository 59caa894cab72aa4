package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

func TestRegistry_KnownResources(t *testing.T) {
	registry := NewRegistry(nil)

	assert.Equal(t, []string{
		"categories", "contractors", "events", "invitations",
		"notifications", "reviews", "services", "users",
	}, registry.Names())

	for _, descriptor := range registry.Describe() {
		assert.NotEmpty(t, descriptor.Description)
		assert.NotNil(t, descriptor.List)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry(nil)

	resource, err := registry.Lookup("events")
	require.NoError(t, err)
	assert.Equal(t, "events", resource.Name)

	_, err = registry.Lookup("castings")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
