package integrity

import (
	"testing"

	"poc-portal/feature/usecases/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	logger := zap.NewNop()
	feature := NewFeature(inventory.NewStore(t.TempDir(), logger), staticResolver{}, "", logger)

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
