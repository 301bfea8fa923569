package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ferreteria-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// Sin el artefacto generado, el arranque debe continuar con la UI de docs
// deshabilitada en lugar de morir en pánico.
func TestMountSwagger_SinArchivo_NoHacePanic(t *testing.T) {
	app := fiber.New()

	assert.NotPanics(t, func() {
		mounted := mountSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "test", testLogger())
		assert.False(t, mounted, "sin swagger.json la UI no debe montarse")
	})
}

func TestMountSwagger_ConArchivo_MontaLaUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"test","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(file, []byte(spec), 0o644))

	app := fiber.New()
	assert.True(t, mountSwagger(app, file, "test", testLogger()))
}
