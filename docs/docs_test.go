package docs_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futurestec/crm-leads-api/docs"
)

func TestSwaggerJSON_Embebido_EsValido(t *testing.T) {
	require.NotEmpty(t, docs.SwaggerJSON)

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(docs.SwaggerJSON, &spec))
	assert.Equal(t, "2.0", spec.Swagger)

	for _, path := range []string{
		"/api/auth/login",
		"/api/leads",
		"/api/leads/{id}",
		"/api/leads/bulk/update",
		"/api/leads/{id}/comments",
		"/api/interest-email",
	} {
		assert.Contains(t, spec.Paths, path)
	}
}

// El middleware debe montarse con el contenido embebido, sin leer archivos
// del directorio de trabajo al arrancar.
func TestSwagger_MiddlewareMontaConContenidoEmbebido(t *testing.T) {
	var app *fiber.App
	require.NotPanics(t, func() {
		app = fiber.New()
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: docs.SwaggerJSON,
			Path:        "docs",
			Title:       "CRM Leads API",
		}))
	})

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
