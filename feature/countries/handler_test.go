package countries

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"country-atlas/feature/countries/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, f *fixture) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := NewFeature(f.service)
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandleRefresh(t *testing.T) {
	f := newFixture(t, country("Aland", "Europe", 30000, "EUR"), country("Chad", "Africa", 10, "XAF"))
	app := setupTestApp(t, f)

	resp, err := app.Test(httptest.NewRequest("POST", "/countries/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[map[string]int](t, resp)
	assert.Equal(t, map[string]int{"created": 2, "updated": 0, "failed": 0, "total": 2}, body)
}

func TestHandleRefresh_SourceError(t *testing.T) {
	f := newFixture(t)
	f.service = f.build(httpSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 5))
	app := setupTestApp(t, f)

	resp, err := app.Test(httptest.NewRequest("POST", "/countries/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "External data source error", body["error"])
}

func TestHandleList(t *testing.T) {
	f := newFixture(t,
		country("Aland", "Europe", 30000, "EUR"),
		country("France", "Europe", 60000000, "EUR"),
		country("Chad", "Africa", 10, "XAF"),
	)
	_, err := f.service.RunIngestion(t.Context())
	require.NoError(t, err)
	app := setupTestApp(t, f)

	t.Run("Region and sort", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/countries?region=EUROPE&sort=gdp_desc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		list := decode[[]models.Country](t, resp)
		require.Len(t, list, 2)
		assert.Equal(t, "france", list[0].Name)
		assert.Equal(t, "aland", list[1].Name)
	})

	t.Run("Empty result", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/countries?currency=JPY", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Invalid sort", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/countries?sort=population", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandleGetAndDelete(t *testing.T) {
	f := newFixture(t, country("United States", "Americas", 300, "USD"))
	_, err := f.service.RunIngestion(t.Context())
	require.NoError(t, err)
	app := setupTestApp(t, f)

	resp, err := app.Test(httptest.NewRequest("GET", "/countries/United%20States", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[models.Country](t, resp)
	assert.Equal(t, "united states", got.Name)
	assert.Equal(t, "USD", *got.CurrencyCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/countries/united%20states", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Country deleted successfully", decode[map[string]string](t, resp)["message"])

	resp, err = app.Test(httptest.NewRequest("GET", "/countries/united%20states", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Country not found", decode[map[string]string](t, resp)["error"])

	resp, err = app.Test(httptest.NewRequest("DELETE", "/countries/united%20states", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleStatus(t *testing.T) {
	f := newFixture(t, country("Aland", "Europe", 30000, "EUR"))
	app := setupTestApp(t, f)

	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	before := decode[map[string]any](t, resp)
	assert.Equal(t, float64(0), before["total_countries"])
	assert.Nil(t, before["last_refreshed_at"])

	_, err = f.service.RunIngestion(t.Context())
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	after := decode[models.Status](t, resp)
	assert.Equal(t, int64(1), after.TotalCountries)
	require.NotNil(t, after.LastRefreshedAt)
	assert.True(t, fixedNow.Equal(*after.LastRefreshedAt))
}
