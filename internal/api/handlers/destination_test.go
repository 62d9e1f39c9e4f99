package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlist/internal/api/dto"
	"wanderlist/internal/testutil"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func setupDestinationHandlerTest(t *testing.T) (*DestinationHandler, *echo.Echo) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := NewDestinationHandler(db, nil)
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return handler, e
}

func createDestination(t *testing.T, handler *DestinationHandler, e *echo.Echo, body string) dto.Destination {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/destinations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created dto.Destination
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func TestDestinationHandler_Create(t *testing.T) {
	handler, e := setupDestinationHandlerTest(t)

	t.Run("minimal payload applies defaults", func(t *testing.T) {
		created := createDestination(t, handler, e, `{"name":"Kyoto","country":"Japan"}`)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Kyoto", created.Name)
		assert.Equal(t, "Japan", created.Country)
		assert.Equal(t, "", created.Continent)
		assert.Equal(t, "", created.Note)
		assert.Equal(t, []string{}, created.Tags)
		assert.False(t, created.Visited)

		parsed, err := time.Parse(time.RFC3339, created.CreatedAt)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, parsed.Location())
	})

	t.Run("empty strings are present, not missing", func(t *testing.T) {
		created := createDestination(t, handler, e, `{"name":"","country":"Japan"}`)

		assert.Equal(t, "", created.Name)
		assert.Equal(t, "Japan", created.Country)
	})

	t.Run("missing required field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/destinations", strings.NewReader(`{"name":"Kyoto"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong primitive type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/destinations", strings.NewReader(`{"name":"Kyoto","country":"Japan","tags":"culture"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDestinationHandler_List(t *testing.T) {
	handler, e := setupDestinationHandlerTest(t)

	t.Run("empty store yields empty array", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("tags round-trip in order", func(t *testing.T) {
		created := createDestination(t, handler, e, `{"name":"Rome","country":"Italy","tags":["a","b"]}`)

		req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.List(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var destinations []dto.Destination
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &destinations))
		require.Len(t, destinations, 1)
		assert.Equal(t, created.ID, destinations[0].ID)
		assert.Equal(t, []string{"a", "b"}, destinations[0].Tags)
	})
}

func TestDestinationHandler_Update(t *testing.T) {
	handler, e := setupDestinationHandlerTest(t)

	created := createDestination(t, handler, e, `{"name":"Lisbon","country":"Portugal","continent":"Europe","note":"Ocean views","tags":["history","ocean"]}`)

	patch := func(id, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/destinations/"+id, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/destinations/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, handler.Update(c))
		return rec
	}

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		rec := patch(created.ID, `{"visited":true}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated dto.Destination
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.True(t, updated.Visited)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Country, updated.Country)
		assert.Equal(t, created.Continent, updated.Continent)
		assert.Equal(t, created.Note, updated.Note)
		assert.Equal(t, created.Tags, updated.Tags)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("tags in payload are ignored", func(t *testing.T) {
		rec := patch(created.ID, `{"tags":["replaced"],"note":"updated"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var updated dto.Destination
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "updated", updated.Note)
		assert.Equal(t, created.Tags, updated.Tags)
	})

	t.Run("unknown id returns 404 with detail", func(t *testing.T) {
		rec := patch("11111111-2222-3333-4444-555555555555", `{"visited":true}`)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Destination not found", body["error"])
	})

	t.Run("unparseable id returns 404", func(t *testing.T) {
		rec := patch("not-a-uuid", `{"visited":true}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDestinationHandler_Delete(t *testing.T) {
	handler, e := setupDestinationHandlerTest(t)

	created := createDestination(t, handler, e, `{"name":"Sydney","country":"Australia"}`)

	del := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/destinations/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/destinations/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, handler.Delete(c))
		return rec
	}

	t.Run("removes the row with empty body", func(t *testing.T) {
		rec := del(created.ID)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("second delete returns 404", func(t *testing.T) {
		rec := del(created.ID)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := del("11111111-2222-3333-4444-555555555555")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
