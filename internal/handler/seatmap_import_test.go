package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PouyaBirvand/blito/internal/store"
)

// Export and import run against the in-memory store only, so they are
// testable without a database.

func TestExportNamesFileAfterTitle(t *testing.T) {
	st := store.NewDefault()
	st.SetTitle("My Grand Hall")
	h := NewSeatMapHandler(nil, st)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Export(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="My-Grand-Hall.json"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Contains(t, rec.Body.String(), `"title":"My Grand Hall"`)
}

func TestExportFallbackFilename(t *testing.T) {
	st := store.NewDefault()
	st.SetTitle("   ")
	h := NewSeatMapHandler(nil, st)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Export(e.NewContext(req, rec)))

	assert.Equal(t, `attachment; filename="seat-map.json"`, rec.Header().Get(echo.HeaderContentDisposition))
}

func TestImportReplacesWorkingMap(t *testing.T) {
	st := store.NewDefault()
	h := NewSeatMapHandler(nil, st)

	body := `{"title":"Imported","venue":"Arena","stage":{"x":1,"y":2,"width":3,"height":4,"name":"S","floorId":"floor-1"},` +
		`"sections":[],"seats":[{"id":"seat-1","row":"A","number":1,"type":"regular","status":"available","x":5,"y":6,"floorId":"floor-1"}],` +
		`"floors":[{"id":"floor-1","name":"Main","level":1}],"activeFloorId":"floor-1"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Import(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	snap := st.Snapshot()
	assert.Equal(t, "Imported", snap.Title)
	require.Len(t, snap.Seats, 1)
}

func TestImportMalformedLeavesStoreUntouched(t *testing.T) {
	st := store.NewDefault()
	st.SetTitle("Before Import")
	h := NewSeatMapHandler(nil, st)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title": [42]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Import(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid seat map file format")
	assert.Equal(t, "Before Import", st.Snapshot().Title, "working map untouched")
}
