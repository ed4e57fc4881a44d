package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/360method/homekeep/internal/catalog"
	"github.com/360method/homekeep/internal/flow"
	"github.com/360method/homekeep/internal/models"
)

func newInspectionHandler() (*InspectionHandler, *fakeInspections, *fakeTasks) {
	inspections := &fakeInspections{}
	tasks := &fakeTasks{}
	engine := flow.NewEngine(inspections, tasks, nil, nil)
	return NewInspectionHandler(engine, inspections), inspections, tasks
}

func TestInspectionHandler_CatalogAreas(t *testing.T) {
	handler, _, _ := newInspectionHandler()

	req := httptest.NewRequest("GET", "/api/catalog/areas", nil)
	w := httptest.NewRecorder()
	handler.CatalogAreas(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Zones []catalog.Zone `json:"zones"`
		Areas []catalog.Area `json:"areas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Zones, 4)
	assert.Len(t, response.Areas, 12)
}

func TestInspectionHandler_CatalogCheckpoints(t *testing.T) {
	handler, _, _ := newInspectionHandler()

	req := httptest.NewRequest("GET", "/api/catalog/areas/hvac/checkpoints?mode=quick", nil)
	req.SetPathValue("id", "hvac")
	w := httptest.NewRecorder()
	handler.CatalogCheckpoints(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var checkpoints []catalog.Checkpoint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkpoints))
	assert.Len(t, checkpoints, 3)

	// Unknown area
	req = httptest.NewRequest("GET", "/api/catalog/areas/nope/checkpoints", nil)
	req.SetPathValue("id", "nope")
	w = httptest.NewRecorder()
	handler.CatalogCheckpoints(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Bad mode
	req = httptest.NewRequest("GET", "/api/catalog/areas/hvac/checkpoints?mode=weird", nil)
	req.SetPathValue("id", "hvac")
	w = httptest.NewRecorder()
	handler.CatalogCheckpoints(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func startSession(t *testing.T, handler *InspectionHandler, body string) flow.View {
	t.Helper()
	req := withClaims(httptest.NewRequest("POST", "/api/inspections/start", bytes.NewBufferString(body)), ownerClaims())
	w := httptest.NewRecorder()
	handler.Start(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view flow.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestInspectionHandler_StartQuickCheck(t *testing.T) {
	handler, inspections, _ := newInspectionHandler()

	view := startSession(t, handler, `{"property_id": "prop-1", "mode": "quick", "area_ids": ["hvac"]}`)
	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, "Quick Spot Check", view.FlowType)
	require.Len(t, inspections.inserted, 1)
	assert.Equal(t, "prop-1", inspections.inserted[0].PropertyID)
}

func TestInspectionHandler_StartValidation(t *testing.T) {
	handler, _, _ := newInspectionHandler()

	for _, body := range []string{
		`{"mode": "quick", "area_ids": ["hvac"]}`,                // missing property
		`{"property_id": "p", "mode": "verbose"}`,                // bad mode
		`{"property_id": "p", "mode": "quick", "area_ids": []}`,  // no areas
		`{"property_id": "p", "mode": "quick", "area_ids": ["a", "b", "c", "d", "e", "f"]}`,
	} {
		req := withClaims(httptest.NewRequest("POST", "/api/inspections/start", bytes.NewBufferString(body)), ownerClaims())
		w := httptest.NewRecorder()
		handler.Start(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestInspectionHandler_SessionFlow(t *testing.T) {
	handler, _, tasks := newInspectionHandler()

	view := startSession(t, handler, `{"property_id": "prop-1", "mode": "quick", "area_ids": ["hvac"]}`)
	id := view.SessionID

	post := func(path string, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest("POST", path, nil)
		} else {
			req = httptest.NewRequest("POST", path, bytes.NewBufferString(body))
		}
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		switch {
		case path == "/answer":
			handler.Answer(w, req)
		case path == "/next":
			handler.Next(w, req)
		case path == "/back":
			handler.Back(w, req)
		case path == "/skip-area":
			handler.SkipArea(w, req)
		case path == "/cancel":
			handler.Cancel(w, req)
		}
		return w
	}

	// Advancing without an answer is a bad request
	w := post("/next", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Answer and advance through all three checkpoints
	w = post("/answer", `{"answer": "bad", "note": "grinding noise"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = post("/next", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = post("/answer", `{"answer": "good"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = post("/next", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = post("/answer", `{"answer": "good"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = post("/next", "")
	require.Equal(t, http.StatusOK, w.Code)

	var final flow.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &final))
	assert.Equal(t, flow.StateComplete, final.State)
	assert.Equal(t, 100, final.CompletionPercentage)
	assert.Len(t, tasks.tasks, 1)

	// Post-completion moves conflict
	w = post("/next", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	w = post("/cancel", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// GET view still works
	req := httptest.NewRequest("GET", "/api/inspections/sessions/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handler.Session(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInspectionHandler_SessionNotFound(t *testing.T) {
	handler, _, _ := newInspectionHandler()

	req := httptest.NewRequest("GET", "/api/inspections/sessions/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.Session(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInspectionHandler_List(t *testing.T) {
	handler, inspections, _ := newInspectionHandler()
	inspections.inspections = []models.Inspection{
		{PropertyID: "prop-1", Status: models.InspectionCompleted},
	}

	req := httptest.NewRequest("GET", "/api/inspections?property_id=prop-1", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Inspection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// Missing property_id
	req = httptest.NewRequest("GET", "/api/inspections", nil)
	w = httptest.NewRecorder()
	handler.List(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
