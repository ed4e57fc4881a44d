package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/360method/homekeep/internal/catalog"
	"github.com/360method/homekeep/internal/db"
	"github.com/360method/homekeep/internal/flow"
	"github.com/360method/homekeep/internal/middleware"
	"github.com/360method/homekeep/internal/models"
)

// InspectionHandler serves the area catalog, the session wizard, and the
// inspection history.
type InspectionHandler struct {
	engine      *flow.Engine
	inspections db.InspectionCollection
	validate    *validator.Validate
}

// NewInspectionHandler creates a new inspection handler
func NewInspectionHandler(engine *flow.Engine, inspections db.InspectionCollection) *InspectionHandler {
	return &InspectionHandler{
		engine:      engine,
		inspections: inspections,
		validate:    validator.New(),
	}
}

// CatalogAreas handles GET /api/catalog/areas
func (h *InspectionHandler) CatalogAreas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := struct {
		Zones []catalog.Zone `json:"zones"`
		Areas []catalog.Area `json:"areas"`
	}{Zones: catalog.Zones, Areas: catalog.Areas}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CatalogCheckpoints handles GET /api/catalog/areas/{id}/checkpoints?mode=
func (h *InspectionHandler) CatalogCheckpoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	areaID := r.PathValue("id")
	if _, ok := catalog.AreaByID(areaID); !ok {
		http.Error(w, "Area not found", http.StatusNotFound)
		return
	}

	mode := catalog.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = catalog.ModeQuick
	}
	if mode != catalog.ModeQuick && mode != catalog.ModeFull {
		http.Error(w, "Mode must be quick or full", http.StatusBadRequest)
		return
	}

	checkpoints := catalog.CheckpointsForArea(areaID, mode)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkpoints)
}

type startRequest struct {
	PropertyID string   `json:"property_id" validate:"required"`
	Mode       string   `json:"mode" validate:"required,oneof=quick full"`
	AreaIDs    []string `json:"area_ids"`
}

// Start handles POST /api/inspections/start
func (h *InspectionHandler) Start(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req startRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.engine.Start(r.Context(), flow.StartInput{
		PropertyID: req.PropertyID,
		UserID:     claims.UserID,
		Mode:       catalog.Mode(req.Mode),
		AreaIDs:    req.AreaIDs,
	})
	if err != nil {
		http.Error(w, err.Error(), flowStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(view)
}

// Session handles GET /api/inspections/sessions/{id}
func (h *InspectionHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := h.engine.Get(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), flowStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// Answer handles POST /api/inspections/sessions/{id}/answer
func (h *InspectionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var answer flow.Answer
	if err := json.Unmarshal(body, &answer); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	view, err := h.engine.Answer(r.PathValue("id"), answer)
	if err != nil {
		http.Error(w, err.Error(), flowStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// Next handles POST /api/inspections/sessions/{id}/next
func (h *InspectionHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.engine.Next)
}

// SkipArea handles POST /api/inspections/sessions/{id}/skip-area
func (h *InspectionHandler) SkipArea(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.engine.SkipArea)
}

// Back handles POST /api/inspections/sessions/{id}/back
func (h *InspectionHandler) Back(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := h.engine.Back(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), flowStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// Cancel handles POST /api/inspections/sessions/{id}/cancel
func (h *InspectionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := h.engine.Cancel(r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), flowStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// List handles GET /api/inspections?property_id=
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	propertyID := r.URL.Query().Get("property_id")
	if propertyID == "" {
		http.Error(w, "property_id is required", http.StatusBadRequest)
		return
	}

	cursor, err := h.inspections.FindInspections(r.Context(), bson.M{"property_id": propertyID})
	if err != nil {
		http.Error(w, "Failed to list inspections", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var inspections []models.Inspection
	if err := cursor.All(r.Context(), &inspections); err != nil {
		http.Error(w, "Failed to decode inspections", http.StatusInternalServerError)
		return
	}
	if inspections == nil {
		inspections = []models.Inspection{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inspections)
}

func (h *InspectionHandler) advance(w http.ResponseWriter, r *http.Request, step func(ctx context.Context, id string) (*flow.View, error)) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, err := step(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), flowStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// flowStatus maps session engine errors to HTTP status codes.
func flowStatus(err error) int {
	switch {
	case errors.Is(err, flow.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, flow.ErrAlreadyComplete),
		errors.Is(err, flow.ErrNotInProgress):
		return http.StatusConflict
	case errors.Is(err, flow.ErrBadAreaSelection),
		errors.Is(err, flow.ErrAnswerRequired),
		errors.Is(err, flow.ErrIntroHasNoAnswer),
		errors.Is(err, flow.ErrInvalidAnswer):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
