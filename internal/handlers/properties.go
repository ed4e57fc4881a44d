package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/360method/homekeep/internal/db"
	"github.com/360method/homekeep/internal/middleware"
	"github.com/360method/homekeep/internal/models"
	"github.com/360method/homekeep/internal/score"
)

// PropertyHandler handles property CRUD and the home health score
type PropertyHandler struct {
	properties  db.PropertyCollection
	inspections db.InspectionCollection
	tasks       db.TaskCollection
	validate    *validator.Validate
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(properties db.PropertyCollection, inspections db.InspectionCollection, tasks db.TaskCollection) *PropertyHandler {
	return &PropertyHandler{
		properties:  properties,
		inspections: inspections,
		tasks:       tasks,
		validate:    validator.New(),
	}
}

type propertyRequest struct {
	Name          string          `json:"name" validate:"required"`
	Address       string          `json:"address" validate:"required"`
	City          string          `json:"city"`
	State         string          `json:"state"`
	ZipCode       string          `json:"zip_code"`
	Location      models.Location `json:"location"`
	YearBuilt     int             `json:"year_built" validate:"omitempty,gte=1800"`
	SquareFootage int             `json:"square_footage" validate:"omitempty,gt=0"`
}

// Collection handles GET (list) and POST (create) on /api/properties
func (h *PropertyHandler) Collection(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		properties, err := h.properties.FindPropertiesByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "Failed to list properties", http.StatusInternalServerError)
			return
		}
		if properties == nil {
			properties = []models.Property{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(properties)

	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		var req propertyRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		property := models.Property{
			OwnerID:       claims.UserID,
			Name:          req.Name,
			Address:       req.Address,
			City:          req.City,
			State:         req.State,
			ZipCode:       req.ZipCode,
			Location:      req.Location,
			YearBuilt:     req.YearBuilt,
			SquareFootage: req.SquareFootage,
		}

		id, err := h.properties.InsertProperty(r.Context(), property)
		if err != nil {
			http.Error(w, "Failed to create property", http.StatusInternalServerError)
			return
		}

		created, err := h.properties.FindPropertyByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Failed to load created property", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ByID handles GET, PUT and DELETE on /api/properties/{id}
func (h *PropertyHandler) ByID(w http.ResponseWriter, r *http.Request) {
	property, ok := h.ownedProperty(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(property)

	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		var req propertyRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		property.Name = req.Name
		property.Address = req.Address
		property.City = req.City
		property.State = req.State
		property.ZipCode = req.ZipCode
		property.Location = req.Location
		property.YearBuilt = req.YearBuilt
		property.SquareFootage = req.SquareFootage

		if err := h.properties.UpdateProperty(r.Context(), property.ID.Hex(), *property); err != nil {
			http.Error(w, "Failed to update property", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(property)

	case http.MethodDelete:
		if err := h.properties.DeleteProperty(r.Context(), property.ID.Hex()); err != nil {
			http.Error(w, "Failed to delete property", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Score handles GET /api/properties/{id}/score
func (h *PropertyHandler) Score(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	property, ok := h.ownedProperty(w, r)
	if !ok {
		return
	}
	propertyID := property.ID.Hex()

	cursor, err := h.tasks.FindTasks(r.Context(), bson.M{"property_id": propertyID})
	if err != nil {
		http.Error(w, "Failed to load tasks", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var tasks []models.MaintenanceTask
	if err := cursor.All(r.Context(), &tasks); err != nil {
		http.Error(w, "Failed to decode tasks", http.StatusInternalServerError)
		return
	}

	lastInspection, err := h.lastCompletedInspection(r, propertyID)
	if err != nil {
		http.Error(w, "Failed to load inspections", http.StatusInternalServerError)
		return
	}

	breakdown := score.Compute(tasks, lastInspection, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(breakdown)
}

// lastCompletedInspection returns the most recent completed inspection date
// for the property, or nil when there has never been one.
func (h *PropertyHandler) lastCompletedInspection(r *http.Request, propertyID string) (*time.Time, error) {
	cursor, err := h.inspections.FindInspections(r.Context(), bson.M{
		"property_id": propertyID,
		"status":      models.InspectionCompleted,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(r.Context())

	var inspections []models.Inspection
	if err := cursor.All(r.Context(), &inspections); err != nil {
		return nil, err
	}

	var latest *time.Time
	for i := range inspections {
		d := inspections[i].InspectionDate
		if latest == nil || d.After(*latest) {
			latest = &d
		}
	}
	return latest, nil
}

// ownedProperty loads the {id} property and enforces owner scoping. Admins
// can reach any property.
func (h *PropertyHandler) ownedProperty(w http.ResponseWriter, r *http.Request) (*models.Property, bool) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return nil, false
	}

	property, err := h.properties.FindPropertyByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "Property not found", http.StatusNotFound)
		return nil, false
	}

	if property.OwnerID != claims.UserID && claims.Role != models.RoleAdmin {
		http.Error(w, "Insufficient permissions", http.StatusForbidden)
		return nil, false
	}
	return property, true
}
