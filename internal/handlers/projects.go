package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/360method/homekeep/internal/db"
	"github.com/360method/homekeep/internal/middleware"
	"github.com/360method/homekeep/internal/models"
	"github.com/360method/homekeep/internal/projects"
)

// ProjectHandler handles upgrade project CRUD, milestones and quotes
type ProjectHandler struct {
	projects db.ProjectCollection
	service  *projects.Service
	validate *validator.Validate
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(collection db.ProjectCollection, service *projects.Service) *ProjectHandler {
	return &ProjectHandler{
		projects: collection,
		service:  service,
		validate: validator.New(),
	}
}

type projectRequest struct {
	PropertyID  string          `json:"property_id" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status" validate:"omitempty,oneof=planning in_progress on_hold completed"`
	Budget      decimal.Decimal `json:"budget"`
}

// Collection handles GET (list) and POST (create) on /api/projects
func (h *ProjectHandler) Collection(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		propertyID := r.URL.Query().Get("property_id")
		if propertyID == "" {
			http.Error(w, "property_id is required", http.StatusBadRequest)
			return
		}
		list, err := h.projects.FindProjectsByProperty(r.Context(), propertyID)
		if err != nil {
			http.Error(w, "Failed to list projects", http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []models.Project{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(list)

	case http.MethodPost:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		var req projectRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Status == "" {
			req.Status = models.ProjectPlanning
		}

		project := models.Project{
			PropertyID:  req.PropertyID,
			UserID:      claims.UserID,
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			Budget:      req.Budget,
			Spent:       decimal.Zero,
		}

		id, err := h.projects.InsertProject(r.Context(), project)
		if err != nil {
			http.Error(w, "Failed to create project", http.StatusInternalServerError)
			return
		}

		created, err := h.projects.FindProjectByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Failed to load created project", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ByID handles GET and PUT on /api/projects/{id}
func (h *ProjectHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		project, err := h.projects.FindProjectByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}

		response := struct {
			models.Project
			Remaining decimal.Decimal `json:"remaining"`
		}{Project: *project, Remaining: project.Remaining()}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)

	case http.MethodPut:
		project, err := h.projects.FindProjectByID(r.Context(), id)
		if err != nil {
			http.Error(w, "Project not found", http.StatusNotFound)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		var req projectRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := h.validate.Struct(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		project.Title = req.Title
		project.Description = req.Description
		if req.Status != "" {
			project.Status = req.Status
		}
		project.Budget = req.Budget

		if err := h.projects.UpdateProject(r.Context(), id, *project); err != nil {
			http.Error(w, "Failed to update project", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(project)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GenerateMilestones handles POST /api/projects/{id}/milestones/generate
func (h *ProjectHandler) GenerateMilestones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	project, err := h.service.GenerateMilestones(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

type milestoneUpdateRequest struct {
	Status     string          `json:"status" validate:"required,oneof=pending in_progress done"`
	ActualCost decimal.Decimal `json:"actual_cost"`
}

// UpdateMilestone handles PUT /api/projects/{id}/milestones/{index}
func (h *ProjectHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "Invalid milestone index", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req milestoneUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	projectID := r.PathValue("id")

	// Completing a milestone rolls its actual cost into spend; other status
	// moves are plain field updates.
	if req.Status == projects.MilestoneDone {
		project, err := h.service.CompleteMilestone(r.Context(), projectID, index, req.ActualCost)
		if err != nil {
			http.Error(w, err.Error(), projectStatus(err))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(project)
		return
	}

	project, err := h.projects.FindProjectByID(r.Context(), projectID)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if index < 0 || index >= len(project.Milestones) {
		http.Error(w, projects.ErrMilestoneOutOfRange.Error(), http.StatusBadRequest)
		return
	}

	project.Milestones[index].Status = req.Status
	if err := h.projects.UpdateProject(r.Context(), projectID, *project); err != nil {
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

type quoteRequest struct {
	Contractor string          `json:"contractor" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes"`
}

// AddQuote handles POST /api/projects/{id}/quotes
func (h *ProjectHandler) AddQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req quoteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	project, err := h.service.AddQuote(r.Context(), r.PathValue("id"), models.Quote{
		Contractor: req.Contractor,
		Amount:     req.Amount,
		Notes:      req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), projectStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(project)
}

// AcceptQuote handles POST /api/projects/{id}/quotes/{index}/accept
func (h *ProjectHandler) AcceptQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "Invalid quote index", http.StatusBadRequest)
		return
	}

	project, err := h.service.AcceptQuote(r.Context(), r.PathValue("id"), index)
	if err != nil {
		http.Error(w, err.Error(), projectStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

// projectStatus maps project service errors to HTTP status codes.
func projectStatus(err error) int {
	switch {
	case errors.Is(err, projects.ErrMilestoneOutOfRange),
		errors.Is(err, projects.ErrQuoteOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, projects.ErrMilestoneDone),
		errors.Is(err, projects.ErrQuoteNotReceived):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
