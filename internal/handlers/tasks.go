package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/360method/homekeep/internal/db"
	"github.com/360method/homekeep/internal/models"
)

// TaskHandler handles maintenance task listing and status updates
type TaskHandler struct {
	tasks    db.TaskCollection
	validate *validator.Validate
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks db.TaskCollection) *TaskHandler {
	return &TaskHandler{
		tasks:    tasks,
		validate: validator.New(),
	}
}

// List handles GET /api/tasks?property_id=&status=&priority=
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	propertyID := r.URL.Query().Get("property_id")
	if propertyID == "" {
		http.Error(w, "property_id is required", http.StatusBadRequest)
		return
	}

	filter := bson.M{"property_id": propertyID}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	if priority := r.URL.Query().Get("priority"); priority != "" {
		filter["priority"] = priority
	}

	cursor, err := h.tasks.FindTasks(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to list tasks", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var tasks []models.MaintenanceTask
	if err := cursor.All(r.Context(), &tasks); err != nil {
		http.Error(w, "Failed to decode tasks", http.StatusInternalServerError)
		return
	}
	if tasks == nil {
		tasks = []models.MaintenanceTask{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

type taskUpdateRequest struct {
	Status   string `json:"status" validate:"omitempty,oneof=Identified Scheduled Completed"`
	Priority string `json:"priority" validate:"omitempty,oneof=High Medium Low"`
}

// Update handles PUT /api/tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req taskUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Status == "" && req.Priority == "" {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	task, err := h.tasks.FindTaskByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}

	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}

	if err := h.tasks.UpdateTask(r.Context(), id, *task); err != nil {
		http.Error(w, "Failed to update task", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(task)
}
