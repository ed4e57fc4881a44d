package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/360method/homekeep/internal/assist"
	"github.com/360method/homekeep/internal/auth"
	"github.com/360method/homekeep/internal/db"
	"github.com/360method/homekeep/internal/flow"
	"github.com/360method/homekeep/internal/gamification"
	"github.com/360method/homekeep/internal/handlers"
	"github.com/360method/homekeep/internal/middleware"
	"github.com/360method/homekeep/internal/notify"
	"github.com/360method/homekeep/internal/projects"
	"github.com/360method/homekeep/internal/reminders"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}

	log.SetFormatter(&log.JSONFormatter{})
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.Info("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "homekeep"
	}
	database := client.Database(dbName)

	users := &db.MongoUserCollection{Collection: database.Collection("users")}
	properties := &db.MongoPropertyCollection{Collection: database.Collection("properties")}
	inspections := &db.MongoCollection{Collection: database.Collection("inspections")}
	tasks := &db.MongoCollection{Collection: database.Collection("tasks")}
	projectStore := &db.MongoProjectCollection{Collection: database.Collection("projects")}
	xpEvents := &db.MongoXPEventCollection{Collection: database.Collection("xp_events")}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	var publisher interface {
		flow.Notifier
		reminders.Publisher
	}
	if brokerURL := os.Getenv("MQTT_BROKER_URL"); brokerURL != "" {
		dispatcher, err := notify.Connect(brokerURL, "homekeep-server")
		if err != nil {
			log.WithError(err).Warn("MQTT unavailable, notifications disabled")
			publisher = notify.Noop{}
		} else {
			publisher = dispatcher
		}
	} else {
		publisher = notify.Noop{}
	}

	xpService := gamification.NewService(users, xpEvents)
	engine := flow.NewEngine(inspections, tasks, xpService, publisher)
	projectService := projects.NewService(projectStore, assist.NewClient())

	sweeper := reminders.NewSweeper(tasks, publisher)
	if err := sweeper.Start(); err != nil {
		log.WithError(err).Fatal("Failed to start reminder sweeper")
	}
	defer sweeper.Stop()

	authHandler := handlers.NewAuthHandler(authService, users)
	propertyHandler := handlers.NewPropertyHandler(properties, inspections, tasks)
	inspectionHandler := handlers.NewInspectionHandler(engine, inspections)
	taskHandler := handlers.NewTaskHandler(tasks)
	projectHandler := handlers.NewProjectHandler(projectStore, projectService)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/profile", authHandler.GetProfile)

	mux.HandleFunc("/api/properties", propertyHandler.Collection)
	mux.HandleFunc("/api/properties/{id}", propertyHandler.ByID)
	mux.HandleFunc("/api/properties/{id}/score", propertyHandler.Score)

	mux.HandleFunc("/api/catalog/areas", inspectionHandler.CatalogAreas)
	mux.HandleFunc("/api/catalog/areas/{id}/checkpoints", inspectionHandler.CatalogCheckpoints)

	mux.HandleFunc("/api/inspections", inspectionHandler.List)
	mux.HandleFunc("/api/inspections/start", inspectionHandler.Start)
	mux.HandleFunc("/api/inspections/sessions/{id}", inspectionHandler.Session)
	mux.HandleFunc("/api/inspections/sessions/{id}/answer", inspectionHandler.Answer)
	mux.HandleFunc("/api/inspections/sessions/{id}/next", inspectionHandler.Next)
	mux.HandleFunc("/api/inspections/sessions/{id}/back", inspectionHandler.Back)
	mux.HandleFunc("/api/inspections/sessions/{id}/skip-area", inspectionHandler.SkipArea)
	mux.HandleFunc("/api/inspections/sessions/{id}/cancel", inspectionHandler.Cancel)

	mux.HandleFunc("/api/tasks", taskHandler.List)
	mux.HandleFunc("/api/tasks/{id}", taskHandler.Update)

	mux.HandleFunc("/api/projects", projectHandler.Collection)
	mux.HandleFunc("/api/projects/{id}", projectHandler.ByID)
	mux.HandleFunc("/api/projects/{id}/milestones/generate", projectHandler.GenerateMilestones)
	mux.HandleFunc("/api/projects/{id}/milestones/{index}", projectHandler.UpdateMilestone)
	mux.HandleFunc("/api/projects/{id}/quotes", projectHandler.AddQuote)
	mux.HandleFunc("/api/projects/{id}/quotes/{index}/accept", projectHandler.AcceptQuote)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()

	handler := middleware.Logging(rateLimiter.RateLimit(120, 60)(authMiddleware.Authenticate(mux)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
