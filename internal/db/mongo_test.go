package db

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/360method/homekeep/internal/models"
)

func TestConnectMongo_BadURI(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://bad:uri")
	client, err := ConnectMongo()
	if err == nil {
		t.Error("expected error for bad URI, got nil")
	}
	if client != nil {
		t.Error("expected nil client on error")
	}
}

func TestInsertInspection_NilCollection(t *testing.T) {
	coll := &MongoCollection{Collection: nil}
	_, err := coll.InsertInspection(context.Background(), models.Inspection{})
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestInsertTask_NilCollection(t *testing.T) {
	coll := &MongoCollection{Collection: nil}
	err := coll.InsertTask(context.Background(), models.MaintenanceTask{})
	if err == nil {
		t.Error("expected error when collection is nil")
	}
}

func TestUpdateInspectionProgress_InvalidID(t *testing.T) {
	coll := &MongoCollection{Collection: &mongo.Collection{}}
	err := coll.UpdateInspectionProgress(context.Background(), "not-an-object-id", models.InspectionProgress{})
	if err == nil {
		t.Error("expected error for malformed inspection id")
	}
}

func TestInspectionProgressSet_OnlyTouchesProgressFields(t *testing.T) {
	set := inspectionProgressSet(models.InspectionProgress{
		Status:               models.InspectionCompleted,
		ChecklistItems:       []models.ChecklistItem{{CheckpointID: "hvac-filter", Answer: "good"}},
		CompletionPercentage: 100,
		IssuesFound:          0,
	})

	for _, key := range []string{"status", "checklist_items", "completion_percentage", "issues_found", "updated_at"} {
		if _, ok := set[key]; !ok {
			t.Errorf("expected %q in the set document", key)
		}
	}
	for _, key := range []string{"created_at", "inspection_date", "property_id", "user_id", "notes"} {
		if _, ok := set[key]; ok {
			t.Errorf("set document must not rewrite insert-time field %q", key)
		}
	}
}

// Integration test (requires running MongoDB)
func TestInspectionRoundTrip_Integration(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" || uri == "uri" {
		t.Skip("MONGO_URI not set or invalid, skipping integration test")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
		return
	}
	defer client.Disconnect(context.Background())

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "homekeep_test"
	}
	collection := client.Database(dbName).Collection("inspections")
	collection.Drop(context.Background())

	coll := &MongoCollection{Collection: collection}
	id, err := coll.InsertInspection(context.Background(), models.Inspection{
		PropertyID: "prop-1",
		RouteMode:  "quick",
		Status:     models.InspectionInProgress,
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	found, err := coll.FindInspectionByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Status != models.InspectionInProgress {
		t.Errorf("expected status %q, got %q", models.InspectionInProgress, found.Status)
	}

	if err := coll.UpdateInspectionProgress(context.Background(), id, models.InspectionProgress{
		Status:               models.InspectionCompleted,
		CompletionPercentage: 100,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	again, err := coll.FindInspectionByID(context.Background(), id)
	if err != nil {
		t.Fatalf("re-find failed: %v", err)
	}
	if again.CompletionPercentage != 100 {
		t.Errorf("expected completion 100, got %d", again.CompletionPercentage)
	}
}
