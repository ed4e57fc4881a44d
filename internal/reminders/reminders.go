// Package reminders runs the scheduled overdue-task sweep.
package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/360method/homekeep/internal/db"
	"github.com/360method/homekeep/internal/models"
	"github.com/360method/homekeep/internal/notify"
)

// High priority tasks older than this get a reminder.
const reminderAge = 14 * 24 * time.Hour

// Publisher sends task reminder notifications.
type Publisher interface {
	TaskReminder(ctx context.Context, note notify.TaskReminderNote) error
}

// Sweeper checks daily for stale high-priority tasks and publishes reminders.
type Sweeper struct {
	cronScheduler *cron.Cron
	tasks         db.TaskCollection
	publisher     Publisher
	jobID         cron.EntryID
}

// NewSweeper creates a reminder sweeper over the given task store.
func NewSweeper(tasks db.TaskCollection, publisher Publisher) *Sweeper {
	return &Sweeper{
		cronScheduler: cron.New(cron.WithSeconds()),
		tasks:         tasks,
		publisher:     publisher,
	}
}

// Start schedules the daily sweep at 8:00 AM.
func (s *Sweeper) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 0 8 * * *", func() {
		log.Info("Running scheduled task reminder sweep")
		if err := s.RunSweep(context.Background()); err != nil {
			log.WithError(err).Error("Task reminder sweep failed")
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling reminder sweep: %w", err)
	}

	s.cronScheduler.Start()
	log.Info("Task reminder scheduler started - will run daily at 8:00 AM")
	return nil
}

// Stop terminates the scheduler.
func (s *Sweeper) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Info("Task reminder scheduler stopped")
	}
}

// RunSweep publishes one reminder per open high-priority task older than
// two weeks. Publish failures are logged and do not stop the sweep.
func (s *Sweeper) RunSweep(ctx context.Context) error {
	now := time.Now()
	cutoff := now.Add(-reminderAge)

	filter := bson.M{
		"priority":   models.PriorityHigh,
		"status":     bson.M{"$ne": models.TaskCompleted},
		"created_at": bson.M{"$lt": cutoff},
	}

	cursor, err := s.tasks.FindTasks(ctx, filter)
	if err != nil {
		return fmt.Errorf("find stale tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var stale []models.MaintenanceTask
	if err := cursor.All(ctx, &stale); err != nil {
		return fmt.Errorf("decode stale tasks: %w", err)
	}

	sent := 0
	for _, task := range stale {
		note := notify.TaskReminderNote{
			TaskID:     task.ID.Hex(),
			PropertyID: task.PropertyID,
			Title:      task.Title,
			Priority:   task.Priority,
			AgeDays:    int(now.Sub(task.CreatedAt).Hours() / 24),
		}
		if err := s.publisher.TaskReminder(ctx, note); err != nil {
			log.WithFields(log.Fields{
				"task_id": note.TaskID,
			}).WithError(err).Warn("Failed to publish task reminder")
			continue
		}
		sent++
	}

	log.WithFields(log.Fields{
		"stale": len(stale),
		"sent":  sent,
	}).Info("Task reminder sweep finished")
	return nil
}
