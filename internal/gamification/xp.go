// Package gamification grants XP for inspection activity. Every caller on
// the inspection path treats awards as best-effort: a failed award is logged
// by the caller and never blocks the flow.
package gamification

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/360method/homekeep/internal/db"
	"github.com/360method/homekeep/internal/models"
)

var ErrUnknownEvent = errors.New("unknown xp event")

// Points granted per event.
var eventPoints = map[string]int{
	models.EventStartInspection:    10,
	models.EventCompleteRoom:       15,
	models.EventFindIssue:          5,
	models.EventCompleteInspection: 50,
}

// Service records XP awards and keeps user totals current.
type Service struct {
	users  db.UserCollection
	events db.XPEventCollection
}

// NewService creates a gamification service.
func NewService(users db.UserCollection, events db.XPEventCollection) *Service {
	return &Service{users: users, events: events}
}

// PointsFor returns the points an event grants.
func PointsFor(event string) (int, bool) {
	p, ok := eventPoints[event]
	return p, ok
}

// AwardXP appends an award record and bumps the user's total. The event log
// write is itself best-effort; the user total is the source of truth.
func (s *Service) AwardXP(ctx context.Context, userID, event string, metadata map[string]string) error {
	points, ok := eventPoints[event]
	if !ok {
		return ErrUnknownEvent
	}

	total, err := s.users.AddXP(ctx, userID, points)
	if err != nil {
		return err
	}

	if err := s.events.InsertXPEvent(ctx, models.XPEvent{
		UserID:   userID,
		Event:    event,
		Points:   points,
		Metadata: metadata,
	}); err != nil {
		log.WithError(err).WithField("event", event).Warn("failed to record xp event")
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"event":   event,
		"points":  points,
		"total":   total,
	}).Debug("xp awarded")
	return nil
}
