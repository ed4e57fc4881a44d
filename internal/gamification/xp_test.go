package gamification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/360method/homekeep/internal/models"
)

type mockUsers struct {
	total  int
	addErr error
	calls  int
}

func (m *mockUsers) InsertUser(ctx context.Context, user models.User) error { return nil }
func (m *mockUsers) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}
func (m *mockUsers) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, nil
}
func (m *mockUsers) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}
func (m *mockUsers) UpdateUser(ctx context.Context, id string, user models.User) error { return nil }
func (m *mockUsers) DeleteUser(ctx context.Context, id string) error                   { return nil }
func (m *mockUsers) UpdateLastLogin(ctx context.Context, id string) error              { return nil }
func (m *mockUsers) AddXP(ctx context.Context, id string, points int) (int, error) {
	m.calls++
	if m.addErr != nil {
		return 0, m.addErr
	}
	m.total += points
	return m.total, nil
}

type mockEvents struct {
	events    []models.XPEvent
	insertErr error
}

func (m *mockEvents) InsertXPEvent(ctx context.Context, event models.XPEvent) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.events = append(m.events, event)
	return nil
}
func (m *mockEvents) FindXPEventsByUser(ctx context.Context, userID string) ([]models.XPEvent, error) {
	return m.events, nil
}

func TestAwardXP_KnownEvents(t *testing.T) {
	users := &mockUsers{}
	events := &mockEvents{}
	svc := NewService(users, events)

	assert.NoError(t, svc.AwardXP(context.Background(), "user-1", models.EventStartInspection, nil))
	assert.NoError(t, svc.AwardXP(context.Background(), "user-1", models.EventFindIssue, map[string]string{"severity": "Flag"}))
	assert.NoError(t, svc.AwardXP(context.Background(), "user-1", models.EventCompleteInspection, nil))

	assert.Equal(t, 65, users.total) // 10 + 5 + 50
	assert.Len(t, events.events, 3)
	assert.Equal(t, 5, events.events[1].Points)
	assert.Equal(t, "Flag", events.events[1].Metadata["severity"])
}

func TestAwardXP_UnknownEvent(t *testing.T) {
	users := &mockUsers{}
	svc := NewService(users, &mockEvents{})

	err := svc.AwardXP(context.Background(), "user-1", "paint_fence", nil)
	assert.ErrorIs(t, err, ErrUnknownEvent)
	assert.Zero(t, users.calls)
}

func TestAwardXP_UserUpdateFailureSurfaces(t *testing.T) {
	users := &mockUsers{addErr: errors.New("down")}
	svc := NewService(users, &mockEvents{})

	err := svc.AwardXP(context.Background(), "user-1", models.EventCompleteRoom, nil)
	assert.Error(t, err)
}

func TestAwardXP_EventLogFailureIsSwallowed(t *testing.T) {
	users := &mockUsers{}
	events := &mockEvents{insertErr: errors.New("down")}
	svc := NewService(users, events)

	// The user total still advances even when the event log write fails.
	assert.NoError(t, svc.AwardXP(context.Background(), "user-1", models.EventCompleteRoom, nil))
	assert.Equal(t, 15, users.total)
}

func TestPointsFor(t *testing.T) {
	p, ok := PointsFor(models.EventCompleteInspection)
	assert.True(t, ok)
	assert.Equal(t, 50, p)

	_, ok = PointsFor("unknown")
	assert.False(t, ok)
}
