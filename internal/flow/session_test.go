package flow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/360method/homekeep/internal/catalog"
	"github.com/360method/homekeep/internal/models"
)

type mockInspectionStore struct {
	mu           sync.Mutex
	insertErr    error
	updateCalls  int
	failOnUpdate map[int]bool // 1-based update call number -> fail
	updates      []models.InspectionProgress
}

func (m *mockInspectionStore) InsertInspection(ctx context.Context, ins models.Inspection) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	return "insp-1", nil
}

func (m *mockInspectionStore) UpdateInspectionProgress(ctx context.Context, id string, progress models.InspectionProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if m.failOnUpdate[m.updateCalls] {
		return assert.AnError
	}
	m.updates = append(m.updates, progress)
	return nil
}

func (m *mockInspectionStore) lastUpdate() models.InspectionProgress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updates[len(m.updates)-1]
}

type mockAwarder struct {
	mu     sync.Mutex
	events []string
}

func (m *mockAwarder) AwardXP(ctx context.Context, userID, event string, metadata map[string]string) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()
	return nil
}

func (m *mockAwarder) count(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.events {
		if e == event {
			n++
		}
	}
	return n
}

type mockNotifier struct {
	mu    sync.Mutex
	notes []CompletionNote
}

func (m *mockNotifier) InspectionCompleted(ctx context.Context, note CompletionNote) error {
	m.mu.Lock()
	m.notes = append(m.notes, note)
	m.mu.Unlock()
	return nil
}

func newTestEngine() (*Engine, *mockInspectionStore, *mockTaskStore, *mockAwarder, *mockNotifier) {
	inspections := &mockInspectionStore{}
	tasks := &mockTaskStore{failOn: map[int]bool{}}
	xp := &mockAwarder{}
	notifier := &mockNotifier{}
	return NewEngine(inspections, tasks, xp, notifier), inspections, tasks, xp, notifier
}

func answerAndNext(t *testing.T, e *Engine, id, answer string) *View {
	t.Helper()
	_, err := e.Answer(id, Answer{Answer: answer})
	require.NoError(t, err)
	v, err := e.Next(context.Background(), id)
	require.NoError(t, err)
	return v
}

func TestQuickFlow_HVACAndPlumbingScenario(t *testing.T) {
	e, inspections, tasks, xp, notifier := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{
		PropertyID: "prop-1",
		UserID:     "user-1",
		Mode:       catalog.ModeQuick,
		AreaIDs:    []string{"hvac", "plumbing"},
	})
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, v.State)
	assert.Equal(t, "insp-1", v.InspectionID)
	assert.Equal(t, "hvac-filter", v.Checkpoint.ID)
	assert.False(t, v.ShowIntro, "quick mode has no intro")

	id := v.SessionID
	_, err = e.Answer(id, Answer{Answer: "bad", Note: "filter is gray"})
	require.NoError(t, err)
	v, err = e.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hvac-sounds", v.Checkpoint.ID)

	answerAndNext(t, e, id, "good") // hvac-sounds
	v = answerAndNext(t, e, id, "good") // hvac-airflow, finalizes hvac

	assert.Equal(t, 1, v.AreaIndex)
	assert.Equal(t, "plumbing", v.Area.ID)
	assert.Equal(t, 50, v.CompletionPercentage)

	// Persisted progress after the first area matches the derived values.
	mid := inspections.lastUpdate()
	assert.Equal(t, models.InspectionInProgress, mid.Status)
	assert.Equal(t, 50, mid.CompletionPercentage)
	assert.Equal(t, 1, mid.IssuesFound)

	for range catalog.CheckpointsForArea("plumbing", catalog.ModeQuick) {
		v = answerAndNext(t, e, id, "good")
	}

	assert.Equal(t, StateComplete, v.State)
	assert.Equal(t, 100, v.CompletionPercentage)
	assert.Equal(t, 1, v.Tally.Total)
	assert.Equal(t, 0, v.Tally.Urgent)
	assert.Equal(t, 1, v.Tally.Flag)
	assert.Equal(t, 0, v.Tally.Monitor)
	assert.Equal(t, 1, v.TasksCreated)

	require.Len(t, tasks.tasks, 1)
	task := tasks.tasks[0]
	assert.Equal(t, "Medium", task.Priority)
	assert.Equal(t, "Quick Spot Check issue in Heating & Cooling.\n\nfilter is gray", task.Description)
	assert.Equal(t, "quick_check", task.Source)
	assert.False(t, task.HasCascadeAlert)

	final := inspections.lastUpdate()
	assert.Equal(t, models.InspectionCompleted, final.Status)
	assert.Equal(t, 100, final.CompletionPercentage)
	assert.Equal(t, 1, final.IssuesFound)

	// Fire-and-forget side effects land shortly after completion.
	assert.Eventually(t, func() bool {
		return xp.count(models.EventCompleteInspection) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		return len(notifier.notes) == 1 && notifier.notes[0].IssueCount == 1
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool {
		return xp.count(models.EventFindIssue) == 1 && xp.count(models.EventCompleteRoom) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestFullWalkthrough_SkipEveryArea(t *testing.T) {
	e, inspections, tasks, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{PropertyID: "prop-1", UserID: "user-1", Mode: catalog.ModeFull})
	require.NoError(t, err)
	assert.True(t, v.ShowIntro)
	assert.Equal(t, len(catalog.Areas), v.AreaCount)

	id := v.SessionID
	lastPct := 0
	for v.State == StateInProgress {
		v, err = e.SkipArea(ctx, id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v.CompletionPercentage, lastPct,
			"completion percentage must be monotonically non-decreasing")
		lastPct = v.CompletionPercentage
	}

	assert.Equal(t, StateComplete, v.State)
	assert.Equal(t, 100, v.CompletionPercentage)
	assert.Equal(t, 0, v.Tally.Total)
	assert.Zero(t, v.TasksCreated)
	assert.Empty(t, tasks.tasks)

	final := inspections.lastUpdate()
	assert.Equal(t, models.InspectionCompleted, final.Status)
	assert.Equal(t, 100, final.CompletionPercentage)
	assert.Equal(t, 0, final.IssuesFound)
}

func TestFullWalkthrough_SkipFinalizesPartialAnswers(t *testing.T) {
	e, inspections, _, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{PropertyID: "prop-1", UserID: "user-1", Mode: catalog.ModeFull})
	require.NoError(t, err)
	id := v.SessionID

	// Past the intro, answer only the first exterior checkpoint, then skip.
	_, err = e.Next(ctx, id)
	require.NoError(t, err)
	_, err = e.Answer(id, Answer{Answer: "bad", Note: "cracked siding"})
	require.NoError(t, err)
	v, err = e.SkipArea(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, 1, v.Tally.Total, "answered checkpoint still counts after skip")
	update := inspections.lastUpdate()
	assert.Equal(t, 1, update.IssuesFound)

	answered := 0
	for _, item := range update.ChecklistItems {
		if item.Answer != "" {
			answered++
		}
		assert.False(t, item.Answer == "" && item.IsIssue, "unanswered checkpoints are never issues")
	}
	assert.Equal(t, 1, answered)
}

func TestStart_AreaSelectionValidation(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	ctx := context.Background()

	_, err := e.Start(ctx, StartInput{Mode: catalog.ModeQuick, AreaIDs: nil})
	assert.ErrorIs(t, err, ErrBadAreaSelection)

	_, err = e.Start(ctx, StartInput{Mode: catalog.ModeQuick,
		AreaIDs: []string{"hvac", "roof", "attic", "kitchen", "bathroom", "laundry"}})
	assert.ErrorIs(t, err, ErrBadAreaSelection)

	_, err = e.Start(ctx, StartInput{Mode: catalog.ModeQuick, AreaIDs: []string{"swimming-pool"}})
	assert.ErrorIs(t, err, ErrBadAreaSelection)
}

func TestStart_InspectionCreateFailureAborts(t *testing.T) {
	inspections := &mockInspectionStore{insertErr: assert.AnError}
	e := NewEngine(inspections, &mockTaskStore{}, nil, nil)

	_, err := e.Start(context.Background(), StartInput{Mode: catalog.ModeQuick, AreaIDs: []string{"hvac"}})
	assert.Error(t, err)
}

func TestNext_RequiresAnswer(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{Mode: catalog.ModeQuick, AreaIDs: []string{"hvac"}})
	require.NoError(t, err)

	_, err = e.Next(ctx, v.SessionID)
	assert.ErrorIs(t, err, ErrAnswerRequired)
}

func TestNext_IntroAdvancesWithoutValidation(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{Mode: catalog.ModeFull})
	require.NoError(t, err)
	require.True(t, v.ShowIntro)

	v, err = e.Next(ctx, v.SessionID)
	require.NoError(t, err)
	assert.False(t, v.ShowIntro)
	assert.NotNil(t, v.Checkpoint)
}

func TestAnswer_Validation(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{Mode: catalog.ModeFull})
	require.NoError(t, err)

	_, err = e.Answer(v.SessionID, Answer{Answer: "good"})
	assert.ErrorIs(t, err, ErrIntroHasNoAnswer)

	_, err = e.Next(ctx, v.SessionID)
	require.NoError(t, err)
	_, err = e.Answer(v.SessionID, Answer{Answer: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestBack_ReturnsToIntroThenCancelPending(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{Mode: catalog.ModeFull})
	require.NoError(t, err)
	id := v.SessionID

	// intro -> first checkpoint -> back to intro
	_, err = e.Next(ctx, id)
	require.NoError(t, err)
	v, err = e.Back(id)
	require.NoError(t, err)
	assert.True(t, v.ShowIntro)
	assert.False(t, v.CancelPending)

	// back past the first area raises the cancel confirmation
	v, err = e.Back(id)
	require.NoError(t, err)
	assert.True(t, v.CancelPending)
	assert.Equal(t, StateInProgress, v.State)

	// continuing clears the pending cancel
	v, err = e.Next(ctx, id)
	require.NoError(t, err)
	assert.False(t, v.CancelPending)
}

func TestBack_ReentersPreviousAreaWithSeededAnswers(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{Mode: catalog.ModeQuick, AreaIDs: []string{"hvac", "plumbing"}})
	require.NoError(t, err)
	id := v.SessionID

	_, err = e.Answer(id, Answer{Answer: "bad", Note: "clogged"})
	require.NoError(t, err)
	_, err = e.Next(ctx, id)
	require.NoError(t, err)
	answerAndNext(t, e, id, "good")
	v = answerAndNext(t, e, id, "good")
	require.Equal(t, "plumbing", v.Area.ID)

	// Back across the area boundary re-enters hvac on its last checkpoint
	// with the earlier answers restored.
	v, err = e.Back(id)
	require.NoError(t, err)
	assert.Equal(t, "hvac", v.Area.ID)
	assert.Equal(t, "hvac-airflow", v.Checkpoint.ID)
	require.NotNil(t, v.CurrentAnswer)
	assert.Equal(t, "good", v.CurrentAnswer.Answer)

	// The re-entered area no longer counts as completed.
	assert.Equal(t, 0, v.CompletionPercentage)

	// Walking forward again completes normally with the seeded answers.
	v, err = e.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "plumbing", v.Area.ID)
	assert.Equal(t, 50, v.CompletionPercentage)
	assert.Equal(t, 1, v.Tally.Total)
}

func TestCancel(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{Mode: catalog.ModeQuick, AreaIDs: []string{"hvac"}})
	require.NoError(t, err)

	v, err = e.Cancel(v.SessionID)
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, v.State)

	_, err = e.Next(ctx, v.SessionID)
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestCompletedSessionRejectsFurtherMutation(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{Mode: catalog.ModeQuick, AreaIDs: []string{"hvac"}})
	require.NoError(t, err)
	id := v.SessionID

	for range catalog.CheckpointsForArea("hvac", catalog.ModeQuick) {
		v = answerAndNext(t, e, id, "good")
	}
	require.Equal(t, StateComplete, v.State)

	_, err = e.Answer(id, Answer{Answer: "bad"})
	assert.ErrorIs(t, err, ErrNotInProgress)
	_, err = e.Next(ctx, id)
	assert.ErrorIs(t, err, ErrNotInProgress)
	_, err = e.Cancel(id)
	assert.ErrorIs(t, err, ErrAlreadyComplete)
}

func TestNext_CompletionRetryDoesNotDoubleGrant(t *testing.T) {
	e, inspections, tasks, xp, _ := newTestEngine()
	inspections.failOnUpdate = map[int]bool{2: true} // the completion update
	ctx := context.Background()

	v, err := e.Start(ctx, StartInput{
		PropertyID: "prop-1",
		UserID:     "user-1",
		Mode:       catalog.ModeQuick,
		AreaIDs:    []string{"hvac"},
	})
	require.NoError(t, err)
	id := v.SessionID

	_, err = e.Answer(id, Answer{Answer: "bad", Note: "rattling"})
	require.NoError(t, err)
	_, err = e.Next(ctx, id)
	require.NoError(t, err)
	answerAndNext(t, e, id, "good")

	_, err = e.Answer(id, Answer{Answer: "good"})
	require.NoError(t, err)
	_, err = e.Next(ctx, id)
	require.Error(t, err, "first completion attempt fails to persist")

	v, err = e.Next(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StateComplete, v.State)
	assert.Equal(t, 1, v.TasksCreated)
	require.Len(t, tasks.tasks, 1, "tasks materialize once across the retry")

	assert.Eventually(t, func() bool {
		return xp.count(models.EventCompleteInspection) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, xp.count(models.EventCompleteRoom),
		"re-finalizing the area on retry must not re-award")
	assert.Equal(t, 1, xp.count(models.EventFindIssue))
}

func TestGet_UnknownSession(t *testing.T) {
	e, _, _, _, _ := newTestEngine()
	_, err := e.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSeedAnswers_DropsStaleCheckpointIDs(t *testing.T) {
	existing := []models.ChecklistItem{
		{CheckpointID: "hvac-filter", Answer: "bad", Note: "gray"},
		{CheckpointID: "hvac-freon-level", Answer: "good"}, // removed from catalog
		{CheckpointID: "hvac-sounds", Answer: ""},          // never answered
	}

	seeded := SeedAnswers("hvac", catalog.ModeQuick, existing)
	assert.Len(t, seeded, 1)
	assert.Equal(t, "bad", seeded["hvac-filter"].Answer)
	assert.Equal(t, "gray", seeded["hvac-filter"].Note)
}
