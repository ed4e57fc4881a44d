package flow

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/360method/homekeep/internal/catalog"
	"github.com/360method/homekeep/internal/models"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrBadAreaSelection = errors.New("quick check requires 1 to 5 known areas")
	ErrAnswerRequired   = errors.New("answer the current checkpoint before continuing")
	ErrNotInProgress    = errors.New("session is not in progress")
	ErrAlreadyComplete  = errors.New("session already completed")
	ErrIntroHasNoAnswer = errors.New("intro screen has no checkpoint to answer")
	ErrInvalidAnswer    = errors.New("answer must be good or bad")
)

// State is the wizard state of a session.
type State string

const (
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
	StateCancelled  State = "cancelled"
)

// Flow type labels used on persisted inspections and task descriptions.
const (
	FlowTypeQuick = "Quick Spot Check"
	FlowTypeFull  = "Full Walkthrough"
)

// Session is the ephemeral state of one guided inspection run. Only the
// Inspection and MaintenanceTask records it produces are persisted; the
// session itself lives in memory until completed or cancelled.
type Session struct {
	ID            string
	PropertyID    string
	UserID        string
	Mode          catalog.Mode
	FlowType      string
	InspectionID  string
	Areas         []catalog.Area
	AreaIdx       int
	CheckpointIdx int
	ShowIntro     bool
	CancelPending bool
	State         State
	StartedAt     time.Time
	TasksCreated  int

	answers      []map[string]Answer
	results      [][]models.ChecklistItem
	completed    []bool
	awarded      []bool
	materialized bool

	mu sync.Mutex
}

// StartInput configures a new session.
type StartInput struct {
	PropertyID string
	UserID     string
	Mode       catalog.Mode
	AreaIDs    []string // quick mode only; ignored for full walkthroughs
}

// View is a snapshot of a session for API responses.
type View struct {
	SessionID            string              `json:"session_id"`
	InspectionID         string              `json:"inspection_id"`
	State                State               `json:"state"`
	Mode                 catalog.Mode        `json:"mode"`
	FlowType             string              `json:"flow_type"`
	CancelPending        bool                `json:"cancel_pending"`
	AreaIndex            int                 `json:"area_index"`
	AreaCount            int                 `json:"area_count"`
	Area                 *catalog.Area       `json:"area,omitempty"`
	ShowIntro            bool                `json:"show_intro"`
	CheckpointIndex      int                 `json:"checkpoint_index"`
	CheckpointCount      int                 `json:"checkpoint_count"`
	Checkpoint           *catalog.Checkpoint `json:"checkpoint,omitempty"`
	CurrentAnswer        *Answer             `json:"current_answer,omitempty"`
	CompletionPercentage int                 `json:"completion_percentage"`
	Tally                SeverityTally       `json:"tally"`
	TasksCreated         int                 `json:"tasks_created"`
}

// Engine drives inspection sessions and their persistence side effects.
type Engine struct {
	inspections InspectionStore
	tasks       TaskStore
	xp          Awarder
	notifier    Notifier

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewEngine creates a session engine. The awarder and notifier may be nil;
// both sit on best-effort side paths.
func NewEngine(inspections InspectionStore, tasks TaskStore, xp Awarder, notifier Notifier) *Engine {
	return &Engine{
		inspections: inspections,
		tasks:       tasks,
		xp:          xp,
		notifier:    notifier,
		sessions:    make(map[string]*Session),
	}
}

// Start validates the area selection, creates the persisted Inspection, and
// returns the new session. Inspection creation is a primary-path operation:
// its failure aborts the start.
func (e *Engine) Start(ctx context.Context, in StartInput) (*View, error) {
	var areas []catalog.Area
	var flowType string
	showIntro := false

	switch in.Mode {
	case catalog.ModeQuick:
		if len(in.AreaIDs) < 1 || len(in.AreaIDs) > 5 {
			return nil, ErrBadAreaSelection
		}
		for _, id := range in.AreaIDs {
			a, ok := catalog.AreaByID(id)
			if !ok {
				return nil, ErrBadAreaSelection
			}
			areas = append(areas, a)
		}
		flowType = FlowTypeQuick
	case catalog.ModeFull:
		areas = catalog.WalkthroughOrder()
		flowType = FlowTypeFull
		showIntro = true
	default:
		return nil, errors.New("unknown inspection mode")
	}

	now := time.Now()
	inspectionID, err := e.inspections.InsertInspection(ctx, models.Inspection{
		PropertyID:           in.PropertyID,
		UserID:               in.UserID,
		InspectionType:       flowType,
		RouteMode:            string(in.Mode),
		Status:               models.InspectionInProgress,
		ChecklistItems:       []models.ChecklistItem{},
		CompletionPercentage: 0,
		IssuesFound:          0,
		InspectionDate:       now,
		CreatedAt:            now,
		UpdatedAt:            now,
	})
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:           uuid.NewString(),
		PropertyID:   in.PropertyID,
		UserID:       in.UserID,
		Mode:         in.Mode,
		FlowType:     flowType,
		InspectionID: inspectionID,
		Areas:        areas,
		ShowIntro:    showIntro,
		State:        StateInProgress,
		StartedAt:    now,
		answers:      make([]map[string]Answer, len(areas)),
		results:      make([][]models.ChecklistItem, len(areas)),
		completed:    make([]bool, len(areas)),
		awarded:      make([]bool, len(areas)),
	}
	s.answers[0] = map[string]Answer{}

	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()

	e.award(s.UserID, models.EventStartInspection, map[string]string{
		"inspection_id": inspectionID,
		"mode":          string(in.Mode),
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	return e.viewLocked(s), nil
}

// Get returns a snapshot of a session.
func (e *Engine) Get(id string) (*View, error) {
	s, err := e.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return e.viewLocked(s), nil
}

// Answer records the answer for the session's current checkpoint.
func (e *Engine) Answer(id string, in Answer) (*View, error) {
	s, err := e.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateInProgress {
		return nil, ErrNotInProgress
	}
	if s.ShowIntro {
		return nil, ErrIntroHasNoAnswer
	}
	if in.Answer != "good" && in.Answer != "bad" {
		return nil, ErrInvalidAnswer
	}

	cp := s.currentCheckpoint()
	if cp == nil {
		return nil, ErrNotInProgress
	}
	s.CancelPending = false
	s.answers[s.AreaIdx][cp.ID] = in
	return e.viewLocked(s), nil
}

// Next advances the session. The intro screen advances without validation;
// a checkpoint requires a recorded answer. Passing the last checkpoint of an
// area finalizes it, and passing the last area completes the inspection.
func (e *Engine) Next(ctx context.Context, id string) (*View, error) {
	s, err := e.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateInProgress {
		return nil, ErrNotInProgress
	}
	s.CancelPending = false

	if s.ShowIntro {
		s.ShowIntro = false
		return e.viewLocked(s), nil
	}

	cp := s.currentCheckpoint()
	if cp == nil {
		return nil, ErrNotInProgress
	}
	if _, answered := s.answers[s.AreaIdx][cp.ID]; !answered {
		return nil, ErrAnswerRequired
	}

	s.CheckpointIdx++
	if s.CheckpointIdx >= len(s.currentCheckpoints()) {
		if err := e.finalizeArea(ctx, s); err != nil {
			s.CheckpointIdx--
			return nil, err
		}
		if err := e.advanceArea(ctx, s); err != nil {
			return nil, err
		}
	}
	return e.viewLocked(s), nil
}

// Back steps backwards. Past the first checkpoint of an area it returns to
// the area intro (full mode) or re-enters the previous area; past the first
// area it raises a cancel confirmation instead of moving.
func (e *Engine) Back(id string) (*View, error) {
	s, err := e.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateInProgress {
		return nil, ErrNotInProgress
	}

	switch {
	case !s.ShowIntro && s.CheckpointIdx > 0:
		s.CheckpointIdx--
	case s.Mode == catalog.ModeFull && !s.ShowIntro:
		s.ShowIntro = true
	case s.AreaIdx == 0:
		s.CancelPending = true
	default:
		s.reenterPreviousArea()
	}
	return e.viewLocked(s), nil
}

// SkipArea finalizes the current area with whatever answers exist.
// Unanswered checkpoints stay unanswered and never become issues.
func (e *Engine) SkipArea(ctx context.Context, id string) (*View, error) {
	s, err := e.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateInProgress {
		return nil, ErrNotInProgress
	}
	s.CancelPending = false
	s.ShowIntro = false

	if err := e.finalizeArea(ctx, s); err != nil {
		return nil, err
	}
	if err := e.advanceArea(ctx, s); err != nil {
		return nil, err
	}
	return e.viewLocked(s), nil
}

// Cancel abandons the session. Requests already in flight are not aborted.
func (e *Engine) Cancel(id string) (*View, error) {
	s, err := e.session(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State == StateComplete {
		return nil, ErrAlreadyComplete
	}
	s.State = StateCancelled
	return e.viewLocked(s), nil
}

// finalizeArea aggregates the current area's answers, stores its results,
// and persists the inspection's running progress.
func (e *Engine) finalizeArea(ctx context.Context, s *Session) error {
	area := s.Areas[s.AreaIdx]
	items := ResultsForArea(area, s.Mode, s.answers[s.AreaIdx])
	s.results[s.AreaIdx] = items
	s.completed[s.AreaIdx] = true

	all := s.allItems()
	tally := Tally(IssuesFrom(all))
	pct := CompletionPercentage(s.completedCount(), len(s.Areas))

	if err := e.inspections.UpdateInspectionProgress(ctx, s.InspectionID, models.InspectionProgress{
		Status:               models.InspectionInProgress,
		ChecklistItems:       all,
		CompletionPercentage: pct,
		IssuesFound:          tally.Total,
	}); err != nil {
		s.completed[s.AreaIdx] = false
		s.results[s.AreaIdx] = nil
		return err
	}

	// An area awards at most once, so re-finalizing after a failed
	// completion retry cannot double-grant.
	if !s.awarded[s.AreaIdx] {
		s.awarded[s.AreaIdx] = true
		e.award(s.UserID, models.EventCompleteRoom, map[string]string{
			"inspection_id": s.InspectionID,
			"area_id":       area.ID,
		})
		for _, issue := range IssuesFrom(items) {
			e.award(s.UserID, models.EventFindIssue, map[string]string{
				"inspection_id": s.InspectionID,
				"checkpoint_id": issue.CheckpointID,
				"severity":      string(issue.Severity),
			})
		}
	}
	return nil
}

// advanceArea moves to the next area, or completes the inspection after the
// last one.
func (e *Engine) advanceArea(ctx context.Context, s *Session) error {
	s.AreaIdx++
	s.CheckpointIdx = 0
	if s.AreaIdx >= len(s.Areas) {
		if err := e.complete(ctx, s); err != nil {
			// Leave the session on its last checkpoint so the caller can
			// retry completion with another Next.
			s.AreaIdx--
			s.CheckpointIdx = len(s.currentCheckpoints()) - 1
			return err
		}
		return nil
	}
	if s.answers[s.AreaIdx] == nil {
		s.answers[s.AreaIdx] = map[string]Answer{}
	}
	s.ShowIntro = s.Mode == catalog.ModeFull
	return nil
}

// complete materializes tasks from the accumulated issues, marks the
// inspection completed, and fires the best-effort completion side effects.
func (e *Engine) complete(ctx context.Context, s *Session) error {
	all := s.allItems()
	issues := IssuesFrom(all)
	tally := Tally(issues)

	// Tasks materialize once even when a failed status update forces the
	// caller to retry completion.
	if !s.materialized {
		s.TasksCreated = MaterializeTasks(ctx, e.tasks, s.Mode, s.FlowType, s.PropertyID, issues)
		s.materialized = true
	}

	if err := e.inspections.UpdateInspectionProgress(ctx, s.InspectionID, models.InspectionProgress{
		Status:               models.InspectionCompleted,
		ChecklistItems:       all,
		CompletionPercentage: 100,
		IssuesFound:          tally.Total,
	}); err != nil {
		return err
	}
	s.State = StateComplete

	e.award(s.UserID, models.EventCompleteInspection, map[string]string{
		"inspection_id": s.InspectionID,
		"issues_found":  strconv.Itoa(tally.Total),
	})
	e.notify(CompletionNote{
		InspectionID: s.InspectionID,
		PropertyID:   s.PropertyID,
		UserID:       s.UserID,
		IssueCount:   tally.Total,
	})
	return nil
}

// reenterPreviousArea steps back across an area boundary, seeding the answer
// map from the area's stored results.
func (s *Session) reenterPreviousArea() {
	s.AreaIdx--
	area := s.Areas[s.AreaIdx]
	s.completed[s.AreaIdx] = false
	s.answers[s.AreaIdx] = SeedAnswers(area.ID, s.Mode, s.results[s.AreaIdx])
	s.results[s.AreaIdx] = nil
	s.ShowIntro = false
	s.CheckpointIdx = len(catalog.CheckpointsForArea(area.ID, s.Mode)) - 1
}

// SeedAnswers rebuilds a session answer map from stored checklist items.
// Items whose checkpoint id is no longer in the catalog are dropped
// silently; the drop is only visible at debug level.
func SeedAnswers(areaID string, mode catalog.Mode, existing []models.ChecklistItem) map[string]Answer {
	known := map[string]bool{}
	for _, cp := range catalog.CheckpointsForArea(areaID, mode) {
		known[cp.ID] = true
	}

	answers := map[string]Answer{}
	for _, item := range existing {
		if item.Answer == "" {
			continue
		}
		if !known[item.CheckpointID] {
			log.WithFields(log.Fields{
				"checkpoint_id": item.CheckpointID,
				"area_id":       areaID,
			}).Debug("dropping stored answer for unknown checkpoint")
			continue
		}
		answers[item.CheckpointID] = Answer{
			Answer: item.Answer,
			Note:   item.Note,
			Photos: item.Photos,
		}
	}
	return answers
}

func (e *Engine) session(id string) (*Session, error) {
	e.mu.RLock()
	s, ok := e.sessions[id]
	e.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// award fires an XP grant on a detached goroutine. Failures are logged and
// swallowed; XP never blocks or fails the inspection path.
func (e *Engine) award(userID, event string, metadata map[string]string) {
	if e.xp == nil {
		return
	}
	go func() {
		if err := e.xp.AwardXP(context.Background(), userID, event, metadata); err != nil {
			log.WithError(err).WithField("event", event).Warn("xp award failed")
		}
	}()
}

// notify dispatches the completion notification on a detached goroutine,
// same best-effort contract as award.
func (e *Engine) notify(note CompletionNote) {
	if e.notifier == nil {
		return
	}
	go func() {
		if err := e.notifier.InspectionCompleted(context.Background(), note); err != nil {
			log.WithError(err).WithField("inspection_id", note.InspectionID).Warn("completion notification failed")
		}
	}()
}

func (s *Session) currentCheckpoints() []catalog.Checkpoint {
	if s.AreaIdx >= len(s.Areas) {
		return nil
	}
	return catalog.CheckpointsForArea(s.Areas[s.AreaIdx].ID, s.Mode)
}

func (s *Session) currentCheckpoint() *catalog.Checkpoint {
	cps := s.currentCheckpoints()
	if s.CheckpointIdx < 0 || s.CheckpointIdx >= len(cps) {
		return nil
	}
	return &cps[s.CheckpointIdx]
}

func (s *Session) allItems() []models.ChecklistItem {
	var all []models.ChecklistItem
	for i := range s.Areas {
		if s.completed[i] {
			all = append(all, s.results[i]...)
		}
	}
	return all
}

func (s *Session) completedCount() int {
	n := 0
	for _, done := range s.completed {
		if done {
			n++
		}
	}
	return n
}

func (e *Engine) viewLocked(s *Session) *View {
	v := &View{
		SessionID:     s.ID,
		InspectionID:  s.InspectionID,
		State:         s.State,
		Mode:          s.Mode,
		FlowType:      s.FlowType,
		CancelPending: s.CancelPending,
		AreaIndex:     s.AreaIdx,
		AreaCount:     len(s.Areas),
		ShowIntro:     s.ShowIntro,
		TasksCreated:  s.TasksCreated,
		Tally:         Tally(IssuesFrom(s.allItems())),
	}
	if s.State == StateComplete {
		v.CompletionPercentage = 100
	} else {
		v.CompletionPercentage = CompletionPercentage(s.completedCount(), len(s.Areas))
	}
	if s.State == StateInProgress && s.AreaIdx < len(s.Areas) {
		area := s.Areas[s.AreaIdx]
		v.Area = &area
		cps := s.currentCheckpoints()
		v.CheckpointCount = len(cps)
		v.CheckpointIndex = s.CheckpointIdx
		if !s.ShowIntro {
			if cp := s.currentCheckpoint(); cp != nil {
				v.Checkpoint = cp
				if a, ok := s.answers[s.AreaIdx][cp.ID]; ok {
					v.CurrentAnswer = &a
				}
			}
		}
	}
	return v
}
