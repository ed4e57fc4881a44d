// Package projects implements the upgrade project tracker: budgets,
// milestones and contractor quotes.
package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/360method/homekeep/internal/assist"
	"github.com/360method/homekeep/internal/db"
	"github.com/360method/homekeep/internal/models"
)

// Milestone statuses.
const (
	MilestonePending    = "pending"
	MilestoneInProgress = "in_progress"
	MilestoneDone       = "done"
)

var (
	ErrMilestoneOutOfRange = errors.New("milestone index out of range")
	ErrMilestoneDone       = errors.New("milestone already done")
	ErrQuoteOutOfRange     = errors.New("quote index out of range")
	ErrQuoteNotReceived    = errors.New("quote is not in received status")
)

// Service coordinates project persistence and LLM-backed planning.
type Service struct {
	projects db.ProjectCollection
	llm      assist.Invoker
}

// NewService wires a project service.
func NewService(projects db.ProjectCollection, llm assist.Invoker) *Service {
	return &Service{projects: projects, llm: llm}
}

// milestonePlan mirrors the JSON shape the LLM is asked to produce. Guidance
// stays raw here; models that return it as an encoded string instead of an
// object are normalized by GuidanceFromRaw.
type milestonePlan struct {
	Milestones []struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		EstimatedCost string `json:"estimated_cost"`
	} `json:"milestones"`
	Guidance json.RawMessage `json:"guidance,omitempty"`
}

var milestoneSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"milestones": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title":          map[string]interface{}{"type": "string"},
					"description":    map[string]interface{}{"type": "string"},
					"estimated_cost": map[string]interface{}{"type": "string"},
				},
				"required": []string{"title", "description", "estimated_cost"},
			},
		},
		"guidance": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"summary": map[string]interface{}{"type": "string"},
				"steps":   map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
				"risks":   map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
			},
			"required": []string{"summary"},
		},
	},
	"required": []string{"milestones"},
}

// GenerateMilestones asks the LLM for an ordered milestone plan, saves it on
// the project and returns the updated project.
func (s *Service) GenerateMilestones(ctx context.Context, projectID string) (*models.Project, error) {
	project, err := s.projects.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"Plan the home upgrade project %q (%s) as 3 to 7 ordered milestones. "+
			"The total budget is %s USD. For each milestone give a short title, a one "+
			"sentence description, and an estimated cost as a decimal string. The "+
			"estimates together should not exceed the budget. Also give overall "+
			"guidance for the project: a summary, preparation steps, and risks.",
		project.Title, project.Description, project.Budget.String())

	raw, err := s.llm.InvokeLLM(ctx, assist.Request{
		Prompt:             prompt,
		ResponseJSONSchema: milestoneSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate milestones: %w", err)
	}

	var plan milestonePlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("parse milestone plan: %w", err)
	}
	if len(plan.Milestones) == 0 {
		return nil, errors.New("milestone plan is empty")
	}

	milestones := make([]models.Milestone, 0, len(plan.Milestones))
	for _, m := range plan.Milestones {
		cost, err := decimal.NewFromString(m.EstimatedCost)
		if err != nil {
			log.WithFields(log.Fields{
				"project_id": projectID,
				"milestone":  m.Title,
				"cost":       m.EstimatedCost,
			}).Warn("Dropping milestone with unparseable estimated cost")
			continue
		}
		milestones = append(milestones, models.Milestone{
			Title:         m.Title,
			Description:   m.Description,
			Status:        MilestonePending,
			EstimatedCost: cost,
		})
	}
	if len(milestones) == 0 {
		return nil, errors.New("no usable milestones in plan")
	}

	project.Milestones = milestones

	if len(plan.Guidance) > 0 {
		guidance, err := models.GuidanceFromRaw(plan.Guidance)
		if err != nil {
			log.WithError(err).WithField("project_id", projectID).Warn("Dropping malformed guidance payload")
		} else {
			project.AIGuidance = guidance
		}
	}

	if err := s.projects.UpdateProject(ctx, projectID, *project); err != nil {
		return nil, err
	}
	return project, nil
}

// CompleteMilestone marks the milestone at index done with its actual cost
// and rolls the cost into the project's spent total.
func (s *Service) CompleteMilestone(ctx context.Context, projectID string, index int, actualCost decimal.Decimal) (*models.Project, error) {
	project, err := s.projects.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(project.Milestones) {
		return nil, ErrMilestoneOutOfRange
	}
	if project.Milestones[index].Status == MilestoneDone {
		return nil, ErrMilestoneDone
	}

	now := time.Now()
	project.Milestones[index].Status = MilestoneDone
	project.Milestones[index].ActualCost = actualCost
	project.Milestones[index].CompletedAt = &now
	project.Spent = project.Spent.Add(actualCost)

	if err := s.projects.UpdateProject(ctx, projectID, *project); err != nil {
		return nil, err
	}
	return project, nil
}

// AddQuote attaches a contractor quote to the project in received status.
func (s *Service) AddQuote(ctx context.Context, projectID string, quote models.Quote) (*models.Project, error) {
	project, err := s.projects.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	quote.Status = models.QuoteReceived
	quote.ReceivedAt = time.Now()
	project.Quotes = append(project.Quotes, quote)

	if err := s.projects.UpdateProject(ctx, projectID, *project); err != nil {
		return nil, err
	}
	return project, nil
}

// AcceptQuote accepts the quote at index and declines every other quote
// still in received status.
func (s *Service) AcceptQuote(ctx context.Context, projectID string, index int) (*models.Project, error) {
	project, err := s.projects.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(project.Quotes) {
		return nil, ErrQuoteOutOfRange
	}
	if project.Quotes[index].Status != models.QuoteReceived {
		return nil, ErrQuoteNotReceived
	}

	project.Quotes[index].Status = models.QuoteAccepted
	for i := range project.Quotes {
		if i != index && project.Quotes[i].Status == models.QuoteReceived {
			project.Quotes[i].Status = models.QuoteDeclined
		}
	}

	if err := s.projects.UpdateProject(ctx, projectID, *project); err != nil {
		return nil, err
	}
	return project, nil
}
