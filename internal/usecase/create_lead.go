package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
	"github.com/botpilothq/console/internal/infra/integration/recordstore"
	"github.com/botpilothq/console/internal/infra/queue"
)

type CreateLeadInput struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Company        string  `json:"company"`
	Source         string  `json:"source"`
	Package        string  `json:"package"`
	Message        string  `json:"message"`
	Budget         string  `json:"budget"`
	EstimatedValue float64 `json:"estimated_value"`
	Tags           string  `json:"tags"`
	Priority       string  `json:"priority"`
	NextFollowUp   string  `json:"next_follow_up"`
}

type LeadCreator interface {
	CreateLead(ctx context.Context, input recordstore.CreateLeadInput) (*entity.Lead, error)
}

type ActivityPublisher interface {
	PublishLeadActivity(ctx context.Context, ev queue.LeadActivityEvent) error
}

// CreateLeadUseCase validates operator-submitted prospects and hands them
// to the record store. By convention the caller refreshes its mounted view
// after a successful create; the store owns identifier and timestamps.
type CreateLeadUseCase struct {
	Service LeadCreator
	Events  ActivityPublisher
	Log     *zap.Logger
}

func NewCreateLeadUseCase(service LeadCreator, events ActivityPublisher, log *zap.Logger) *CreateLeadUseCase {
	return &CreateLeadUseCase{Service: service, Events: events, Log: log}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCreateLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	lead, err := uc.Service.CreateLead(ctx, recordstore.CreateLeadInput{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Company:        input.Company,
		Source:         input.Source,
		Package:        input.Package,
		Message:        input.Message,
		Budget:         input.Budget,
		EstimatedValue: input.EstimatedValue,
		Tags:           input.Tags,
		Priority:       input.Priority,
		NextFollowUp:   input.NextFollowUp,
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    "RECORD_STORE_ERROR",
			Message: "record store refused the lead: " + err.Error(),
		}
	}

	// Best effort. A quiet notifications feed beats a failed create.
	ev := queue.LeadActivityEvent{
		LeadID: lead.ID,
		Event:  queue.EventCreated,
		Status: string(lead.Status),
	}
	if err := uc.Events.PublishLeadActivity(ctx, ev); err != nil {
		uc.Log.Warn("lead created event publish failed", zap.Int64("lead", lead.ID), zap.Error(err))
	}

	return lead, nil
}
