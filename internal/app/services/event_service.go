package services

import (
	"context"
	"fmt"

	"github.com/khanhle/schoolhealth/internal/app/models"
	"github.com/khanhle/schoolhealth/internal/app/models/dto"
	"github.com/khanhle/schoolhealth/internal/app/repositories"
	"github.com/khanhle/schoolhealth/internal/pkg/apperrors"
	"github.com/khanhle/schoolhealth/internal/pkg/logger"
	"github.com/khanhle/schoolhealth/internal/pkg/metrics"
)

// EventService defines the interface for health event operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, createdBy int64) (*models.HealthEvent, int64, error)
	ListEventSummaries(ctx context.Context, search, eventType string) (*dto.EventListResponse, error)
	GetEventSummary(ctx context.Context, eventID int64) (*dto.EventSummary, error)
	GetClassDetail(ctx context.Context, eventID, classID int64) (*dto.ClassDetailResponse, error)
	DeleteEvent(ctx context.Context, eventID int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo        *repositories.EventRepository
	confirmationRepo *repositories.ConfirmationRepository
	classRepo        *repositories.ClassRepository
}

// NewEventService creates a new event service instance
func NewEventService(
	eventRepo *repositories.EventRepository,
	confirmationRepo *repositories.ConfirmationRepository,
	classRepo *repositories.ClassRepository,
) EventService {
	return &eventServiceImpl{
		eventRepo:        eventRepo,
		confirmationRepo: confirmationRepo,
		classRepo:        classRepo,
	}
}

// CreateEvent creates a health event and fans out one PENDING confirmation
// per student enrolled in the target grades. The event and its confirmations
// are written in one transaction. Returns the event and the number of
// confirmations created.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, createdBy int64) (*models.HealthEvent, int64, error) {
	if !models.ValidEventType(models.EventType(req.EventType)) {
		return nil, 0, fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidationFailed, req.EventType)
	}
	if len(req.TargetGrades) == 0 {
		return nil, 0, fmt.Errorf("%w: at least one target grade is required", apperrors.ErrValidationFailed)
	}

	targetClasses, err := s.classRepo.GetByGrades(ctx, req.TargetGrades)
	if err != nil {
		return nil, 0, err
	}
	if len(targetClasses) == 0 {
		return nil, 0, apperrors.ErrEventHasNoTargets
	}

	event := &models.HealthEvent{
		Title:        req.Title,
		Description:  req.Description,
		EventType:    models.EventType(req.EventType),
		ScheduledAt:  req.ScheduledAt,
		Location:     req.Location,
		StaffName:    req.StaffName,
		TargetGrades: req.TargetGrades,
		CreatedBy:    createdBy,
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, 0, err
	}

	metrics.EventsCreated.Inc()
	logger.Info().
		Int64("eventID", event.ID).
		Str("type", string(event.EventType)).
		Int64("confirmations", created).
		Msg("Health event created")

	return event, created, nil
}

// ListEventSummaries returns every event with per-class and event-level
// status aggregations, newest first. A failure aggregating one event does
// not block the others; the first failure is reported in the envelope while
// the remaining summaries still load.
func (s *eventServiceImpl) ListEventSummaries(ctx context.Context, search, eventType string) (*dto.EventListResponse, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.EventListResponse{Events: make([]dto.EventSummary, 0, len(events))}
	for i := range events {
		summary, err := s.buildSummary(ctx, &events[i])
		if err != nil {
			logger.Error().Err(err).Int64("eventID", events[i].ID).Msg("Failed to aggregate event")
			if resp.Error == nil {
				resp.Error = dto.NewErrorDetail(dto.ErrorCodeDatabaseError,
					fmt.Sprintf("Could not load summary for event %d", events[i].ID))
			}
			continue
		}
		resp.Events = append(resp.Events, *summary)
	}

	resp.Events = FilterEventSummaries(resp.Events, search, eventType)
	return resp, nil
}

// GetEventSummary returns one event with its aggregations
func (s *eventServiceImpl) GetEventSummary(ctx context.Context, eventID int64) (*dto.EventSummary, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.buildSummary(ctx, event)
}

// buildSummary assembles the per-class breakdown for one event. Per-class
// counts come from a single grouped query; event totals are the merge of the
// class counts, recomputed on every call rather than cached.
func (s *eventServiceImpl) buildSummary(ctx context.Context, event *models.HealthEvent) (*dto.EventSummary, error) {
	classes, err := s.eventRepo.GetTargetClasses(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	countsByClass, err := s.confirmationRepo.CountsByClass(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	summary := &dto.EventSummary{
		Event:   *event,
		Classes: make([]dto.ClassSummary, 0, len(classes)),
	}

	var total models.StatusCounts
	for _, class := range classes {
		counts := countsByClass[class.ID]
		summary.Classes = append(summary.Classes, dto.ClassSummary{
			ClassID:        class.ID,
			ClassName:      class.Name,
			GradeLevel:     class.GradeLevel,
			Counts:         counts,
			ApprovalRate:   counts.ApprovalRate(),
			CompletionRate: counts.CompletionRate(),
			Badge:          counts.Badge(),
		})
		total = total.Merge(counts)
	}

	summary.Counts = total
	summary.ApprovalRate = total.ApprovalRate()
	summary.CompletionRate = total.CompletionRate()
	summary.Badge = total.Badge()

	return summary, nil
}

// GetClassDetail returns the full confirmation roster of one class within
// one event, with fresh counts
func (s *eventServiceImpl) GetClassDetail(ctx context.Context, eventID, classID int64) (*dto.ClassDetailResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	confirmations, err := s.confirmationRepo.GetByEventAndClass(ctx, eventID, classID)
	if err != nil {
		return nil, err
	}

	return &dto.ClassDetailResponse{
		Class:         *class,
		Event:         *event,
		Confirmations: confirmations,
		Counts:        models.CountStatuses(confirmations),
	}, nil
}

// DeleteEvent removes an event. Its confirmations go with it via cascade.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, eventID int64) error {
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}
	logger.Info().Int64("eventID", eventID).Msg("Health event deleted")
	return nil
}
