package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"job-portal-api/internal/calendar"
	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	eventDateLayout = "2006-01-02"
	eventTimeLayout = "15:04"

	upcomingCacheCap = 50
	upcomingCacheTTL = 5 * time.Minute
)

type schedulerService struct {
	eventRepo storage.EventRepository
	appRepo   storage.ApplicationRepository
	pipeline  StatusPipeline
	cache     *redis.Client // optional; nil disables caching
	now       func() time.Time
}

// NewInterviewScheduler creates the scheduler. cache may be nil, in which case
// upcoming-events reads always hit the database.
func NewInterviewScheduler(eventRepo storage.EventRepository, appRepo storage.ApplicationRepository, pipeline StatusPipeline, cache *redis.Client) InterviewScheduler {
	return &schedulerService{
		eventRepo: eventRepo,
		appRepo:   appRepo,
		pipeline:  pipeline,
		cache:     cache,
		now:       time.Now,
	}
}

// Schedule validates the form fields, persists the event and, when the event
// is linked to an application the actor owns, triggers the pipeline transition
// to 'interview'. The trigger is best effort: a failed transition is logged
// and the already-created event stands. There is no double-booking check;
// overlapping events for the same HR user are allowed.
func (s *schedulerService) Schedule(ctx context.Context, req *dto.ScheduleEventRequest) (*models.Event, error) {
	date, err := time.ParseInLocation(eventDateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed event_date %q", ErrSchedule, req.Date)
	}
	if _, err := time.Parse(eventTimeLayout, req.Time); err != nil {
		return nil, fmt.Errorf("%w: malformed event_time %q", ErrSchedule, req.Time)
	}
	if req.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrSchedule)
	}

	// Server-side re-validation; the form's min attribute is not trusted.
	today := dateOnly(s.now())
	if date.Before(today) {
		return nil, fmt.Errorf("%w: event_date %s is in the past", ErrSchedule, req.Date)
	}

	record := dto.CreateEventRecord{
		HrUserID:        req.HrUserID,
		SeekerUserID:    req.SeekerID,
		ApplicationID:   req.ApplicationID,
		Title:           req.Title,
		EventType:       req.EventType,
		Date:            date,
		Time:            req.Time,
		DurationMinutes: req.Duration,
		Location:        req.Location,
		MeetingLink:     req.MeetingLink,
		Description:     req.Notes,
	}

	event, err := s.eventRepo.Create(ctx, &record)
	if err != nil {
		log.Printf("Schedule: Error creating event for HR user %s: %v", req.HrUserID, err)
		return nil, mapRepoError(err, "creating event")
	}

	// Best-effort status trigger. The event is committed; nothing below rolls
	// it back.
	if req.ApplicationID != nil {
		transitionReq := dto.TransitionRequest{
			ApplicationID: *req.ApplicationID,
			Status:        models.ApplicationStatusInterview,
			ActorHrID:     req.HrUserID,
		}
		if _, err := s.pipeline.Transition(ctx, &transitionReq); err != nil {
			log.Printf("Schedule: Event %s created but status transition for application %s failed: %v", event.ID, *req.ApplicationID, err)
		}
	}

	s.invalidateUpcoming(ctx, req.HrUserID)

	log.Printf("Event %s scheduled by HR user %s for %s %s", event.ID, req.HrUserID, req.Date, req.Time)
	return event, nil
}

// Cancel moves a scheduled event to cancelled. Cancelling an already terminal
// event affects zero rows and is a silent no-op, matching the unconditional
// UPDATE the HR dashboard always issued.
func (s *schedulerService) Cancel(ctx context.Context, eventID, actorHrID uuid.UUID) (*models.Event, error) {
	return s.terminate(ctx, eventID, actorHrID, models.EventStatusCancelled)
}

// Complete moves a scheduled event to completed. Same no-op semantics as Cancel.
func (s *schedulerService) Complete(ctx context.Context, eventID, actorHrID uuid.UUID) (*models.Event, error) {
	return s.terminate(ctx, eventID, actorHrID, models.EventStatusCompleted)
}

func (s *schedulerService) terminate(ctx context.Context, eventID, actorHrID uuid.UUID, target models.EventStatus) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching event %s", eventID))
	}

	// Ownership Check: only the HR account that created the event may end it
	if event.HrUserID != actorHrID {
		log.Printf("terminate: Forbidden attempt by HR user %s on event %s owned by %s", actorHrID, eventID, event.HrUserID)
		return nil, ErrOwnership
	}

	rows, err := s.eventRepo.UpdateStatus(ctx, eventID, target)
	if err != nil {
		log.Printf("terminate: Error updating event %s to %s: %v", eventID, target, err)
		return nil, mapRepoError(err, "updating event status")
	}

	if rows == 0 {
		// Already terminal; the retry is ignored rather than failed.
		log.Printf("terminate: Event %s already %s, %s request ignored", eventID, event.Status, target)
		return event, nil
	}

	event.Status = target
	s.invalidateUpcoming(ctx, actorHrID)

	log.Printf("Event %s marked %s by HR user %s", eventID, target, actorHrID)
	return event, nil
}

// Upcoming returns the HR user's next scheduled events, fronted by a short
// redis cache. Cache failures degrade to the database.
func (s *schedulerService) Upcoming(ctx context.Context, req *dto.UpcomingEventsRequest) ([]models.Event, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}
	if limit > upcomingCacheCap {
		limit = upcomingCacheCap
	}

	if cached, ok := s.readUpcomingCache(ctx, req.HrUserID); ok {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	events, err := s.eventRepo.QueryUpcoming(ctx, req.HrUserID, dateOnly(s.now()), upcomingCacheCap)
	if err != nil {
		log.Printf("Upcoming: Error querying upcoming events for HR user %s: %v", req.HrUserID, err)
		return nil, mapRepoError(err, "querying upcoming events")
	}

	s.writeUpcomingCache(ctx, req.HrUserID, events)

	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// MonthEvents returns the HR user's scheduled events for the (normalized)
// month, ordered by date then time. Feeds the calendar grid.
func (s *schedulerService) MonthEvents(ctx context.Context, hrUserID uuid.UUID, year, month int) ([]models.Event, error) {
	start, end := calendar.MonthBounds(year, month)
	events, err := s.eventRepo.QueryByRange(ctx, hrUserID, start, end)
	if err != nil {
		log.Printf("MonthEvents: Error querying events for HR user %s (%d-%02d): %v", hrUserID, year, month, err)
		return nil, mapRepoError(err, "querying events by range")
	}
	return events, nil
}

func upcomingCacheKey(hrUserID uuid.UUID) string {
	return "upcoming_events:" + hrUserID.String()
}

func (s *schedulerService) readUpcomingCache(ctx context.Context, hrUserID uuid.UUID) ([]models.Event, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, upcomingCacheKey(hrUserID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Upcoming cache read failed for HR user %s: %v", hrUserID, err)
		}
		return nil, false
	}
	var events []models.Event
	if err := json.Unmarshal(payload, &events); err != nil {
		log.Printf("Upcoming cache payload corrupt for HR user %s: %v", hrUserID, err)
		return nil, false
	}
	return events, true
}

func (s *schedulerService) writeUpcomingCache(ctx context.Context, hrUserID uuid.UUID, events []models.Event) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, upcomingCacheKey(hrUserID), payload, upcomingCacheTTL).Err(); err != nil {
		log.Printf("Upcoming cache write failed for HR user %s: %v", hrUserID, err)
	}
}

func (s *schedulerService) invalidateUpcoming(ctx context.Context, hrUserID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, upcomingCacheKey(hrUserID)).Err(); err != nil {
		log.Printf("Upcoming cache invalidation failed for HR user %s: %v", hrUserID, err)
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
