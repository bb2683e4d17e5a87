package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const dateLayout = "2006-01-02"

func scheduleRequest(hrID uuid.UUID) *dto.ScheduleEventRequest {
	return &dto.ScheduleEventRequest{
		SeekerID:  uuid.New(),
		Title:     "Technical interview",
		EventType: models.EventTypeTechnical,
		Date:      time.Now().UTC().AddDate(0, 0, 7).Format(dateLayout),
		Time:      "14:30",
		Duration:  60,
		Location:  "Meeting room 2",
		HrUserID:  hrID,
	}
}

func eventFromRecord(record *dto.CreateEventRecord) *models.Event {
	return &models.Event{
		ID:              uuid.New(),
		HrUserID:        record.HrUserID,
		SeekerUserID:    record.SeekerUserID,
		ApplicationID:   record.ApplicationID,
		Title:           record.Title,
		EventType:       record.EventType,
		Date:            record.Date,
		Time:            record.Time,
		DurationMinutes: record.DurationMinutes,
		Location:        record.Location,
		Status:          models.EventStatusScheduled,
		CreatedAt:       time.Now(),
	}
}

func TestInterviewScheduler_Schedule_Success(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	mockAppRepo := new(MockApplicationRepository)
	mockPipeline := new(MockStatusPipeline)
	hrID := uuid.New()
	req := scheduleRequest(hrID)

	mockEventRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *dto.CreateEventRecord) bool {
		return r.HrUserID == hrID && r.Title == req.Title && r.Time == "14:30"
	})).Return(eventFromRecord(&dto.CreateEventRecord{
		HrUserID:        hrID,
		SeekerUserID:    req.SeekerID,
		Title:           req.Title,
		EventType:       req.EventType,
		Time:            req.Time,
		DurationMinutes: req.Duration,
	}), nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, mockAppRepo, mockPipeline, nil)
	event, err := scheduler.Schedule(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusScheduled, event.Status)
	assert.Equal(t, hrID, event.HrUserID)
	// No application link, no pipeline trigger.
	mockPipeline.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything)
	mockEventRepo.AssertExpectations(t)
}

func TestInterviewScheduler_Schedule_TodayIsAllowed(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	mockPipeline := new(MockStatusPipeline)
	hrID := uuid.New()
	req := scheduleRequest(hrID)
	req.Date = time.Now().UTC().Format(dateLayout)

	mockEventRepo.On("Create", mock.Anything, mock.Anything).
		Return(eventFromRecord(&dto.CreateEventRecord{HrUserID: hrID}), nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), mockPipeline, nil)
	_, err := scheduler.Schedule(context.Background(), req)

	assert.NoError(t, err)
}

func TestInterviewScheduler_Schedule_Rejections(t *testing.T) {
	hrID := uuid.New()

	tests := []struct {
		name   string
		mutate func(req *dto.ScheduleEventRequest)
	}{
		{"past date", func(req *dto.ScheduleEventRequest) { req.Date = "2020-01-15" }},
		{"malformed date", func(req *dto.ScheduleEventRequest) { req.Date = "15/01/2030" }},
		{"malformed time", func(req *dto.ScheduleEventRequest) { req.Time = "2pm" }},
		{"zero duration", func(req *dto.ScheduleEventRequest) { req.Duration = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockEventRepo := new(MockEventRepository)
			req := scheduleRequest(hrID)
			tc.mutate(req)

			scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), new(MockStatusPipeline), nil)
			event, err := scheduler.Schedule(context.Background(), req)

			assert.Nil(t, event)
			assert.ErrorIs(t, err, services.ErrSchedule)
			mockEventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestInterviewScheduler_Schedule_TriggersPipeline(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	mockPipeline := new(MockStatusPipeline)
	hrID := uuid.New()
	appID := uuid.New()
	req := scheduleRequest(hrID)
	req.ApplicationID = &appID

	mockEventRepo.On("Create", mock.Anything, mock.Anything).
		Return(eventFromRecord(&dto.CreateEventRecord{HrUserID: hrID, ApplicationID: &appID}), nil)
	mockPipeline.On("Transition", mock.Anything, &dto.TransitionRequest{
		ApplicationID: appID,
		Status:        models.ApplicationStatusInterview,
		ActorHrID:     hrID,
	}).Return(&models.Application{ID: appID, Status: models.ApplicationStatusInterview}, nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), mockPipeline, nil)
	event, err := scheduler.Schedule(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, event.ApplicationID)
	assert.Equal(t, appID, *event.ApplicationID)
	mockPipeline.AssertExpectations(t)
}

func TestInterviewScheduler_Schedule_SurvivesFailedTransition(t *testing.T) {
	// The event is committed before the pipeline runs; a failed transition
	// must not surface as a scheduling error.
	mockEventRepo := new(MockEventRepository)
	mockPipeline := new(MockStatusPipeline)
	hrID := uuid.New()
	appID := uuid.New()
	req := scheduleRequest(hrID)
	req.ApplicationID = &appID

	mockEventRepo.On("Create", mock.Anything, mock.Anything).
		Return(eventFromRecord(&dto.CreateEventRecord{HrUserID: hrID, ApplicationID: &appID}), nil)
	mockPipeline.On("Transition", mock.Anything, mock.Anything).
		Return(nil, services.ErrOwnership)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), mockPipeline, nil)
	event, err := scheduler.Schedule(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusScheduled, event.Status)
	mockPipeline.AssertExpectations(t)
}

func TestInterviewScheduler_Cancel_Success(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	hrID := uuid.New()
	eventID := uuid.New()
	stored := &models.Event{ID: eventID, HrUserID: hrID, Status: models.EventStatusScheduled}

	mockEventRepo.On("GetByID", mock.Anything, eventID).Return(stored, nil)
	mockEventRepo.On("UpdateStatus", mock.Anything, eventID, models.EventStatusCancelled).Return(int64(1), nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), new(MockStatusPipeline), nil)
	event, err := scheduler.Cancel(context.Background(), eventID, hrID)

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCancelled, event.Status)
	mockEventRepo.AssertExpectations(t)
}

func TestInterviewScheduler_Cancel_OwnershipDenied(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	eventID := uuid.New()
	stored := &models.Event{ID: eventID, HrUserID: uuid.New(), Status: models.EventStatusScheduled}

	mockEventRepo.On("GetByID", mock.Anything, eventID).Return(stored, nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), new(MockStatusPipeline), nil)
	event, err := scheduler.Cancel(context.Background(), eventID, uuid.New())

	assert.Nil(t, event)
	assert.ErrorIs(t, err, services.ErrOwnership)
	mockEventRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestInterviewScheduler_Cancel_AlreadyTerminalIsNoOp(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	hrID := uuid.New()
	eventID := uuid.New()
	stored := &models.Event{ID: eventID, HrUserID: hrID, Status: models.EventStatusCompleted}

	mockEventRepo.On("GetByID", mock.Anything, eventID).Return(stored, nil)
	mockEventRepo.On("UpdateStatus", mock.Anything, eventID, models.EventStatusCancelled).Return(int64(0), nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), new(MockStatusPipeline), nil)
	event, err := scheduler.Cancel(context.Background(), eventID, hrID)

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCompleted, event.Status, "retry returns the stored state untouched")
}

func TestInterviewScheduler_Complete_Success(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	hrID := uuid.New()
	eventID := uuid.New()
	stored := &models.Event{ID: eventID, HrUserID: hrID, Status: models.EventStatusScheduled}

	mockEventRepo.On("GetByID", mock.Anything, eventID).Return(stored, nil)
	mockEventRepo.On("UpdateStatus", mock.Anything, eventID, models.EventStatusCompleted).Return(int64(1), nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), new(MockStatusPipeline), nil)
	event, err := scheduler.Complete(context.Background(), eventID, hrID)

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusCompleted, event.Status)
}

func TestInterviewScheduler_Terminate_NotFound(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	eventID := uuid.New()

	mockEventRepo.On("GetByID", mock.Anything, eventID).Return(nil, storage.ErrNotFound)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), new(MockStatusPipeline), nil)
	_, err := scheduler.Cancel(context.Background(), eventID, uuid.New())

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestInterviewScheduler_Upcoming(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	hrID := uuid.New()

	stored := make([]models.Event, 8)
	for i := range stored {
		stored[i] = models.Event{
			ID:       uuid.New(),
			HrUserID: hrID,
			Date:     time.Now().UTC().AddDate(0, 0, i+1),
			Status:   models.EventStatusScheduled,
		}
	}
	mockEventRepo.On("QueryUpcoming", mock.Anything, hrID, mock.Anything, 50).Return(stored, nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), new(MockStatusPipeline), nil)

	// Default limit is 5.
	events, err := scheduler.Upcoming(context.Background(), &dto.UpcomingEventsRequest{HrUserID: hrID})
	require.NoError(t, err)
	assert.Len(t, events, 5)
	assert.Equal(t, stored[0].ID, events[0].ID, "soonest first")

	// An explicit limit under the cap is honored.
	events, err = scheduler.Upcoming(context.Background(), &dto.UpcomingEventsRequest{HrUserID: hrID, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestInterviewScheduler_ScheduleMovesApplicationToInterview(t *testing.T) {
	// Full flow with a real pipeline: an HR user shortlists an applicant, then
	// schedules an interview against the application, which lands it in
	// 'interview' without any further call.
	mockEventRepo := new(MockEventRepository)
	mockAppRepo := new(MockApplicationRepository)
	mockJobRepo := new(MockJobRepository)
	hrID, appID, application, job := pipelineFixture(t, models.ApplicationStatusApplied)

	pipeline := services.NewStatusPipeline(mockAppRepo, mockJobRepo, nil)

	mockAppRepo.On("GetByID", mock.Anything, appID).Return(application, nil)
	mockJobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: application.JobID}).Return(job, nil)

	shortlisted := *application
	shortlisted.Status = models.ApplicationStatusShortlisted
	mockAppRepo.On("UpdateStatus", mock.Anything, appID, models.ApplicationStatusShortlisted).
		Return(&shortlisted, nil).Once()

	_, err := pipeline.Transition(context.Background(), &dto.TransitionRequest{
		ApplicationID: appID,
		Status:        models.ApplicationStatusShortlisted,
		ActorHrID:     hrID,
	})
	require.NoError(t, err)

	interviewing := *application
	interviewing.Status = models.ApplicationStatusInterview
	mockAppRepo.On("UpdateStatus", mock.Anything, appID, models.ApplicationStatusInterview).
		Return(&interviewing, nil).Once()
	mockEventRepo.On("Create", mock.Anything, mock.Anything).
		Return(eventFromRecord(&dto.CreateEventRecord{HrUserID: hrID, ApplicationID: &appID}), nil)

	scheduler := services.NewInterviewScheduler(mockEventRepo, mockAppRepo, pipeline, nil)
	req := scheduleRequest(hrID)
	req.ApplicationID = &appID
	event, err := scheduler.Schedule(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusScheduled, event.Status)
	mockAppRepo.AssertExpectations(t)
	mockEventRepo.AssertExpectations(t)
}

func TestInterviewScheduler_Upcoming_RepoError(t *testing.T) {
	mockEventRepo := new(MockEventRepository)
	hrID := uuid.New()

	mockEventRepo.On("QueryUpcoming", mock.Anything, hrID, mock.Anything, 50).
		Return(nil, errors.New("connection refused"))

	scheduler := services.NewInterviewScheduler(mockEventRepo, new(MockApplicationRepository), new(MockStatusPipeline), nil)
	events, err := scheduler.Upcoming(context.Background(), &dto.UpcomingEventsRequest{HrUserID: hrID})

	assert.Nil(t, events)
	assert.Error(t, err)
}
