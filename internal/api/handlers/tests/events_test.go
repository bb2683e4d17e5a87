package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-portal-api/internal/api/handlers"
	"job-portal-api/internal/api/middleware"
	"job-portal-api/internal/api/routes"
	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key"

// MockInterviewScheduler is a mock implementation of services.InterviewScheduler
type MockInterviewScheduler struct {
	mock.Mock
}

func (m *MockInterviewScheduler) Schedule(ctx context.Context, req *dto.ScheduleEventRequest) (*models.Event, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockInterviewScheduler) Cancel(ctx context.Context, eventID, actorHrID uuid.UUID) (*models.Event, error) {
	args := m.Called(ctx, eventID, actorHrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockInterviewScheduler) Complete(ctx context.Context, eventID, actorHrID uuid.UUID) (*models.Event, error) {
	args := m.Called(ctx, eventID, actorHrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockInterviewScheduler) Upcoming(ctx context.Context, req *dto.UpcomingEventsRequest) ([]models.Event, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockInterviewScheduler) MonthEvents(ctx context.Context, hrUserID uuid.UUID, year, month int) ([]models.Event, error) {
	args := m.Called(ctx, hrUserID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

// Ensure mock implements the interface
var _ services.InterviewScheduler = (*MockInterviewScheduler)(nil)

// --- Helper Function for Setup ---

func setupEventRouter() (*gin.Engine, *MockInterviewScheduler) {
	gin.SetMode(gin.TestMode)
	mockScheduler := new(MockInterviewScheduler)
	validate := validator.New()

	eventHandler := handlers.NewEventHandler(mockScheduler, validate)
	calendarHandler := handlers.NewCalendarHandler(mockScheduler)

	router := gin.New()
	apiV1 := router.Group("/api/v1")
	routes.RegisterEventRoutes(apiV1, eventHandler, calendarHandler, middleware.JWTAuthMiddleware(testJWTSecret))
	return router, mockScheduler
}

func authHeader(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := generateTestToken(userID, testJWTSecret, 15*time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

// --- Tests ---

func TestCreateEventRoute(t *testing.T) {
	router, mockScheduler := setupEventRouter()
	hrID := uuid.New()
	seekerID := uuid.New()

	body := map[string]any{
		"seeker_id":   seekerID.String(),
		"event_title": "Technical interview",
		"event_type":  "technical",
		"event_date":  time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
		"event_time":  "10:00",
		"duration":    45,
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	created := &models.Event{
		ID:           uuid.New(),
		HrUserID:     hrID,
		SeekerUserID: seekerID,
		Title:        "Technical interview",
		EventType:    models.EventTypeTechnical,
		Time:         "10:00",
		Status:       models.EventStatusScheduled,
	}
	mockScheduler.On("Schedule", mock.Anything, mock.MatchedBy(func(req *dto.ScheduleEventRequest) bool {
		// The actor ID must come from the token, never the body.
		return req.HrUserID == hrID && req.SeekerID == seekerID
	})).Return(created, nil)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, hrID))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, models.EventStatusScheduled, resp.Status)
	mockScheduler.AssertExpectations(t)
}

func TestCreateEventRoute_Unauthorized(t *testing.T) {
	router, mockScheduler := setupEventRouter()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	mockScheduler.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
}

func TestCreateEventRoute_PastDate(t *testing.T) {
	router, mockScheduler := setupEventRouter()
	hrID := uuid.New()

	body := map[string]any{
		"seeker_id":   uuid.New().String(),
		"event_title": "Screening call",
		"event_type":  "screening",
		"event_date":  "2020-01-15",
		"event_time":  "10:00",
		"duration":    30,
	}
	payload, _ := json.Marshal(body)

	mockScheduler.On("Schedule", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: event_date 2020-01-15 is in the past", services.ErrSchedule))

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, hrID))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCancelEventRoute(t *testing.T) {
	router, mockScheduler := setupEventRouter()
	hrID := uuid.New()
	eventID := uuid.New()

	cancelled := &models.Event{ID: eventID, HrUserID: hrID, Status: models.EventStatusCancelled}
	mockScheduler.On("Cancel", mock.Anything, eventID, hrID).Return(cancelled, nil)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/cancel", nil)
	req.Header.Set("Authorization", authHeader(t, hrID))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.EventStatusCancelled, resp.Status)
}

func TestCancelEventRoute_Forbidden(t *testing.T) {
	router, mockScheduler := setupEventRouter()
	hrID := uuid.New()
	eventID := uuid.New()

	mockScheduler.On("Cancel", mock.Anything, eventID, hrID).Return(nil, services.ErrOwnership)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/"+eventID.String()+"/cancel", nil)
	req.Header.Set("Authorization", authHeader(t, hrID))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCompleteEventRoute_InvalidID(t *testing.T) {
	router, mockScheduler := setupEventRouter()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/events/not-a-uuid/complete", nil)
	req.Header.Set("Authorization", authHeader(t, uuid.New()))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockScheduler.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpcomingEventsRoute(t *testing.T) {
	router, mockScheduler := setupEventRouter()
	hrID := uuid.New()

	events := []models.Event{
		{ID: uuid.New(), HrUserID: hrID, Title: "First", Status: models.EventStatusScheduled},
		{ID: uuid.New(), HrUserID: hrID, Title: "Second", Status: models.EventStatusScheduled},
	}
	mockScheduler.On("Upcoming", mock.Anything, mock.MatchedBy(func(req *dto.UpcomingEventsRequest) bool {
		return req.HrUserID == hrID && req.Limit == 5
	})).Return(events, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/events/upcoming", nil)
	req.Header.Set("Authorization", authHeader(t, hrID))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestCalendarRoute(t *testing.T) {
	router, mockScheduler := setupEventRouter()
	hrID := uuid.New()

	eventDate := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: uuid.New(), HrUserID: hrID, Title: "Interview", Date: eventDate, Time: "09:00", Status: models.EventStatusScheduled},
	}
	mockScheduler.On("MonthEvents", mock.Anything, hrID, 2024, 2).Return(events, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/calendar?year=2024&month=2", nil)
	req.Header.Set("Authorization", authHeader(t, hrID))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.CalendarResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 2, resp.Month)
	assert.Zero(t, len(resp.Cells)%7)
	// Feb 2024 starts on a Thursday: 4 leading blanks then day 1.
	require.Greater(t, len(resp.Cells), 5)
	assert.Zero(t, resp.Cells[0].Day)
	assert.Equal(t, 1, resp.Cells[4].Day)
}

func TestCalendarRoute_MonthZeroRollsBack(t *testing.T) {
	router, mockScheduler := setupEventRouter()
	hrID := uuid.New()

	mockScheduler.On("MonthEvents", mock.Anything, hrID, 2023, 12).Return([]models.Event{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/calendar?year=2024&month=0", nil)
	req.Header.Set("Authorization", authHeader(t, hrID))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.CalendarResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2023, resp.Year)
	assert.Equal(t, 12, resp.Month)
	mockScheduler.AssertExpectations(t)
}
