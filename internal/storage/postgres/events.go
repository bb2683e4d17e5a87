package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const eventColumns = `id, hr_user_id, seeker_user_id, application_id, event_title, event_type,
		event_date, event_time, duration_minutes, location, meeting_link, description, status, created_at`

// EventRepo implements the storage.EventRepository interface using PostgreSQL.
type EventRepo struct {
	db Querier
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(db *pgxpool.Pool) *EventRepo {
	return &EventRepo{db: db}
}

// Compile-time check to ensure EventRepo implements EventRepository
var _ storage.EventRepository = (*EventRepo)(nil)

func scanEvent(row pgx.Row) (*models.Event, error) {
	var ev models.Event
	err := row.Scan(
		&ev.ID,
		&ev.HrUserID,
		&ev.SeekerUserID,
		&ev.ApplicationID,
		&ev.Title,
		&ev.EventType,
		&ev.Date,
		&ev.Time,
		&ev.DurationMinutes,
		&ev.Location,
		&ev.MeetingLink,
		&ev.Description,
		&ev.Status,
		&ev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Create saves a new event in the 'scheduled' status.
func (r *EventRepo) Create(ctx context.Context, req *dto.CreateEventRecord) (*models.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (id, hr_user_id, seeker_user_id, application_id, event_title, event_type,
			event_date, event_time, duration_minutes, location, meeting_link, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		RETURNING %s
	`, eventColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.HrUserID,
		req.SeekerUserID,
		req.ApplicationID,
		req.Title,
		req.EventType,
		req.Date,
		req.Time,
		req.DurationMinutes,
		req.Location,
		req.MeetingLink,
		req.Description,
		models.EventStatusScheduled,
	)

	ev, err := scanEvent(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error creating event: foreign key violation (seeker: %s): %v\n", req.SeekerUserID, err)
			return nil, fmt.Errorf("failed to create event: invalid seeker or application ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating event: %v\n", err)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	log.Printf("Event created successfully with ID: %s", ev.ID)
	return ev, nil
}

// GetByID retrieves a specific event by its ID.
func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	ev, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Event not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning event by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get event by ID %s: %w", id, err)
	}

	return ev, nil
}

// QueryByRange returns the HR user's scheduled events dated within [start, end],
// ordered by date then time. Used by the calendar month view.
func (r *EventRepo) QueryByRange(ctx context.Context, hrUserID uuid.UUID, start, end time.Time) ([]models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE hr_user_id = $1 AND status = $2 AND event_date BETWEEN $3 AND $4
		ORDER BY event_date ASC, event_time ASC
	`, eventColumns)

	rows, err := r.db.Query(ctx, query, hrUserID, models.EventStatusScheduled, start, end)
	if err != nil {
		log.Printf("Error querying events by range for HR user %s: %v\n", hrUserID, err)
		return nil, fmt.Errorf("failed to query events by range: %w", err)
	}
	defer rows.Close()

	events, err := collectEvents(rows)
	if err != nil {
		log.Printf("Error scanning events by range for HR user %s: %v\n", hrUserID, err)
		return nil, fmt.Errorf("failed to scan events by range: %w", err)
	}

	return events, nil
}

// QueryUpcoming returns the HR user's scheduled events dated today or later,
// bounded by limit. Used by the dashboard widget.
func (r *EventRepo) QueryUpcoming(ctx context.Context, hrUserID uuid.UUID, today time.Time, limit int) ([]models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE hr_user_id = $1 AND status = $2 AND event_date >= $3
		ORDER BY event_date ASC, event_time ASC
		LIMIT $4
	`, eventColumns)

	rows, err := r.db.Query(ctx, query, hrUserID, models.EventStatusScheduled, today, limit)
	if err != nil {
		log.Printf("Error querying upcoming events for HR user %s: %v\n", hrUserID, err)
		return nil, fmt.Errorf("failed to query upcoming events: %w", err)
	}
	defer rows.Close()

	events, err := collectEvents(rows)
	if err != nil {
		log.Printf("Error scanning upcoming events for HR user %s: %v\n", hrUserID, err)
		return nil, fmt.Errorf("failed to scan upcoming events: %w", err)
	}

	return events, nil
}

// UpdateStatus moves a still-scheduled event into a terminal status. The WHERE
// guard makes a second cancel/complete affect zero rows instead of failing.
func (r *EventRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.EventStatus) (int64, error) {
	query := `
		UPDATE events
		SET status = $1
		WHERE id = $2 AND status = $3
	`

	tag, err := r.db.Exec(ctx, query, status, id, models.EventStatusScheduled)
	if err != nil {
		log.Printf("Error updating event status for %s: %v\n", id, err)
		return 0, fmt.Errorf("failed to update event status: %w", err)
	}

	return tag.RowsAffected(), nil
}

func collectEvents(rows pgx.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{} // Return empty slice, not nil
	}
	return events, nil
}
