package rest

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/resonanse/resonanse_api/internal/model"
)

const eventColumns = `id, title, description, brief_description, subject, location_title,
       datetime_from, datetime_to, is_online, is_paid, contact_info,
       event_limit, age_limit, creator_id, community_id, picture, created_at, updated_at`

func scanEvent(row pgx.Row) (model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID, &event.Title, &event.Description, &event.BriefDescription, &event.Subject, &event.LocationTitle,
		&event.DatetimeFrom, &event.DatetimeTo, &event.IsOnline, &event.IsPaid, &event.ContactInfo,
		&event.EventLimit, &event.AgeLimit, &event.CreatorID, &event.CommunityID, &event.Picture,
		&event.CreatedAt, &event.UpdatedAt,
	)
	return event, err
}

func (api *API) CreateEventRepo(ctx context.Context, event model.Event) error {
	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		stmt := `
            INSERT INTO events (
                id, title, description, brief_description, subject, location_title,
                datetime_from, datetime_to, is_online, is_paid, contact_info,
                event_limit, age_limit, creator_id, community_id, picture, created_at, updated_at
            ) VALUES (
                $1, $2, $3, $4, $5, $6,
                $7, $8, $9, $10, $11,
                $12, $13, $14, $15, $16, $17, $18
            )
        `
		_, err := tx.Exec(ctx, stmt,
			event.ID, event.Title, event.Description, event.BriefDescription, event.Subject, event.LocationTitle,
			event.DatetimeFrom, event.DatetimeTo, event.IsOnline, event.IsPaid, event.ContactInfo,
			event.EventLimit, event.AgeLimit, event.CreatorID, event.CommunityID, event.Picture,
			event.CreatedAt, event.UpdatedAt,
		)
		return err
	})
	if err != nil {
		log.Println("error creating event", err)
		return err
	}
	return nil
}

func (api *API) ListUpcomingEventsRepo(ctx context.Context, since time.Time) ([]model.Event, error) {
	stmt := `SELECT ` + eventColumns + ` FROM events WHERE datetime_from >= $1 ORDER BY datetime_from`

	rows, err := api.DB.Query(ctx, stmt, since)
	if err != nil {
		log.Println("error listing events", err)
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (api *API) GetEventByIDRepo(ctx context.Context, eventID uuid.UUID) (model.Event, error) {
	stmt := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(api.DB.QueryRow(ctx, stmt, eventID))
}

// UpdateEventRepo overwrites every field of the event with the
// request shape.
func (api *API) UpdateEventRepo(ctx context.Context, eventID uuid.UUID, req model.CreateEventRequest) (model.Event, error) {
	stmt := `
        UPDATE events SET
            title = $2, description = $3, brief_description = $4, subject = $5, location_title = $6,
            datetime_from = $7, datetime_to = $8, is_online = $9, is_paid = $10, contact_info = $11,
            event_limit = $12, age_limit = $13, creator_id = $14, community_id = $15, picture = $16,
            updated_at = $17
        WHERE id = $1
        RETURNING ` + eventColumns

	return scanEvent(api.DB.QueryRow(ctx, stmt,
		eventID,
		req.Title, req.Description, req.BriefDescription, req.Subject, req.LocationTitle,
		req.DatetimeFrom, req.DatetimeTo, req.IsOnline, req.IsPaid, req.ContactInfo,
		req.EventLimit, req.AgeLimit, req.CreatorID, req.CommunityID, req.Picture,
		time.Now(),
	))
}

func (api *API) DeleteEventRepo(ctx context.Context, eventID uuid.UUID) error {
	tag, err := api.DB.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		log.Println("error deleting event", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
