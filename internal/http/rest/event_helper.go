package rest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/resonanse/resonanse_api/internal/model"
	"github.com/resonanse/resonanse_api/util"
	"github.com/resonanse/resonanse_api/util/values"
)

// Postgres error codes checked by the helpers.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func (api *API) CreateEventHelper(ctx context.Context, req model.CreateEventRequest) (model.Event, string, string, error) {
	event := model.Event{
		ID:               util.GenerateUUID(),
		Title:            req.Title,
		Description:      req.Description,
		BriefDescription: req.BriefDescription,
		Subject:          req.Subject,
		LocationTitle:    req.LocationTitle,
		DatetimeFrom:     req.DatetimeFrom,
		DatetimeTo:       req.DatetimeTo,
		IsOnline:         req.IsOnline,
		IsPaid:           req.IsPaid,
		ContactInfo:      req.ContactInfo,
		EventLimit:       req.EventLimit,
		AgeLimit:         req.AgeLimit,
		CreatorID:        req.CreatorID,
		CommunityID:      req.CommunityID,
		Picture:          req.Picture,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := api.CreateEventRepo(ctx, event); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return model.Event{}, values.Unprocessable, "Referenced account or community does not exist", err
		}
		return model.Event{}, values.Error, "Failed to create event", err
	}

	return event, values.Created, "Event created successfully", nil
}

// todayMidnight is the lower bound of the default event listing.
func todayMidnight() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
