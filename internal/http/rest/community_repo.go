package rest

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/resonanse/resonanse_api/internal/model"
)

const communityColumns = `id, name, description, category, location, private, chat_link,
       creator_id, created_at, updated_at`

func scanCommunity(row pgx.Row) (model.Community, error) {
	var community model.Community
	err := row.Scan(
		&community.ID, &community.Name, &community.Description, &community.Category, &community.Location,
		&community.Private, &community.ChatLink, &community.CreatorID,
		&community.CreatedAt, &community.UpdatedAt,
	)
	return community, err
}

func (api *API) CreateCommunityRepo(ctx context.Context, community model.Community) error {
	stmt := `
        INSERT INTO communities (
            id, name, description, category, location, private, chat_link,
            creator_id, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := api.DB.Exec(ctx, stmt,
		community.ID, community.Name, community.Description, community.Category, community.Location,
		community.Private, community.ChatLink, community.CreatorID,
		community.CreatedAt, community.UpdatedAt,
	)
	if err != nil {
		log.Println("error creating community", err)
		return err
	}
	return nil
}

func (api *API) ListCommunitiesRepo(ctx context.Context) ([]model.Community, error) {
	stmt := `SELECT ` + communityColumns + ` FROM communities ORDER BY created_at`

	rows, err := api.DB.Query(ctx, stmt)
	if err != nil {
		log.Println("error listing communities", err)
		return nil, err
	}
	defer rows.Close()

	var communities []model.Community
	for rows.Next() {
		community, err := scanCommunity(rows)
		if err != nil {
			return nil, err
		}
		communities = append(communities, community)
	}
	return communities, rows.Err()
}

func (api *API) GetCommunityByIDRepo(ctx context.Context, communityID uuid.UUID) (model.Community, error) {
	stmt := `SELECT ` + communityColumns + ` FROM communities WHERE id = $1`
	return scanCommunity(api.DB.QueryRow(ctx, stmt, communityID))
}

func (api *API) UpdateCommunityRepo(ctx context.Context, communityID uuid.UUID, req model.CreateCommunityRequest) (model.Community, error) {
	stmt := `
        UPDATE communities SET
            name = $2, description = $3, category = $4, location = $5,
            private = $6, chat_link = $7, creator_id = $8, updated_at = $9
        WHERE id = $1
        RETURNING ` + communityColumns

	return scanCommunity(api.DB.QueryRow(ctx, stmt,
		communityID,
		req.Name, req.Description, req.Category, req.Location,
		req.Private, req.ChatLink, req.CreatorID,
		time.Now(),
	))
}

func (api *API) DeleteCommunityRepo(ctx context.Context, communityID uuid.UUID) error {
	tag, err := api.DB.Exec(ctx, `DELETE FROM communities WHERE id = $1`, communityID)
	if err != nil {
		log.Println("error deleting community", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
