package rest

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/resonanse/resonanse_api/internal/model"
)

func (api *API) GetAccountByIDRepo(ctx context.Context, accountID uuid.UUID) (model.Account, error) {
	var account model.Account
	stmt := `
        SELECT id, username, first_name, last_name, city, about,
               headline, goals, interests, language, age, education,
               hobby, music, sport, books, food, worldview, alcohol,
               email, phone, tg_username, tg_user_id, instagram,
               password_hash, user_type, created_at, updated_at
        FROM accounts WHERE id = $1`

	err := api.DB.QueryRow(ctx, stmt, accountID).Scan(
		&account.ID, &account.Username, &account.FirstName, &account.LastName, &account.City, &account.About,
		&account.Headline, &account.Goals, &account.Interests, &account.Language, &account.Age, &account.Education,
		&account.Hobby, &account.Music, &account.Sport, &account.Books, &account.Food, &account.Worldview, &account.Alcohol,
		&account.Email, &account.Phone, &account.TgUsername, &account.TgUserID, &account.Instagram,
		&account.PasswordHash, &account.UserType, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// UpdateAccountRepo overwrites every profile field with the values in
// the request, including NULLing optional fields that were omitted.
func (api *API) UpdateAccountRepo(ctx context.Context, accountID uuid.UUID, req model.UpdateAccountRequest) (model.Account, error) {
	var account model.Account
	stmt := `
        UPDATE accounts SET
            first_name = $2, last_name = $3, city = $4, about = $5,
            headline = $6, goals = $7, interests = $8, language = $9, age = $10, education = $11,
            hobby = $12, music = $13, sport = $14, books = $15, food = $16, worldview = $17, alcohol = $18,
            email = $19, phone = $20, tg_username = $21, tg_user_id = $22, instagram = $23,
            updated_at = $24
        WHERE id = $1
        RETURNING id, username, first_name, last_name, city, about,
                  headline, goals, interests, language, age, education,
                  hobby, music, sport, books, food, worldview, alcohol,
                  email, phone, tg_username, tg_user_id, instagram,
                  password_hash, user_type, created_at, updated_at`

	err := api.DB.QueryRow(ctx, stmt,
		accountID,
		req.FirstName, req.LastName, req.City, req.About,
		req.Headline, req.Goals, req.Interests, req.Language, req.Age, req.Education,
		req.Hobby, req.Music, req.Sport, req.Books, req.Food, req.Worldview, req.Alcohol,
		req.Email, req.Phone, req.TgUsername, req.TgUserID, req.Instagram,
		time.Now(),
	).Scan(
		&account.ID, &account.Username, &account.FirstName, &account.LastName, &account.City, &account.About,
		&account.Headline, &account.Goals, &account.Interests, &account.Language, &account.Age, &account.Education,
		&account.Hobby, &account.Music, &account.Sport, &account.Books, &account.Food, &account.Worldview, &account.Alcohol,
		&account.Email, &account.Phone, &account.TgUsername, &account.TgUserID, &account.Instagram,
		&account.PasswordHash, &account.UserType, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, err
	}
	return account, nil
}

func (api *API) DeleteAccountRepo(ctx context.Context, accountID uuid.UUID) error {
	tag, err := api.DB.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		log.Println("error deleting account", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
