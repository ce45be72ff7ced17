package rest

import (
	"context"
	"log"

	"github.com/resonanse/resonanse_api/internal/model"
)

func (api *API) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	stmt := `SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)`

	err := api.DB.QueryRow(ctx, stmt, username).Scan(&exists)
	if err != nil {
		log.Println("error checking username", err)
		return false, err
	}
	return exists, nil
}

func (api *API) CreateAccountRepo(ctx context.Context, account model.Account) error {
	stmt := `
        INSERT INTO accounts (
            id, username, first_name, last_name, city, about,
            headline, goals, interests, language, age, education,
            hobby, music, sport, books, food, worldview, alcohol,
            email, phone, tg_username, tg_user_id, instagram,
            password_hash, user_type, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6,
            $7, $8, $9, $10, $11, $12,
            $13, $14, $15, $16, $17, $18, $19,
            $20, $21, $22, $23, $24,
            $25, $26, $27, $28
        )
    `
	_, err := api.DB.Exec(ctx, stmt,
		account.ID, account.Username, account.FirstName, account.LastName, account.City, account.About,
		account.Headline, account.Goals, account.Interests, account.Language, account.Age, account.Education,
		account.Hobby, account.Music, account.Sport, account.Books, account.Food, account.Worldview, account.Alcohol,
		account.Email, account.Phone, account.TgUsername, account.TgUserID, account.Instagram,
		account.PasswordHash, account.UserType, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		log.Println("error creating new account", err)
		return err
	}
	return nil
}

func (api *API) GetAccountByUsername(ctx context.Context, username string) (model.Account, error) {
	var account model.Account
	stmt := `
        SELECT id, username, first_name, last_name, city, about,
               headline, goals, interests, language, age, education,
               hobby, music, sport, books, food, worldview, alcohol,
               email, phone, tg_username, tg_user_id, instagram,
               password_hash, user_type, created_at, updated_at
        FROM accounts WHERE username = $1`

	err := api.DB.QueryRow(ctx, stmt, username).Scan(
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
