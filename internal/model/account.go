package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is the storage shape of a user account.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	City      string    `json:"city"`
	About     string    `json:"about"`

	Headline  *string `json:"headline,omitempty"`
	Goals     *string `json:"goals,omitempty"`
	Interests *string `json:"interests,omitempty"`
	Language  *string `json:"language,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Education *string `json:"education,omitempty"`

	Hobby     *string `json:"hobby,omitempty"`
	Music     *string `json:"music,omitempty"`
	Sport     *string `json:"sport,omitempty"`
	Books     *string `json:"books,omitempty"`
	Food      *string `json:"food,omitempty"`
	Worldview *string `json:"worldview,omitempty"`
	Alcohol   *string `json:"alcohol,omitempty"`

	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	TgUsername *string `json:"tg_username,omitempty"`
	TgUserID   *int64  `json:"tg_user_id,omitempty"`
	Instagram  *string `json:"instagram,omitempty"`

	PasswordHash string `json:"-"`
	UserType     int    `json:"user_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	City      string `json:"city" validate:"required"`
	About     string `json:"about" validate:"required"`
	UserType  int    `json:"user_type"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest is the full profile shape. An update
// overwrites every field it carries; optional fields left out of the
// request are cleared, not preserved.
type UpdateAccountRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	City      string `json:"city" validate:"required"`
	About     string `json:"about" validate:"required"`

	Headline  *string `json:"headline"`
	Goals     *string `json:"goals"`
	Interests *string `json:"interests"`
	Language  *string `json:"language"`
	Age       *int    `json:"age"`
	Education *string `json:"education"`

	Hobby     *string `json:"hobby"`
	Music     *string `json:"music"`
	Sport     *string `json:"sport"`
	Books     *string `json:"books"`
	Food      *string `json:"food"`
	Worldview *string `json:"worldview"`
	Alcohol   *string `json:"alcohol"`

	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	TgUsername *string `json:"tg_username"`
	TgUserID   *int64  `json:"tg_user_id"`
	Instagram  *string `json:"instagram"`
}

// AccountInfo is the public profile shape returned by the API.
type AccountInfo struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	City      string    `json:"city"`
	About     string    `json:"about"`
	UserType  int       `json:"user_type"`
}

func (a Account) Info() AccountInfo {
	return AccountInfo{
		ID:        a.ID,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		City:      a.City,
		About:     a.About,
		UserType:  a.UserType,
	}
}
