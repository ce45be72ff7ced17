package rest

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/resonanse/resonanse_api/internal/model"
	"github.com/resonanse/resonanse_api/util"
	"github.com/resonanse/resonanse_api/util/values"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (api *API) RegisterAccountHelper(ctx context.Context, req model.RegisterRequest) (model.Account, string, string, error) {
	req.Username = strings.TrimSpace(req.Username)

	exists, err := api.UsernameExists(ctx, req.Username)
	if err != nil {
		return model.Account{}, values.Error, "Error checking username", err
	}
	if exists {
		return model.Account{}, values.Conflict, "Username already exists", nil
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return model.Account{}, values.Error, "Failed to hash password", err
	}

	account := model.Account{
		ID:           util.GenerateUUID(),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		City:         req.City,
		About:        req.About,
		PasswordHash: passwordHash,
		UserType:     req.UserType,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := api.CreateAccountRepo(ctx, account); err != nil {
		// Username unique constraint can still race the exists check
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return model.Account{}, values.Conflict, "Username already exists", nil
		}
		return model.Account{}, values.Error, "Failed to create account", err
	}

	return account, values.Created, "Account created successfully", nil
}

func (api *API) LoginHelper(ctx context.Context, req model.LoginRequest) (model.Account, string, string, error) {
	account, err := api.GetAccountByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, values.NotAuthorised, "Invalid credentials", nil
		}
		return model.Account{}, values.Error, "Error getting account", err
	}

	if err := verifyPassword(account.PasswordHash, req.Password); err != nil {
		return model.Account{}, values.NotAuthorised, "Invalid credentials", nil
	}

	return account, values.Success, "Logged in successfully", nil
}
