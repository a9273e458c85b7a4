package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ovsienko/orderdesk/internal/hash"
	"github.com/ovsienko/orderdesk/internal/logging"
	"github.com/ovsienko/orderdesk/internal/models"
	"github.com/ovsienko/orderdesk/internal/repo"
	"github.com/ovsienko/orderdesk/internal/tokens"
	"github.com/ovsienko/orderdesk/internal/transport"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *AuthService) Register(ctx context.Context, username, phone, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if username == "" || phone == "" || password == "" {
		return fmt.Errorf("%w: username, phone and password required", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return err
	}

	user := models.User{
		Username:     username,
		Phone:        phone,
		PasswordHash: pwHash,
		Role:         models.RoleUser,
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_error", "status", 409, "reason", "phone or username already registered")
			return fmt.Errorf("%w: phone or username already registered", ErrConflict)
		}
		l.Error("register_error", "status", 500, "error", err)
		return err
	}

	l.Info("register_success", "username", username)
	return nil
}

func (s *AuthService) Login(ctx context.Context, phone, password string) (*transport.LoginResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.UserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown phone")
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "bad password")
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := tokens.Sign(user.ID, user.Role, s.JWTSecret)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, err
	}

	l.Info("login_success", "user_id", user.ID)
	return &transport.LoginResponse{Token: token, Authority: user.Role}, nil
}

// Authenticate resolves a raw bearer token to the user it was issued for.
// The user is re-read from the store, so a token for a deleted user fails.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*models.User, error) {
	claims, err := tokens.AccessClaimsFromToken(rawToken, s.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}

	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user", ErrUnauthorized)
		}
		return nil, err
	}
	return user, nil
}
