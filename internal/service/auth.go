package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gaana-Shree-S/ecommerce/internal/hash"
	"github.com/Gaana-Shree-S/ecommerce/internal/logging"
	"github.com/Gaana-Shree-S/ecommerce/internal/models"
	"github.com/Gaana-Shree-S/ecommerce/internal/mykafka"
	"github.com/Gaana-Shree-S/ecommerce/internal/repo"
	"github.com/Gaana-Shree-S/ecommerce/internal/tokens"
)

type AuthService struct {
	Repo          *repo.GormRepo
	AccessSecret  []byte
	RefreshSecret []byte
	Producer      mykafka.Publisher
}

// Session is the result of a successful login or refresh: the access token
// goes into the response body, the refresh token into an HTTP-only cookie.
type Session struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
	User         models.User
}

func roleOf(user *models.User) string {
	if user.IsAdmin {
		return "admin"
	}
	return "user"
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password required", ErrValidation)
	}

	if _, err := s.Repo.UserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("register_error", "error", err)
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique index on email is the actual arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user already exists", ErrConflict)
		}
		l.Error("register_error", "error", err)
		return nil, err
	}

	s.publish(ctx, user.ID.String(), map[string]any{
		"type":   "user_registered",
		"userId": user.ID,
		"email":  user.Email,
	})

	l.Info("user registered", "user_id", user.ID)
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrValidation)
	}

	// The same failure for unknown email and wrong password: callers must
	// not learn which accounts exist.
	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		l.Error("login_error", "error", err)
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := s.Repo.DeleteExpiredRefreshTokens(ctx, time.Now()); err != nil {
		l.Warn("expired token cleanup failed", "error", err)
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		l.Error("login_error", "error", err)
		return nil, err
	}

	s.publish(ctx, user.ID.String(), map[string]any{
		"type":   "user_logged_in",
		"userId": user.ID,
		"email":  user.Email,
	})

	l.Info("user logged in", "user_id", user.ID)
	return session, nil
}

// Refresh rotates the presented refresh token. Rotation is compare-and-remove:
// of two concurrent calls with the same token exactly one wins the removal.
// A token that verifies cryptographically but is absent from the outstanding
// set has already been rotated; its reuse is treated as compromise and every
// outstanding token for the account is revoked.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (*Session, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	if rawToken == "" {
		return nil, fmt.Errorf("%w: no refresh token", ErrUnauthorized)
	}

	claims, err := tokens.RefreshClaimsFromToken(rawToken, s.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}

	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
		}
		l.Error("refresh_error", "error", err)
		return nil, err
	}

	consumed, err := s.Repo.ConsumeRefreshToken(ctx, userID, tokens.Sha256Hex(rawToken))
	if err != nil {
		l.Error("refresh_error", "error", err)
		return nil, err
	}
	if !consumed {
		l.Warn("refresh token reuse detected, revoking all sessions", "user_id", userID)
		if err := s.Repo.RevokeAllRefreshTokens(ctx, userID); err != nil {
			l.Error("revoke_all_error", "error", err)
		}
		return nil, fmt.Errorf("%w: refresh token revoked", ErrUnauthorized)
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		l.Error("refresh_error", "error", err)
		return nil, err
	}
	return session, nil
}

// Logout never fails visibly; the cookie is cleared by the handler whatever
// happens here.
func (s *AuthService) Logout(ctx context.Context, rawToken string) {
	if rawToken == "" {
		return
	}
	l := logging.FromContext(ctx).With("svc", "auth.logout")

	if _, err := tokens.RefreshClaimsFromToken(rawToken, s.RefreshSecret); err != nil {
		return
	}
	if err := s.Repo.RemoveRefreshToken(ctx, tokens.Sha256Hex(rawToken)); err != nil {
		l.Warn("logout token removal failed", "error", err)
	}
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueSession(ctx context.Context, user *models.User) (*Session, error) {
	now := time.Now()
	accessExp := now.Add(tokens.AccessTTL)
	refreshExp := now.Add(tokens.RefreshTTL)

	accessToken, err := tokens.SignAccessToken(user.ID, user.Email, roleOf(user), accessExp, s.AccessSecret)
	if err != nil {
		return nil, err
	}
	refreshToken, err := tokens.SignRefreshToken(user.ID, refreshExp, s.RefreshSecret)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.AddRefreshToken(ctx, user.ID, tokens.Sha256Hex(refreshToken), refreshExp); err != nil {
		return nil, err
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
		User:         *user,
	}, nil
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicUserEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
