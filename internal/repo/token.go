package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Gaana-Shree-S/ecommerce/internal/models"
)

func (r *GormRepo) AddRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	row := models.RefreshToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}
	return r.DB.WithContext(ctx).Create(&row).Error
}

// ConsumeRefreshToken removes the digest from the user's outstanding set.
// It reports whether the caller won the removal: under two concurrent
// refreshes with the same token exactly one delete affects a row, the other
// observes the token already absent.
func (r *GormRepo) ConsumeRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		Delete(&models.RefreshToken{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RevokeAllRefreshTokens empties the outstanding set, forcing re-login on
// every device. Used on refresh-token reuse detection.
func (r *GormRepo) RevokeAllRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.RefreshToken{}).Error
}

// RemoveRefreshToken deletes by digest alone; logout is best-effort and may
// not know the owning user.
func (r *GormRepo) RemoveRefreshToken(ctx context.Context, tokenHash string) error {
	return r.DB.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&models.RefreshToken{}).Error
}

func (r *GormRepo) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) error {
	return r.DB.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.RefreshToken{}).Error
}
