package repository

import (
	"context"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.ToLower(strings.TrimSpace(username))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByIdentifier resolves a login identifier as username or email. Both
// columns are unique, so at most one row can match.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	id := strings.ToLower(strings.TrimSpace(identifier))
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", id, id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ? OR email = ?",
			strings.ToLower(strings.TrimSpace(username)),
			strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

// UpdateFields applies a targeted update so unrelated columns are never
// rewritten (password changes must not touch profile fields and vice versa).
func (r *UserRepository) UpdateFields(ctx context.Context, userID int64, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(fields).Error
}

// SetRefreshTokenHash overwrites the stored refresh token hash. Used by
// login (new session replaces any prior one) and logout (hash = nil).
func (r *UserRepository) SetRefreshTokenHash(ctx context.Context, userID int64, hash *string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Update("refresh_token_hash", hash).Error
}

// SwapRefreshTokenHash replaces the stored hash only when it still equals
// oldHash: a single conditional UPDATE, so concurrent rotations with the
// same stale token can succeed at most once. Returns false when the
// compare-and-swap lost.
func (r *UserRepository) SwapRefreshTokenHash(ctx context.Context, userID int64, oldHash, newHash string) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND refresh_token_hash = ?", userID, oldHash).
		Update("refresh_token_hash", newHash)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
