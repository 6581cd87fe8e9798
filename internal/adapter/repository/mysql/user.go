package mysql

import (
	"context"

	userDomain "bbl-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, p *userDomain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *UserRepository) Save(ctx context.Context, p *userDomain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *UserRepository) GetByIdentity(ctx context.Context, identity string) (*userDomain.Profile, error) {
	var out userDomain.Profile
	res := r.db.WithContext(ctx).Where("identity = ?", identity).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByIdentityForUpdate(ctx context.Context, identity string) (*userDomain.Profile, error) {
	var out userDomain.Profile
	res := lockForUpdate(r.db.WithContext(ctx)).
		Where("identity = ?", identity).
		First(&out)
	return &out, res.Error
}
