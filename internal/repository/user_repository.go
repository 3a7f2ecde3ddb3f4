package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/luxstudio/storefront-core/internal/model"
)

type UserRepository interface {
	GetByUID(ctx context.Context, uid string) (*model.User, error)
	// Upsert создаёт пользователя или обновляет профильные поля.
	Upsert(ctx context.Context, user *model.User) (*model.User, error)
	SetRole(ctx context.Context, uid string, roleCode string) error
	GetRole(ctx context.Context, uid string) (string, error)
}

// Реализация на GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetByUID(ctx context.Context, uid string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "uid = ?", uid).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) Upsert(ctx context.Context, user *model.User) (*model.User, error) {
	var existing model.User
	tx := r.db.WithContext(ctx).First(&existing, "uid = ?", user.UID)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
				return nil, err
			}
			return user, nil
		}
		return nil, tx.Error
	}

	updates := map[string]any{
		"email":        user.Email,
		"display_name": user.DisplayName,
		"photo_url":    user.PhotoURL,
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("uid = ?", user.UID).Updates(updates).Error; err != nil {
		return nil, err
	}
	existing.Email = user.Email
	existing.DisplayName = user.DisplayName
	existing.PhotoURL = user.PhotoURL
	return &existing, nil
}

func (r *GormUserRepository) SetRole(ctx context.Context, uid string, roleCode string) error {
	// ensure role exists
	var role model.Role
	if err := r.db.WithContext(ctx).Where("code = ?", roleCode).First(&role).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role.Code = roleCode
			role.Name = roleCode
			if err := r.db.WithContext(ctx).Create(&role).Error; err != nil {
				return err
			}
		} else {
			return err
		}
	}

	// remove previous roles and set new one (single role policy)
	if err := r.db.WithContext(ctx).Where("user_id = ?", uid).Delete(&model.UserRole{}).Error; err != nil {
		return err
	}

	ur := model.UserRole{RoleID: role.ID, UserID: uid}
	return r.db.WithContext(ctx).Create(&ur).Error
}

func (r *GormUserRepository) GetRole(ctx context.Context, uid string) (string, error) {
	var ur model.UserRole
	if err := r.db.WithContext(ctx).Where("user_id = ?", uid).First(&ur).Error; err != nil {
		return "", err
	}
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", ur.RoleID).Error; err != nil {
		return "", err
	}
	return role.Code, nil
}
