package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/luxstudio/storefront-core/internal/model"
)

type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*model.Service, error)
	// List возвращает каталог в порядке позиций, с опциями.
	List(ctx context.Context, limit, offset int) ([]model.Service, int64, error)
	// Create добавляет пакет в конец каталога.
	Create(ctx context.Context, service *model.Service) error
	// Update заменяет поля и список опций, позиция сохраняется.
	Update(ctx context.Context, service *model.Service) error
	Delete(ctx context.Context, id string) error
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	var s model.Service
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormServiceRepository) List(ctx context.Context, limit, offset int) ([]model.Service, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Service{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var services []model.Service
	err := q.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC, id ASC") }).
		Order("position ASC").
		Limit(limit).Offset(offset).
		Find(&services).Error
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int
		row := tx.Model(&model.Service{}).Select("COALESCE(MAX(position), 0)").Row()
		if err := row.Scan(&maxPos); err != nil {
			return err
		}
		service.Position = maxPos + 1
		return tx.Create(service).Error
	})
}

func (r *GormServiceRepository) Update(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Service
		if err := tx.First(&existing, "id = ?", service.ID).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"name":        service.Name,
			"price":       service.Price,
			"description": service.Description,
		}
		if err := tx.Model(&model.Service{}).Where("id = ?", service.ID).Updates(updates).Error; err != nil {
			return err
		}

		// Options are replaced wholesale; the edit form sends the full list.
		if err := tx.Where("service_id = ?", service.ID).Delete(&model.ServiceOption{}).Error; err != nil {
			return err
		}
		for i := range service.Options {
			service.Options[i].ID = 0
			service.Options[i].ServiceID = service.ID
			if service.Options[i].Position == 0 {
				service.Options[i].Position = i + 1
			}
		}
		if len(service.Options) > 0 {
			if err := tx.Create(&service.Options).Error; err != nil {
				return err
			}
		}

		service.Position = existing.Position
		return nil
	})
}

func (r *GormServiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&model.ServiceOption{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Service{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
