package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/luxstudio/storefront-core/internal/model"
)

// StatusCounts — агрегаты для дашборда.
type StatusCounts struct {
	Total     int64
	Pending   int64
	Deposited int64
	Completed int64
	Cancelled int64
}

type OrderRepository interface {
	// Создать новый заказ.
	Create(ctx context.Context, order *model.Order) error
	// Получить заказ по ID.
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// Список заказов, свежие первыми, с поиском и фильтром по статусу.
	List(ctx context.Context, search string, status model.OrderStatus, limit, offset int) ([]model.Order, int64, error)
	// Заказы одного клиента, свежие первыми.
	ListByUser(ctx context.Context, uid string, limit, offset int) ([]model.Order, int64, error)
	// Подтверждённые заказы (deposited/completed) на дату.
	ListConfirmedByDate(ctx context.Context, date string) ([]model.Order, error)
	// Другие подтверждённые заказы на тот же слот (дата, время, место).
	FindConflicts(ctx context.Context, excludeID, date, timeOfDay, location string) ([]model.Order, error)
	// Обновить статус заказа.
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	// Записать ссылку/пароль выдачи и перевести в completed.
	SetDelivery(ctx context.Context, id, link, pass string) error
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

// Реализация на GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepository) List(
	ctx context.Context,
	search string,
	status model.OrderStatus,
	limit, offset int,
) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("email LIKE ? OR phone LIKE ? OR location LIKE ?", like, like, like)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var orders []model.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *GormOrderRepository) ListByUser(ctx context.Context, uid string, limit, offset int) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).Where("uid = ?", uid)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var orders []model.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *GormOrderRepository) ListConfirmedByDate(ctx context.Context, date string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("shoot_date = ?", date).
		Where("status IN ?", []model.OrderStatus{model.OrderStatusDeposited, model.OrderStatusCompleted}).
		Order("shoot_time ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) FindConflicts(
	ctx context.Context,
	excludeID, date, timeOfDay, location string,
) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Where("shoot_date = ? AND shoot_time = ? AND location = ?", date, timeOfDay, location).
		Where("status IN ?", []model.OrderStatus{model.OrderStatusDeposited, model.OrderStatusCompleted}).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

func (r *GormOrderRepository) SetDelivery(ctx context.Context, id, link, pass string) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        model.OrderStatusCompleted,
			"delivery_link": link,
			"delivery_pass": pass,
		}).
		Error
}

func (r *GormOrderRepository) CountByStatus(ctx context.Context) (StatusCounts, error) {
	var rows []struct {
		Status model.OrderStatus
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return StatusCounts{}, err
	}

	var c StatusCounts
	for _, row := range rows {
		c.Total += row.N
		switch row.Status {
		case model.OrderStatusPending:
			c.Pending = row.N
		case model.OrderStatusDeposited:
			c.Deposited = row.N
		case model.OrderStatusCompleted:
			c.Completed = row.N
		case model.OrderStatusCancelled:
			c.Cancelled = row.N
		}
	}
	return c, nil
}
