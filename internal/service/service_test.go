package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	identitypb "github.com/luxstudio/storefront-core/internal/api/identity/v1"
	"github.com/luxstudio/storefront-core/internal/identity"
	"github.com/luxstudio/storefront-core/internal/model"
	"github.com/luxstudio/storefront-core/internal/repository"
)

// core собирает все сервисы поверх sqlite in-memory с сид-данными.
type core struct {
	db       *gorm.DB
	identity *IdentityService
	catalog  *CatalogService
	orders   *OrderService
}

func setupCore(t *testing.T) *core {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	// одна in-memory база на все соединения
	sqlDB.SetMaxOpenConns(1)

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	if err := model.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	userRepo := repository.NewGormUserRepository(db)
	serviceRepo := repository.NewGormServiceRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	eventRepo := repository.NewGormEventRepository(db)

	provider := identity.NewDevProvider(model.AdminEmail)

	return &core{
		db:       db,
		identity: NewIdentityService(provider, userRepo, eventRepo),
		catalog:  NewCatalogService(serviceRepo, userRepo, eventRepo),
		orders:   NewOrderService(orderRepo, serviceRepo, userRepo, eventRepo),
	}
}

// login выполняет мок-логин и возвращает uid профиля.
func (c *core) login(t *testing.T, asAdmin bool) string {
	t.Helper()
	resp, err := c.identity.Login(context.Background(), &identitypb.LoginRequest{AsAdmin: asAdmin})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	return resp.GetUser().GetUid()
}

func (c *core) orderStatus(t *testing.T, id string) model.OrderStatus {
	t.Helper()
	var o model.Order
	if err := c.db.First(&o, "id = ?", id).Error; err != nil {
		t.Fatalf("load order %s: %v", id, err)
	}
	return o.Status
}

func (c *core) orderCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := c.db.Model(&model.Order{}).Count(&n).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return n
}
