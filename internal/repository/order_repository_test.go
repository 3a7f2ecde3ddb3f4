package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/luxstudio/storefront-core/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
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
	sqlDB.SetMaxOpenConns(1)

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func mustCreateOrder(t *testing.T, repo OrderRepository, o model.Order) {
	t.Helper()
	if o.Options == nil {
		if err := o.SetOptions(nil); err != nil {
			t.Fatalf("set options: %v", err)
		}
	}
	if err := repo.Create(context.Background(), &o); err != nil {
		t.Fatalf("create order %s: %v", o.ID, err)
	}
}

func TestOrderList_MostRecentFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormOrderRepository(db)

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"ord-a", "ord-b", "ord-c"} {
		mustCreateOrder(t, repo, model.Order{
			ID:          id,
			UID:         "user-123",
			Email:       "client@example.com",
			Phone:       "0901",
			ShootDate:   "2025-02-01",
			ShootTime:   "09:00",
			Location:    "Studio",
			ServiceName: "Standard Portrait",
			Total:       1500000,
			Status:      model.OrderStatusPending,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}

	orders, total, err := repo.List(context.Background(), "", "", 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	want := []string{"ord-c", "ord-b", "ord-a"}
	for i, w := range want {
		if orders[i].ID != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, orders[i].ID)
		}
	}
}

func TestFindConflicts_ExactSlotConfirmedOnly(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormOrderRepository(db)

	slot := model.Order{
		UID:         "user-123",
		Email:       "client@example.com",
		Phone:       "0901",
		ShootDate:   "2025-03-03",
		ShootTime:   "10:00",
		Location:    "Studio Quận 1",
		ServiceName: "Standard Portrait",
		Total:       1500000,
	}

	deposited := slot
	deposited.ID = "ord-deposited"
	deposited.Status = model.OrderStatusDeposited
	mustCreateOrder(t, repo, deposited)

	pendingSameSlot := slot
	pendingSameSlot.ID = "ord-pending"
	pendingSameSlot.Status = model.OrderStatusPending
	mustCreateOrder(t, repo, pendingSameSlot)

	otherTime := slot
	otherTime.ID = "ord-other-time"
	otherTime.ShootTime = "11:00"
	otherTime.Status = model.OrderStatusDeposited
	mustCreateOrder(t, repo, otherTime)

	conflicts, err := repo.FindConflicts(context.Background(), "ord-pending", "2025-03-03", "10:00", "Studio Quận 1")
	if err != nil {
		t.Fatalf("find conflicts: %v", err)
	}
	if len(conflicts) != 1 || conflicts[0].ID != "ord-deposited" {
		t.Fatalf("expected only the deposited same-slot order, got %v", conflicts)
	}

	// Сам заказ в свои конфликты не попадает.
	conflicts, err = repo.FindConflicts(context.Background(), "ord-deposited", "2025-03-03", "10:00", "Studio Quận 1")
	if err != nil {
		t.Fatalf("find conflicts: %v", err)
	}
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", conflicts)
	}
}

func TestOrderOptions_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormOrderRepository(db)

	o := model.Order{
		ID:          "ord-json",
		UID:         "user-123",
		Email:       "client@example.com",
		Phone:       "0901",
		ShootDate:   "2025-04-04",
		ShootTime:   "09:00",
		Location:    "Studio",
		ServiceName: "Standard Portrait",
		Total:       1800000,
		Status:      model.OrderStatusPending,
	}
	if err := o.SetOptions([]model.OptionSnapshot{{Name: "Make up chuyên nghiệp", Price: 300000}}); err != nil {
		t.Fatalf("set options: %v", err)
	}
	if err := repo.Create(context.Background(), &o); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.GetByID(context.Background(), "ord-json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	opts, err := loaded.OptionList()
	if err != nil {
		t.Fatalf("option list: %v", err)
	}
	if len(opts) != 1 || opts[0].Name != "Make up chuyên nghiệp" || opts[0].Price != 300000 {
		t.Fatalf("unexpected options after round trip: %v", opts)
	}
}
