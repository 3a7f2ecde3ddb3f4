package model

import (
	"time"

	"gorm.io/gorm"
)

// AdminEmail is the only address the dev identity provider treats as admin.
const AdminEmail = "admin@luxstudio.vn"

// Seed заполняет пустую базу стартовым каталогом и демо-заказом.
// Повторный вызов ничего не делает.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []Service{
		{
			ID:          "svc-1",
			Name:        "Standard Portrait",
			Price:       1500000,
			Description: "Gói chân dung cơ bản dành cho cá nhân, sinh viên. Chụp tại Studio.",
			Position:    1,
			Options: []ServiceOption{
				{Name: "Make up chuyên nghiệp", Price: 300000, Position: 1},
				{Name: "In ảnh album (10 trang)", Price: 500000, Position: 2},
			},
		},
		{
			ID:          "svc-2",
			Name:        "Concept Fine-art",
			Price:       3500000,
			Description: "Gói nghệ thuật cao cấp với Concept thiết kế riêng. Stylist hỗ trợ toàn bộ.",
			Position:    2,
			Options: []ServiceOption{
				{Name: "Thuê trang phục thiết kế", Price: 1000000, Position: 1},
				{Name: "Chụp thêm 1 Concept", Price: 1500000, Position: 2},
			},
		},
		{
			ID:          "svc-3",
			Name:        "Wedding Pre-shoot",
			Price:       8000000,
			Description: "Gói chụp ngoại cảnh dành cho các cặp đôi. Đã bao gồm xe di chuyển.",
			Position:    3,
			Options: []ServiceOption{
				{Name: "Quay phim Behind the Scenes", Price: 2000000, Position: 1},
			},
		},
		{
			ID:          "svc-4",
			Name:        "Commercial Lookbook",
			Price:       5000000,
			Description: "Dành cho thương hiệu thời trang. Chụp 20-30 bộ trang phục.",
			Position:    4,
			Options: []ServiceOption{
				{Name: "Người mẫu chuyên nghiệp", Price: 2500000, Position: 1},
			},
		},
	}
	if err := db.Create(&services).Error; err != nil {
		return err
	}

	demoUser := User{
		UID:         "user-123",
		Email:       "client@example.com",
		DisplayName: "Guest User",
		PhotoURL:    "https://picsum.photos/100",
	}
	if err := db.FirstOrCreate(&demoUser, User{UID: demoUser.UID}).Error; err != nil {
		return err
	}

	demoOrder := Order{
		ID:          "ord-1",
		UID:         "user-123",
		Email:       "client@example.com",
		Phone:       "0901234567",
		ShootDate:   "2024-12-25",
		ShootTime:   "09:00",
		Location:    "Studio Quận 1",
		ServiceName: "Standard Portrait",
		Total:       1800000,
		Status:      OrderStatusDeposited,
		CreatedAt:   time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC),
	}
	if err := demoOrder.SetOptions([]OptionSnapshot{{Name: "Make up chuyên nghiệp", Price: 300000}}); err != nil {
		return err
	}
	return db.Create(&demoOrder).Error
}
