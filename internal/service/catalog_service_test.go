package service

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	storefrontpb "github.com/luxstudio/storefront-core/internal/api/storefront/v1"
	"github.com/luxstudio/storefront-core/internal/model"
)

func TestListServices_SeededCatalogInOrder(t *testing.T) {
	c := setupCore(t)

	resp, err := c.catalog.ListServices(context.Background(), &storefrontpb.ListServicesRequest{})
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if resp.GetTotalCount() != 4 {
		t.Fatalf("expected 4 seeded services, got %d", resp.GetTotalCount())
	}
	if resp.GetServices()[0].GetId() != "svc-1" || resp.GetServices()[3].GetId() != "svc-4" {
		t.Fatalf("catalog out of order: %v", resp.GetServices())
	}
	if len(resp.GetServices()[0].GetOptions()) != 2 {
		t.Fatalf("expected 2 options on svc-1, got %d", len(resp.GetServices()[0].GetOptions()))
	}
}

func TestSaveService_CreateAppends(t *testing.T) {
	c := setupCore(t)
	admin := c.login(t, true)

	resp, err := c.catalog.SaveService(context.Background(), &storefrontpb.SaveServiceRequest{
		ActorUid: admin,
		Service: &storefrontpb.Service{
			Name:        "Mini Session",
			Price:       800000,
			Description: "Gói chụp nhanh 30 phút.",
			Options: []*storefrontpb.ServiceOption{
				{Name: "Thêm 5 ảnh retouch", Price: 200000},
			},
		},
	})
	if err != nil {
		t.Fatalf("save service: %v", err)
	}
	if resp.GetService().GetId() == "" {
		t.Fatalf("expected assigned id")
	}

	list, err := c.catalog.ListServices(context.Background(), &storefrontpb.ListServicesRequest{})
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if list.GetTotalCount() != 5 {
		t.Fatalf("expected 5 services, got %d", list.GetTotalCount())
	}
	last := list.GetServices()[4]
	if last.GetName() != "Mini Session" {
		t.Fatalf("new service must be appended, got %q last", last.GetName())
	}
}

func TestSaveService_UpdateKeepsPosition(t *testing.T) {
	c := setupCore(t)
	admin := c.login(t, true)

	_, err := c.catalog.SaveService(context.Background(), &storefrontpb.SaveServiceRequest{
		ActorUid: admin,
		Service: &storefrontpb.Service{
			Id:          "svc-2",
			Name:        "Concept Fine-art II",
			Price:       4000000,
			Description: "Обновлённое описание",
			Options: []*storefrontpb.ServiceOption{
				{Name: "Thuê trang phục thiết kế", Price: 1200000},
			},
		},
	})
	if err != nil {
		t.Fatalf("save service: %v", err)
	}

	list, err := c.catalog.ListServices(context.Background(), &storefrontpb.ListServicesRequest{})
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	second := list.GetServices()[1]
	if second.GetId() != "svc-2" || second.GetName() != "Concept Fine-art II" {
		t.Fatalf("update must keep catalog position, got %v", second)
	}
	if len(second.GetOptions()) != 1 || second.GetOptions()[0].GetPrice() != 1200000 {
		t.Fatalf("options must be replaced wholesale, got %v", second.GetOptions())
	}
}

func TestDeleteService_RemovesExactlyOne(t *testing.T) {
	c := setupCore(t)
	admin := c.login(t, true)
	ordersBefore := c.orderCount(t)

	_, err := c.catalog.DeleteService(context.Background(), &storefrontpb.DeleteServiceRequest{
		ActorUid: admin,
		Id:       "svc-2",
	})
	if err != nil {
		t.Fatalf("delete service: %v", err)
	}

	list, err := c.catalog.ListServices(context.Background(), &storefrontpb.ListServicesRequest{})
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if list.GetTotalCount() != 3 {
		t.Fatalf("expected 3 services left, got %d", list.GetTotalCount())
	}
	for _, svc := range list.GetServices() {
		if svc.GetId() == "svc-2" {
			t.Fatalf("svc-2 must be gone")
		}
	}

	// Заказы со снимком удалённого пакета остаются.
	if after := c.orderCount(t); after != ordersBefore {
		t.Fatalf("deleting a service must not touch orders: %d -> %d", ordersBefore, after)
	}

	_, err = c.catalog.DeleteService(context.Background(), &storefrontpb.DeleteServiceRequest{
		ActorUid: admin,
		Id:       "svc-2",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound for repeated delete, got %v", err)
	}
}

func TestCatalogMutations_NonAdminDenied(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)

	_, err := c.catalog.SaveService(context.Background(), &storefrontpb.SaveServiceRequest{
		ActorUid: uid,
		Service:  &storefrontpb.Service{Name: "Hack"},
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for save, got %v", err)
	}

	_, err = c.catalog.DeleteService(context.Background(), &storefrontpb.DeleteServiceRequest{
		ActorUid: uid,
		Id:       "svc-1",
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied for delete, got %v", err)
	}

	var n int64
	if err := c.db.Model(&model.Service{}).Count(&n).Error; err != nil {
		t.Fatalf("count services: %v", err)
	}
	if n != 4 {
		t.Fatalf("catalog must be unchanged, got %d services", n)
	}
}
