package service

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	storefrontpb "github.com/luxstudio/storefront-core/internal/api/storefront/v1"
	"github.com/luxstudio/storefront-core/internal/model"
)

func TestSubmitBooking_SnapshotsPriceAndOptions(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)

	resp, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
		Uid:         uid,
		ServiceId:   "svc-1",
		OptionNames: []string{"Make up chuyên nghiệp"},
		Date:        "2025-03-10",
		Time:        "14:00",
		Location:    "Studio Quận 3",
		Phone:       "0912345678",
	})
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}

	order := resp.GetOrder()
	if order.GetTotal() != 1800000 {
		t.Fatalf("expected total 1800000, got %d", order.GetTotal())
	}
	if order.GetStatus() != storefrontpb.OrderStatus_ORDER_STATUS_PENDING {
		t.Fatalf("expected pending, got %v", order.GetStatus())
	}
	if order.GetServiceName() != "Standard Portrait" {
		t.Fatalf("unexpected service name %q", order.GetServiceName())
	}
	if len(order.GetOptions()) != 1 || order.GetOptions()[0].GetPrice() != 300000 {
		t.Fatalf("unexpected options snapshot: %v", order.GetOptions())
	}

	// Правка каталога не должна трогать уже созданный заказ.
	admin := c.login(t, true)
	_, err = c.catalog.SaveService(context.Background(), &storefrontpb.SaveServiceRequest{
		ActorUid: admin,
		Service: &storefrontpb.Service{
			Id:    "svc-1",
			Name:  "Standard Portrait",
			Price: 9000000,
		},
	})
	if err != nil {
		t.Fatalf("save service: %v", err)
	}

	var stored model.Order
	if err := c.db.First(&stored, "id = ?", order.GetId()).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if stored.Total != 1800000 {
		t.Fatalf("expected stored total 1800000 after catalog edit, got %d", stored.Total)
	}
}

func TestSubmitBooking_MissingFieldsCreateNothing(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)
	before := c.orderCount(t)

	cases := []*storefrontpb.SubmitBookingRequest{
		{Uid: uid, ServiceId: "svc-1", Time: "10:00", Location: "Studio", Phone: "0901"},      // no date
		{Uid: uid, ServiceId: "svc-1", Date: "2025-01-01", Time: "10:00", Phone: "0901"},      // no location
		{Uid: uid, ServiceId: "svc-1", Date: "2025-01-01", Time: "10:00", Location: "Studio"}, // no phone
	}
	for i, req := range cases {
		_, err := c.orders.SubmitBooking(context.Background(), req)
		if status.Code(err) != codes.InvalidArgument {
			t.Errorf("case %d: expected InvalidArgument, got %v", i, err)
		}
	}

	if after := c.orderCount(t); after != before {
		t.Fatalf("rejected bookings must not create orders: %d -> %d", before, after)
	}
}

func TestSubmitBooking_RequiresLogin(t *testing.T) {
	c := setupCore(t)

	for _, uid := range []string{"", "nobody-999"} {
		_, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
			Uid:       uid,
			ServiceId: "svc-1",
			Date:      "2025-01-01",
			Location:  "Studio",
			Phone:     "0901",
		})
		if status.Code(err) != codes.Unauthenticated {
			t.Errorf("uid %q: expected Unauthenticated, got %v", uid, err)
		}
	}
}

func TestSubmitBooking_NewOrderIsFirst(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)
	admin := c.login(t, true)

	resp, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
		Uid:       uid,
		ServiceId: "svc-3",
		Date:      "2025-06-01",
		Location:  "Hồ Tây",
		Phone:     "0987654321",
	})
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}

	list, err := c.orders.ListOrders(context.Background(), &storefrontpb.ListOrdersRequest{ActorUid: admin})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(list.GetOrders()) < 2 {
		t.Fatalf("expected seeded order plus the new one, got %d", len(list.GetOrders()))
	}
	if list.GetOrders()[0].GetId() != resp.GetOrder().GetId() {
		t.Fatalf("expected the new order first, got %s", list.GetOrders()[0].GetId())
	}
}

func TestUpdateOrderStatus_ConflictNeedsConfirmation(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)
	admin := c.login(t, true)

	// Тот же слот, что у сид-заказа ord-1 (deposited).
	resp, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
		Uid:       uid,
		ServiceId: "svc-1",
		Date:      "2024-12-25",
		Time:      "09:00",
		Location:  "Studio Quận 1",
		Phone:     "0901111222",
	})
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}
	orderID := resp.GetOrder().GetId()

	// Без подтверждения — отказ, статус не меняется.
	_, err = c.orders.UpdateOrderStatus(context.Background(), &storefrontpb.UpdateOrderStatusRequest{
		ActorUid: admin,
		OrderId:  orderID,
		Status:   storefrontpb.OrderStatus_ORDER_STATUS_DEPOSITED,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
	if got := c.orderStatus(t, orderID); got != model.OrderStatusPending {
		t.Fatalf("declined conflict must leave status pending, got %s", got)
	}

	// С подтверждением — проходит, конфликтующий заказ не трогается.
	_, err = c.orders.UpdateOrderStatus(context.Background(), &storefrontpb.UpdateOrderStatusRequest{
		ActorUid:        admin,
		OrderId:         orderID,
		Status:          storefrontpb.OrderStatus_ORDER_STATUS_DEPOSITED,
		ConfirmConflict: true,
	})
	if err != nil {
		t.Fatalf("confirmed update: %v", err)
	}
	if got := c.orderStatus(t, orderID); got != model.OrderStatusDeposited {
		t.Fatalf("expected deposited, got %s", got)
	}
	if got := c.orderStatus(t, "ord-1"); got != model.OrderStatusDeposited {
		t.Fatalf("conflicting order must stay deposited, got %s", got)
	}
}

func TestUpdateOrderStatus_NoConflictNoConfirmationNeeded(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)
	admin := c.login(t, true)

	resp, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
		Uid:       uid,
		ServiceId: "svc-2",
		Date:      "2025-02-02",
		Time:      "15:00",
		Location:  "Studio Quận 7",
		Phone:     "0903333444",
	})
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}

	_, err = c.orders.UpdateOrderStatus(context.Background(), &storefrontpb.UpdateOrderStatusRequest{
		ActorUid: admin,
		OrderId:  resp.GetOrder().GetId(),
		Status:   storefrontpb.OrderStatus_ORDER_STATUS_DEPOSITED,
	})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if got := c.orderStatus(t, resp.GetOrder().GetId()); got != model.OrderStatusDeposited {
		t.Fatalf("expected deposited, got %s", got)
	}
}

func TestUpdateOrderStatus_RejectsBackwardTransition(t *testing.T) {
	c := setupCore(t)
	admin := c.login(t, true)

	// ord-1 — deposited; назад в pending нельзя.
	_, err := c.orders.UpdateOrderStatus(context.Background(), &storefrontpb.UpdateOrderStatusRequest{
		ActorUid: admin,
		OrderId:  "ord-1",
		Status:   storefrontpb.OrderStatus_ORDER_STATUS_PENDING,
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
	if got := c.orderStatus(t, "ord-1"); got != model.OrderStatusDeposited {
		t.Fatalf("status must be unchanged, got %s", got)
	}
}

func TestUpdateOrderStatus_NonAdminDenied(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)

	_, err := c.orders.UpdateOrderStatus(context.Background(), &storefrontpb.UpdateOrderStatusRequest{
		ActorUid: uid,
		OrderId:  "ord-1",
		Status:   storefrontpb.OrderStatus_ORDER_STATUS_CANCELLED,
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if got := c.orderStatus(t, "ord-1"); got != model.OrderStatusDeposited {
		t.Fatalf("non-admin attempt must not change state, got %s", got)
	}
}

func TestDeliverOrder_ForcesCompleted(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)
	admin := c.login(t, true)

	// Доставка работает из любого статуса, даже из pending.
	resp, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
		Uid:       uid,
		ServiceId: "svc-4",
		Date:      "2025-04-04",
		Location:  "Studio Quận 1",
		Phone:     "0905555666",
	})
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}

	out, err := c.orders.DeliverOrder(context.Background(), &storefrontpb.DeliverOrderRequest{
		ActorUid:     admin,
		OrderId:      resp.GetOrder().GetId(),
		DeliveryLink: "https://drive.google.com/abc",
		DeliveryPass: "lux2025",
	})
	if err != nil {
		t.Fatalf("deliver order: %v", err)
	}
	if out.GetOrder().GetStatus() != storefrontpb.OrderStatus_ORDER_STATUS_COMPLETED {
		t.Fatalf("expected completed, got %v", out.GetOrder().GetStatus())
	}

	var stored model.Order
	if err := c.db.First(&stored, "id = ?", resp.GetOrder().GetId()).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if stored.Status != model.OrderStatusCompleted {
		t.Fatalf("expected stored completed, got %s", stored.Status)
	}
	if stored.DeliveryLink != "https://drive.google.com/abc" || stored.DeliveryPass != "lux2025" {
		t.Fatalf("delivery data not stored: %q %q", stored.DeliveryLink, stored.DeliveryPass)
	}
}

func TestDeliverOrder_NonAdminDenied(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)

	_, err := c.orders.DeliverOrder(context.Background(), &storefrontpb.DeliverOrderRequest{
		ActorUid:     uid,
		OrderId:      "ord-1",
		DeliveryLink: "https://example.com",
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}

	var stored model.Order
	if err := c.db.First(&stored, "id = ?", "ord-1").Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if stored.Status != model.OrderStatusDeposited || stored.DeliveryLink != "" {
		t.Fatalf("non-admin delivery must not change state: %s %q", stored.Status, stored.DeliveryLink)
	}
}

func TestListOrders_SearchAndFilter(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)
	admin := c.login(t, true)

	_, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
		Uid:       uid,
		ServiceId: "svc-2",
		Date:      "2025-05-05",
		Location:  "Đà Lạt",
		Phone:     "0907777888",
	})
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}

	byLocation, err := c.orders.ListOrders(context.Background(), &storefrontpb.ListOrdersRequest{
		ActorUid: admin,
		Search:   "Đà Lạt",
	})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if byLocation.GetTotalCount() != 1 {
		t.Fatalf("expected 1 match by location, got %d", byLocation.GetTotalCount())
	}

	deposited, err := c.orders.ListOrders(context.Background(), &storefrontpb.ListOrdersRequest{
		ActorUid: admin,
		Status:   storefrontpb.OrderStatus_ORDER_STATUS_DEPOSITED,
	})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if deposited.GetTotalCount() != 1 || deposited.GetOrders()[0].GetId() != "ord-1" {
		t.Fatalf("expected only seeded deposited order, got %v", deposited.GetOrders())
	}
}

func TestGetSchedule_ConfirmedOnly(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)
	admin := c.login(t, true)

	// pending-заказ на ту же дату в расписание не попадает
	_, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
		Uid:       uid,
		ServiceId: "svc-1",
		Date:      "2024-12-25",
		Time:      "16:00",
		Location:  "Studio Quận 1",
		Phone:     "0909999000",
	})
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}

	resp, err := c.orders.GetSchedule(context.Background(), &storefrontpb.GetScheduleRequest{
		ActorUid: admin,
		Date:     "2024-12-25",
	})
	if err != nil {
		t.Fatalf("get schedule: %v", err)
	}
	if len(resp.GetOrders()) != 1 || resp.GetOrders()[0].GetId() != "ord-1" {
		t.Fatalf("expected only the confirmed seeded order, got %v", resp.GetOrders())
	}
}

func TestGetDashboardStats(t *testing.T) {
	c := setupCore(t)
	uid := c.login(t, false)
	admin := c.login(t, true)

	_, err := c.orders.SubmitBooking(context.Background(), &storefrontpb.SubmitBookingRequest{
		Uid:       uid,
		ServiceId: "svc-1",
		Date:      "2025-07-07",
		Location:  "Studio Quận 1",
		Phone:     "0901212121",
	})
	if err != nil {
		t.Fatalf("submit booking: %v", err)
	}

	stats, err := c.orders.GetDashboardStats(context.Background(), &storefrontpb.GetDashboardStatsRequest{ActorUid: admin})
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.GetTotal() != 2 || stats.GetPending() != 1 || stats.GetDeposited() != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.GetCompletionRate() != 0 {
		t.Fatalf("expected 0%% completion, got %v", stats.GetCompletionRate())
	}
}
