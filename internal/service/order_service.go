package service

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	storefrontpb "github.com/luxstudio/storefront-core/internal/api/storefront/v1"
	"github.com/luxstudio/storefront-core/internal/model"
	"github.com/luxstudio/storefront-core/internal/repository"
	"github.com/luxstudio/storefront-core/internal/storefront"
)

// OrderService ведёт заказы от бронирования до выдачи.
type OrderService struct {
	storefrontpb.UnimplementedOrderServiceServer

	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
	userRepo    repository.UserRepository
	eventRepo   repository.EventRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		eventRepo:   eventRepo,
	}
}

// SubmitBooking создаёт заказ в статусе pending. Имя пакета, выбранные
// опции и итоговая цена снимаются с каталога в момент вызова и больше не
// пересчитываются.
func (s *OrderService) SubmitBooking(ctx context.Context, req *storefrontpb.SubmitBookingRequest) (*storefrontpb.SubmitBookingResponse, error) {
	if req.GetUid() == "" {
		return nil, status.Error(codes.Unauthenticated, "login required to book")
	}
	user, err := s.userRepo.GetByUID(ctx, req.GetUid())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.Unauthenticated, "login required to book")
		}
		return nil, status.Errorf(codes.Internal, "load user: %v", err)
	}

	form := storefront.BookingForm{
		Date:     req.GetDate(),
		Time:     req.GetTime(),
		Location: req.GetLocation(),
		Phone:    req.GetPhone(),
	}
	if err := form.Normalize(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if req.GetServiceId() == "" {
		return nil, status.Error(codes.InvalidArgument, "service_id is required")
	}
	svc, err := s.serviceRepo.GetByID(ctx, req.GetServiceId())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Errorf(codes.NotFound, "service %s not found", req.GetServiceId())
		}
		return nil, status.Errorf(codes.Internal, "load service: %v", err)
	}

	quote, err := storefront.BuildQuote(svc, req.GetOptionNames())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	order := &model.Order{
		ID:          model.NewOrderID(),
		UID:         user.UID,
		Email:       user.Email,
		Phone:       form.Phone,
		ShootDate:   form.Date,
		ShootTime:   form.Time,
		Location:    form.Location,
		ServiceName: quote.ServiceName,
		Total:       quote.Total,
		Status:      model.OrderStatusPending,
	}
	if err := order.SetOptions(quote.Options); err != nil {
		return nil, status.Errorf(codes.Internal, "encode options: %v", err)
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, status.Errorf(codes.Internal, "create order: %v", err)
	}

	_ = s.eventRepo.Create(ctx, &model.Event{
		EventType: model.EventTypeOrderCreated,
		UserUID:   user.UID,
		OrderID:   order.ID,
		Details:   quote.ServiceName,
	})

	pb, err := mapOrder(order)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "map order: %v", err)
	}
	return &storefrontpb.SubmitBookingResponse{Order: pb}, nil
}

// ListOrders — все заказы, свежие первыми, с поиском и фильтром. Админ.
func (s *OrderService) ListOrders(ctx context.Context, req *storefrontpb.ListOrdersRequest) (*storefrontpb.ListOrdersResponse, error) {
	if err := requireAdmin(ctx, s.userRepo, req.GetActorUid()); err != nil {
		return nil, err
	}

	var filter model.OrderStatus
	if req.GetStatus() != storefrontpb.OrderStatus_ORDER_STATUS_UNSPECIFIED {
		st, ok := parseOrderStatus(req.GetStatus())
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "unknown status filter")
		}
		filter = st
	}

	limit, offset := pageToOffset(req.GetPage(), req.GetPageSize())
	orders, total, err := s.orderRepo.List(ctx, req.GetSearch(), filter, limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list orders: %v", err)
	}

	resp := &storefrontpb.ListOrdersResponse{
		Orders:     make([]*storefrontpb.Order, 0, len(orders)),
		TotalCount: int32(total),
	}
	for i := range orders {
		pb, err := mapOrder(&orders[i])
		if err != nil {
			return nil, status.Errorf(codes.Internal, "map order: %v", err)
		}
		resp.Orders = append(resp.Orders, pb)
	}
	return resp, nil
}

// ListMyOrders — заказы одного клиента, свежие первыми.
func (s *OrderService) ListMyOrders(ctx context.Context, req *storefrontpb.ListMyOrdersRequest) (*storefrontpb.ListMyOrdersResponse, error) {
	if req.GetUid() == "" {
		return nil, status.Error(codes.Unauthenticated, "uid is required")
	}

	limit, offset := pageToOffset(req.GetPage(), req.GetPageSize())
	orders, total, err := s.orderRepo.ListByUser(ctx, req.GetUid(), limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list orders: %v", err)
	}

	resp := &storefrontpb.ListMyOrdersResponse{
		Orders:     make([]*storefrontpb.Order, 0, len(orders)),
		TotalCount: int32(total),
	}
	for i := range orders {
		pb, err := mapOrder(&orders[i])
		if err != nil {
			return nil, status.Errorf(codes.Internal, "map order: %v", err)
		}
		resp.Orders = append(resp.Orders, pb)
	}
	return resp, nil
}

// UpdateOrderStatus двигает заказ по таблице переходов. Подтверждающий
// переход (deposited/completed) на занятый слот требует confirm_conflict;
// конфликтующий заказ при этом не отменяется — оба остаются в силе.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, req *storefrontpb.UpdateOrderStatusRequest) (*storefrontpb.UpdateOrderStatusResponse, error) {
	if err := requireAdmin(ctx, s.userRepo, req.GetActorUid()); err != nil {
		return nil, err
	}
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	target, ok := parseOrderStatus(req.GetStatus())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "status is required")
	}

	order, err := s.orderRepo.GetByID(ctx, req.GetOrderId())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Errorf(codes.NotFound, "order %s not found", req.GetOrderId())
		}
		return nil, status.Errorf(codes.Internal, "load order: %v", err)
	}

	if err := storefront.CheckTransition(order.Status, target); err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}

	if storefront.RequiresConflictCheck(target) {
		conflicts, err := s.orderRepo.FindConflicts(ctx, order.ID, order.ShootDate, order.ShootTime, order.Location)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "conflict check: %v", err)
		}
		if len(conflicts) > 0 && !req.GetConfirmConflict() {
			return nil, status.Error(codes.FailedPrecondition, fmt.Sprintf(
				"slot %s %s at %s is already held by order %s; set confirm_conflict to proceed",
				order.ShootDate, order.ShootTime, order.Location, conflicts[0].ID,
			))
		}
	}

	if target != order.Status {
		if err := s.orderRepo.UpdateStatus(ctx, order.ID, target); err != nil {
			return nil, status.Errorf(codes.Internal, "update status: %v", err)
		}
		_ = s.eventRepo.Create(ctx, &model.Event{
			EventType: model.EventTypeOrderStatus,
			UserUID:   req.GetActorUid(),
			OrderID:   order.ID,
			Details:   string(order.Status) + " -> " + string(target),
		})
		order.Status = target
	}

	pb, err := mapOrder(order)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "map order: %v", err)
	}
	return &storefrontpb.UpdateOrderStatusResponse{Order: pb}, nil
}

// DeliverOrder записывает ссылку на галерею и пароль и безусловно
// переводит заказ в completed, из любого статуса.
func (s *OrderService) DeliverOrder(ctx context.Context, req *storefrontpb.DeliverOrderRequest) (*storefrontpb.DeliverOrderResponse, error) {
	if err := requireAdmin(ctx, s.userRepo, req.GetActorUid()); err != nil {
		return nil, err
	}
	if req.GetOrderId() == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.orderRepo.GetByID(ctx, req.GetOrderId())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Errorf(codes.NotFound, "order %s not found", req.GetOrderId())
		}
		return nil, status.Errorf(codes.Internal, "load order: %v", err)
	}

	if err := s.orderRepo.SetDelivery(ctx, order.ID, req.GetDeliveryLink(), req.GetDeliveryPass()); err != nil {
		return nil, status.Errorf(codes.Internal, "set delivery: %v", err)
	}

	_ = s.eventRepo.Create(ctx, &model.Event{
		EventType: model.EventTypeOrderDelivered,
		UserUID:   req.GetActorUid(),
		OrderID:   order.ID,
	})

	order.Status = model.OrderStatusCompleted
	order.DeliveryLink = req.GetDeliveryLink()
	order.DeliveryPass = req.GetDeliveryPass()

	pb, err := mapOrder(order)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "map order: %v", err)
	}
	return &storefrontpb.DeliverOrderResponse{Order: pb}, nil
}

// GetSchedule — подтверждённые заказы на дату, по времени. Админ.
func (s *OrderService) GetSchedule(ctx context.Context, req *storefrontpb.GetScheduleRequest) (*storefrontpb.GetScheduleResponse, error) {
	if err := requireAdmin(ctx, s.userRepo, req.GetActorUid()); err != nil {
		return nil, err
	}
	if req.GetDate() == "" {
		return nil, status.Error(codes.InvalidArgument, "date is required")
	}

	orders, err := s.orderRepo.ListConfirmedByDate(ctx, req.GetDate())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list schedule: %v", err)
	}

	page := storefront.Paginate(orders, int(req.GetPage()), int(req.GetPageSize()))

	resp := &storefrontpb.GetScheduleResponse{
		Orders:     make([]*storefrontpb.Order, 0, len(page.Items)),
		TotalCount: int32(page.Total),
	}
	for i := range page.Items {
		pb, err := mapOrder(&page.Items[i])
		if err != nil {
			return nil, status.Errorf(codes.Internal, "map order: %v", err)
		}
		resp.Orders = append(resp.Orders, pb)
	}
	return resp, nil
}

// GetDashboardStats — карточки дашборда. Админ.
func (s *OrderService) GetDashboardStats(ctx context.Context, req *storefrontpb.GetDashboardStatsRequest) (*storefrontpb.GetDashboardStatsResponse, error) {
	if err := requireAdmin(ctx, s.userRepo, req.GetActorUid()); err != nil {
		return nil, err
	}

	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "count orders: %v", err)
	}

	sum := storefront.Summarize(counts.Total, counts.Pending, counts.Deposited, counts.Completed, counts.Cancelled)
	return &storefrontpb.GetDashboardStatsResponse{
		Total:          sum.Total,
		Pending:        sum.Pending,
		Deposited:      sum.Deposited,
		Completed:      sum.Completed,
		Cancelled:      sum.Cancelled,
		CompletionRate: sum.CompletionRate,
	}, nil
}
