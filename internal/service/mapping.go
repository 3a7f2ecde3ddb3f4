package service

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/gorm"

	storefrontpb "github.com/luxstudio/storefront-core/internal/api/storefront/v1"
	"github.com/luxstudio/storefront-core/internal/model"
	"github.com/luxstudio/storefront-core/internal/repository"
)

func mapService(s *model.Service) *storefrontpb.Service {
	if s == nil {
		return nil
	}
	out := &storefrontpb.Service{
		Id:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
		Options:     make([]*storefrontpb.ServiceOption, 0, len(s.Options)),
	}
	for _, opt := range s.Options {
		out.Options = append(out.Options, &storefrontpb.ServiceOption{
			Name:  opt.Name,
			Price: opt.Price,
		})
	}
	return out
}

func mapOrder(o *model.Order) (*storefrontpb.Order, error) {
	if o == nil {
		return nil, nil
	}
	opts, err := o.OptionList()
	if err != nil {
		return nil, err
	}

	out := &storefrontpb.Order{
		Id:           o.ID,
		Uid:          o.UID,
		Email:        o.Email,
		Phone:        o.Phone,
		Date:         o.ShootDate,
		Time:         o.ShootTime,
		Location:     o.Location,
		ServiceName:  o.ServiceName,
		Options:      make([]*storefrontpb.ServiceOption, 0, len(opts)),
		Total:        o.Total,
		Status:       mapOrderStatus(o.Status),
		StatusLabel:  o.Status.Label(),
		CreatedAt:    timestamppb.New(o.CreatedAt),
		DeliveryLink: o.DeliveryLink,
		DeliveryPass: o.DeliveryPass,
	}
	for _, opt := range opts {
		out.Options = append(out.Options, &storefrontpb.ServiceOption{
			Name:  opt.Name,
			Price: opt.Price,
		})
	}
	return out, nil
}

func mapOrderStatus(s model.OrderStatus) storefrontpb.OrderStatus {
	switch s {
	case model.OrderStatusPending:
		return storefrontpb.OrderStatus_ORDER_STATUS_PENDING
	case model.OrderStatusDeposited:
		return storefrontpb.OrderStatus_ORDER_STATUS_DEPOSITED
	case model.OrderStatusCompleted:
		return storefrontpb.OrderStatus_ORDER_STATUS_COMPLETED
	case model.OrderStatusCancelled:
		return storefrontpb.OrderStatus_ORDER_STATUS_CANCELLED
	default:
		return storefrontpb.OrderStatus_ORDER_STATUS_UNSPECIFIED
	}
}

func parseOrderStatus(s storefrontpb.OrderStatus) (model.OrderStatus, bool) {
	switch s {
	case storefrontpb.OrderStatus_ORDER_STATUS_PENDING:
		return model.OrderStatusPending, true
	case storefrontpb.OrderStatus_ORDER_STATUS_DEPOSITED:
		return model.OrderStatusDeposited, true
	case storefrontpb.OrderStatus_ORDER_STATUS_COMPLETED:
		return model.OrderStatusCompleted, true
	case storefrontpb.OrderStatus_ORDER_STATUS_CANCELLED:
		return model.OrderStatusCancelled, true
	default:
		return "", false
	}
}

// requireAdmin resolves the actor's role. Admin-only mutations behind this
// check leave state untouched for everyone else.
func requireAdmin(ctx context.Context, users repository.UserRepository, actorUID string) error {
	if actorUID == "" {
		return status.Error(codes.Unauthenticated, "actor_uid is required")
	}
	role, err := users.GetRole(ctx, actorUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status.Error(codes.PermissionDenied, "admin role required")
		}
		return status.Errorf(codes.Internal, "resolve role: %v", err)
	}
	if role != model.RoleCodeAdmin {
		return status.Error(codes.PermissionDenied, "admin role required")
	}
	return nil
}

// pageToOffset: страницы нумеруются с 1, как в остальных сервисах ядра.
func pageToOffset(page, size int32) (limit, offset int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	return int(size), (int(page) - 1) * int(size)
}
