package service

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	storefrontpb "github.com/luxstudio/storefront-core/internal/api/storefront/v1"
	"github.com/luxstudio/storefront-core/internal/model"
	"github.com/luxstudio/storefront-core/internal/repository"
)

// CatalogService — CRUD по пакетам съёмки. Мутации только для админа.
type CatalogService struct {
	storefrontpb.UnimplementedCatalogServiceServer

	serviceRepo repository.ServiceRepository
	userRepo    repository.UserRepository
	eventRepo   repository.EventRepository
}

func NewCatalogService(
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		eventRepo:   eventRepo,
	}
}

func (s *CatalogService) ListServices(ctx context.Context, req *storefrontpb.ListServicesRequest) (*storefrontpb.ListServicesResponse, error) {
	limit, offset := pageToOffset(req.GetPage(), req.GetPageSize())

	services, total, err := s.serviceRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list services: %v", err)
	}

	resp := &storefrontpb.ListServicesResponse{
		Services:   make([]*storefrontpb.Service, 0, len(services)),
		TotalCount: int32(total),
	}
	for i := range services {
		resp.Services = append(resp.Services, mapService(&services[i]))
	}
	return resp, nil
}

// SaveService создаёт пакет (пустой id) или заменяет существующий по id.
// Пакет с незнакомым id добавляется в конец каталога, как и раньше.
func (s *CatalogService) SaveService(ctx context.Context, req *storefrontpb.SaveServiceRequest) (*storefrontpb.SaveServiceResponse, error) {
	if err := requireAdmin(ctx, s.userRepo, req.GetActorUid()); err != nil {
		return nil, err
	}

	in := req.GetService()
	if in.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "service name is required")
	}

	svc := &model.Service{
		ID:          in.GetId(),
		Name:        in.GetName(),
		Price:       in.GetPrice(),
		Description: in.GetDescription(),
		Options:     make([]model.ServiceOption, 0, len(in.GetOptions())),
	}
	for i, opt := range in.GetOptions() {
		svc.Options = append(svc.Options, model.ServiceOption{
			Name:     opt.GetName(),
			Price:    opt.GetPrice(),
			Position: i + 1,
		})
	}

	created := false
	if svc.ID == "" {
		svc.ID = model.NewServiceID()
		created = true
		if err := s.serviceRepo.Create(ctx, svc); err != nil {
			return nil, status.Errorf(codes.Internal, "create service: %v", err)
		}
	} else if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Errorf(codes.Internal, "update service: %v", err)
		}
		created = true
		if err := s.serviceRepo.Create(ctx, svc); err != nil {
			return nil, status.Errorf(codes.Internal, "create service: %v", err)
		}
	}

	details := "updated"
	if created {
		details = "created"
	}
	_ = s.eventRepo.Create(ctx, &model.Event{
		EventType: model.EventTypeServiceSaved,
		UserUID:   req.GetActorUid(),
		Details:   details + ": " + svc.ID,
	})

	out, err := s.serviceRepo.GetByID(ctx, svc.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reload service: %v", err)
	}
	return &storefrontpb.SaveServiceResponse{Service: mapService(out)}, nil
}

// DeleteService удаляет ровно один пакет по id. Заказы со снимком этого
// пакета не трогаются.
func (s *CatalogService) DeleteService(ctx context.Context, req *storefrontpb.DeleteServiceRequest) (*storefrontpb.DeleteServiceResponse, error) {
	if err := requireAdmin(ctx, s.userRepo, req.GetActorUid()); err != nil {
		return nil, err
	}
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	if err := s.serviceRepo.Delete(ctx, req.GetId()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Errorf(codes.NotFound, "service %s not found", req.GetId())
		}
		return nil, status.Errorf(codes.Internal, "delete service: %v", err)
	}

	_ = s.eventRepo.Create(ctx, &model.Event{
		EventType: model.EventTypeServiceDeleted,
		UserUID:   req.GetActorUid(),
		Details:   req.GetId(),
	})

	return &storefrontpb.DeleteServiceResponse{}, nil
}
