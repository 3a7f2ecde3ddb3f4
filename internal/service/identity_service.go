package service

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	identitypb "github.com/luxstudio/storefront-core/internal/api/identity/v1"
	"github.com/luxstudio/storefront-core/internal/identity"
	"github.com/luxstudio/storefront-core/internal/model"
	"github.com/luxstudio/storefront-core/internal/repository"
)

// IdentityService оборачивает identity.Provider: логин выдаёт профиль,
// сохраняет его и назначает роль.
type IdentityService struct {
	identitypb.UnimplementedIdentityServiceServer

	provider  identity.Provider
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
}

func NewIdentityService(
	provider identity.Provider,
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
) *IdentityService {
	return &IdentityService{
		provider:  provider,
		userRepo:  userRepo,
		eventRepo: eventRepo,
	}
}

// Login выдаёт демо-профиль (клиент или админ) и фиксирует его в базе.
func (s *IdentityService) Login(ctx context.Context, req *identitypb.LoginRequest) (*identitypb.LoginResponse, error) {
	prof, err := s.provider.Login(ctx, req.GetAsAdmin())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "login: %v", err)
	}

	u, err := s.userRepo.Upsert(ctx, &model.User{
		UID:         prof.UID,
		Email:       prof.Email,
		DisplayName: prof.DisplayName,
		PhotoURL:    prof.PhotoURL,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "upsert user: %v", err)
	}

	if err := s.userRepo.SetRole(ctx, u.UID, string(prof.Role)); err != nil {
		return nil, status.Errorf(codes.Internal, "set role: %v", err)
	}

	// аудит; ошибка записи не валит логин
	_ = s.eventRepo.Create(ctx, &model.Event{
		EventType: model.EventTypeUserLoggedIn,
		UserUID:   u.UID,
		Details:   string(prof.Role),
	})

	return &identitypb.LoginResponse{User: mapUser(u, string(prof.Role))}, nil
}

// GetProfile возвращает сохранённый профиль с ролью.
func (s *IdentityService) GetProfile(ctx context.Context, req *identitypb.GetProfileRequest) (*identitypb.GetProfileResponse, error) {
	if req.GetUid() == "" {
		return nil, status.Error(codes.InvalidArgument, "uid is required")
	}

	u, err := s.userRepo.GetByUID(ctx, req.GetUid())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "user not found: %v", err)
	}
	roleCode, _ := s.userRepo.GetRole(ctx, u.UID) // роль может отсутствовать; игнорируем ошибку

	return &identitypb.GetProfileResponse{User: mapUser(u, roleCode)}, nil
}

func mapUser(u *model.User, roleCode string) *identitypb.User {
	if u == nil {
		return nil
	}
	return &identitypb.User{
		Uid:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoUrl:    u.PhotoURL,
		RoleCode:    roleCode,
	}
}
