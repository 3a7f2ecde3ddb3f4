package service

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	identitypb "github.com/luxstudio/storefront-core/internal/api/identity/v1"
	"github.com/luxstudio/storefront-core/internal/model"
)

func TestLogin_ClientProfile(t *testing.T) {
	c := setupCore(t)

	resp, err := c.identity.Login(context.Background(), &identitypb.LoginRequest{})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	u := resp.GetUser()
	if u.GetUid() != "user-123" {
		t.Fatalf("expected demo client uid, got %q", u.GetUid())
	}
	if u.GetRoleCode() != model.RoleCodeClient {
		t.Fatalf("expected client role, got %q", u.GetRoleCode())
	}
}

func TestLogin_AdminProfile(t *testing.T) {
	c := setupCore(t)

	resp, err := c.identity.Login(context.Background(), &identitypb.LoginRequest{AsAdmin: true})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	u := resp.GetUser()
	if u.GetEmail() != model.AdminEmail {
		t.Fatalf("expected admin email, got %q", u.GetEmail())
	}
	if u.GetRoleCode() != model.RoleCodeAdmin {
		t.Fatalf("expected admin role, got %q", u.GetRoleCode())
	}

	prof, err := c.identity.GetProfile(context.Background(), &identitypb.GetProfileRequest{Uid: u.GetUid()})
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if prof.GetUser().GetRoleCode() != model.RoleCodeAdmin {
		t.Fatalf("profile must carry the admin role, got %q", prof.GetUser().GetRoleCode())
	}
}

func TestLogin_IsRepeatable(t *testing.T) {
	c := setupCore(t)

	// Сид уже создал user-123; повторные логины не плодят дубликатов.
	for i := 0; i < 2; i++ {
		if _, err := c.identity.Login(context.Background(), &identitypb.LoginRequest{}); err != nil {
			t.Fatalf("login %d: %v", i, err)
		}
	}

	var n int64
	if err := c.db.Model(&model.User{}).Where("uid = ?", "user-123").Count(&n).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected a single user row, got %d", n)
	}
}

func TestGetProfile_Unknown(t *testing.T) {
	c := setupCore(t)

	_, err := c.identity.GetProfile(context.Background(), &identitypb.GetProfileRequest{Uid: "ghost"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	_, err = c.identity.GetProfile(context.Background(), &identitypb.GetProfileRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for empty uid, got %v", err)
	}
}
