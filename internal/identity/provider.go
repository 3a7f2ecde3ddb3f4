// Package identity is the authentication boundary of the storefront core.
// A Provider turns a login attempt into a verified profile with a role;
// booking and catalog logic only ever sees the result.
package identity

import "context"

type RoleCode string

const (
	RoleAnonymous RoleCode = "anonymous"
	RoleClient    RoleCode = "client"
	RoleAdmin     RoleCode = "admin"
)

// Profile is what a successful login yields.
type Profile struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	Role        RoleCode
}

type Provider interface {
	// Login resolves a login attempt into a profile. Credentials are
	// provider-specific; the dev provider takes none.
	Login(ctx context.Context, asAdmin bool) (*Profile, error)
}

// DevProvider hands out the two fixed demo identities. No credentials are
// checked; this is the storefront's stand-in for a real IdP.
type DevProvider struct {
	client Profile
	admin  Profile
}

func NewDevProvider(adminEmail string) *DevProvider {
	return &DevProvider{
		client: Profile{
			UID:         "user-123",
			Email:       "client@example.com",
			DisplayName: "Guest User",
			PhotoURL:    "https://picsum.photos/100",
			Role:        RoleClient,
		},
		admin: Profile{
			UID:         "VYIs9XHLR9RMStwtcdwMrOIo33w1",
			Email:       adminEmail,
			DisplayName: "Lux Studio Admin",
			PhotoURL:    "https://picsum.photos/101",
			Role:        RoleAdmin,
		},
	}
}

func (p *DevProvider) Login(_ context.Context, asAdmin bool) (*Profile, error) {
	if asAdmin {
		prof := p.admin
		return &prof, nil
	}
	prof := p.client
	return &prof, nil
}
