package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"nova_estates/internal/auth"
	"nova_estates/internal/domain"
)

// Seed identity for the admin panel. The plaintext is echoed exactly once,
// when the account is first created.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedAdminPassword = "admin123"
	SeedAdminName     = "Admin"
)

// CommandService owns the write paths plus admin auth.
type CommandService struct {
	repo   domain.Repository
	tokens *auth.Tokens
}

func NewCommandService(r domain.Repository, t *auth.Tokens) *CommandService {
	return &CommandService{repo: r, tokens: t}
}

func (s *CommandService) CreateProperty(ctx context.Context, p domain.Property) (domain.Property, error) {
	p.ApplyDefaults()
	if err := domain.Validate(&p); err != nil {
		return domain.Property{}, err
	}
	now := time.Now().UTC()
	p.ListedAt = &now
	return s.repo.InsertProperty(ctx, p)
}

func (s *CommandService) PatchProperty(ctx context.Context, id string, p domain.PropertyPatch) (domain.Property, error) {
	if err := domain.Validate(&p); err != nil {
		return domain.Property{}, err
	}
	return s.repo.PatchProperty(ctx, id, p)
}

func (s *CommandService) DeleteProperty(ctx context.Context, id string) error {
	return s.repo.DeleteProperty(ctx, id)
}

func (s *CommandService) CreateOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	o.ApplyDefaults()
	if err := domain.Validate(&o); err != nil {
		return domain.Offer{}, err
	}
	return s.repo.InsertOffer(ctx, o)
}

func (s *CommandService) PatchOffer(ctx context.Context, id string, p domain.OfferPatch) (domain.Offer, error) {
	if err := domain.Validate(&p); err != nil {
		return domain.Offer{}, err
	}
	return s.repo.PatchOffer(ctx, id, p)
}

// PatchSettings merge-updates the singleton, creating it from the patch
// when no settings document exists yet.
func (s *CommandService) PatchSettings(ctx context.Context, p domain.SettingsPatch) (domain.SiteSettings, error) {
	if err := domain.Validate(&p); err != nil {
		return domain.SiteSettings{}, err
	}
	return s.repo.PatchSettings(ctx, p)
}

type SeedResult struct {
	Created  bool
	Email    string
	Password string
}

// SeedAdmin is idempotent: the upsert is keyed on the well-known email, so
// calling it any number of times leaves exactly one admin document.
func (s *CommandService) SeedAdmin(ctx context.Context) (SeedResult, error) {
	hash, err := auth.HashPassword(SeedAdminPassword)
	if err != nil {
		return SeedResult{}, err
	}
	name := SeedAdminName
	created, err := s.repo.SeedAdmin(ctx, domain.AdminUser{
		Email:        SeedAdminEmail,
		PasswordHash: hash,
		Name:         &name,
		IsActive:     true,
	})
	if err != nil {
		return SeedResult{}, err
	}
	if created {
		log.Info().Str("email", SeedAdminEmail).Msg("admin seeded")
		return SeedResult{Created: true, Email: SeedAdminEmail, Password: SeedAdminPassword}, nil
	}
	return SeedResult{Created: false}, nil
}

type LoginResult struct {
	Token string  `json:"token"`
	Name  *string `json:"name"`
}

// Login verifies the password against the stored hash and mints a token.
// Unknown email, inactive account and wrong password all come back as
// domain.ErrInvalidCredentials.
func (s *CommandService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LoginResult{}, domain.ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if !admin.IsActive || !auth.VerifyPassword(password, admin.PasswordHash) {
		return LoginResult{}, domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(admin.ID.Hex(), admin.Email)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Name: admin.Name}, nil
}
