package domain

import "context"

// Repository is the document-store port. One implementation talks to
// MongoDB; tests use in-memory fakes.
type Repository interface {
	// Properties
	InsertProperty(ctx context.Context, p Property) (Property, error)
	ListProperties(ctx context.Context, f PropertyFilter) ([]Property, error)
	GetProperty(ctx context.Context, id string) (Property, error)
	PatchProperty(ctx context.Context, id string, p PropertyPatch) (Property, error)
	DeleteProperty(ctx context.Context, id string) error

	// Offers
	InsertOffer(ctx context.Context, o Offer) (Offer, error)
	ListOffers(ctx context.Context, f OfferFilter) ([]Offer, error)
	PatchOffer(ctx context.Context, id string, p OfferPatch) (Offer, error)

	// Settings singleton
	EnsureSettings(ctx context.Context, defaults SiteSettings) (SiteSettings, error)
	PatchSettings(ctx context.Context, p SettingsPatch) (SiteSettings, error)

	// Admin
	GetAdminByEmail(ctx context.Context, email string) (AdminUser, error)
	SeedAdmin(ctx context.Context, a AdminUser) (created bool, err error)

	// Diagnostics
	CollectionNames(ctx context.Context, limit int) ([]string, error)
}
