package app_test

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nova_estates/internal/domain"
)

func fptr(f float64) *float64 { return &f }

// fakeRepo is a minimal in-memory domain.Repository for service tests.
type fakeRepo struct {
	mu         sync.Mutex
	properties map[string]domain.Property
	offers     map[string]domain.Offer
	settings   *domain.SiteSettings
	admins     map[string]domain.AdminUser
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		properties: map[string]domain.Property{},
		offers:     map[string]domain.Offer{},
		admins:     map[string]domain.AdminUser{},
	}
}

func (f *fakeRepo) InsertProperty(ctx context.Context, p domain.Property) (domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.properties[p.ID.Hex()] = p
	return p, nil
}

func (f *fakeRepo) ListProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Property
	for _, p := range f.properties {
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.properties[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) PatchProperty(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.properties[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	patch.Apply(&p)
	f.properties[id] = p
	return p, nil
}

func (f *fakeRepo) DeleteProperty(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.properties[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.properties, id)
	return nil
}

func (f *fakeRepo) InsertOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.ID = primitive.NewObjectID()
	f.offers[o.ID.Hex()] = o
	return o, nil
}

func (f *fakeRepo) ListOffers(ctx context.Context, filter domain.OfferFilter) ([]domain.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Offer
	for _, o := range f.offers {
		if filter.PropertyID != nil && o.PropertyID != *filter.PropertyID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeRepo) PatchOffer(ctx context.Context, id string, patch domain.OfferPatch) (domain.Offer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.offers[id]
	if !ok {
		return domain.Offer{}, domain.ErrNotFound
	}
	patch.Apply(&o)
	f.offers[id] = o
	return o, nil
}

func (f *fakeRepo) EnsureSettings(ctx context.Context, defaults domain.SiteSettings) (domain.SiteSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		defaults.ID = primitive.NewObjectID()
		f.settings = &defaults
	}
	return *f.settings, nil
}

func (f *fakeRepo) PatchSettings(ctx context.Context, patch domain.SettingsPatch) (domain.SiteSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		s := domain.SiteSettings{ID: primitive.NewObjectID()}
		patch.Apply(&s)
		f.settings = &s
	} else {
		patch.Apply(f.settings)
	}
	return *f.settings, nil
}

func (f *fakeRepo) GetAdminByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[email]
	if !ok {
		return domain.AdminUser{}, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) SeedAdmin(ctx context.Context, a domain.AdminUser) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.admins[a.Email]; ok {
		return false, nil
	}
	a.ID = primitive.NewObjectID()
	f.admins[a.Email] = a
	return true, nil
}

func (f *fakeRepo) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	return []string{"property", "offer", "sitesettings", "adminuser"}, nil
}
