package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nova_estates/internal/adapters/observability"
	"nova_estates/internal/domain"
)

// oid parses a public id string into its canonical ObjectID form. A
// malformed id behaves like an absent document.
func oid(id string) (primitive.ObjectID, error) {
	v, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return v, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "miss"
	}
	return "error"
}

// ---- Properties ----

func (s *Store) InsertProperty(ctx context.Context, p domain.Property) (domain.Property, error) {
	res, err := s.db.Collection(collProperties).InsertOne(ctx, p)
	observability.ObserveStore("insert", collProperties, outcome(err))
	if err != nil {
		return domain.Property{}, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (s *Store) ListProperties(ctx context.Context, f domain.PropertyFilter) ([]domain.Property, error) {
	filter := bson.M{}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	cursor, err := s.db.Collection(collProperties).Find(ctx, filter)
	observability.ObserveStore("find", collProperties, outcome(err))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []domain.Property
	for cursor.Next(ctx) {
		var p domain.Property
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cursor.Err()
}

func (s *Store) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	objID, err := oid(id)
	if err != nil {
		return domain.Property{}, err
	}
	var p domain.Property
	err = s.db.Collection(collProperties).FindOne(ctx, bson.M{"_id": objID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = domain.ErrNotFound
	}
	observability.ObserveStore("get", collProperties, outcome(err))
	if err != nil {
		return domain.Property{}, err
	}
	return p, nil
}

func (s *Store) PatchProperty(ctx context.Context, id string, p domain.PropertyPatch) (domain.Property, error) {
	objID, err := oid(id)
	if err != nil {
		return domain.Property{}, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range p.Changes() {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out domain.Property
	err = s.db.Collection(collProperties).
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).
		Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = domain.ErrNotFound
	}
	observability.ObserveStore("patch", collProperties, outcome(err))
	if err != nil {
		return domain.Property{}, err
	}
	return out, nil
}

func (s *Store) DeleteProperty(ctx context.Context, id string) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection(collProperties).DeleteOne(ctx, bson.M{"_id": objID})
	if err == nil && res.DeletedCount == 0 {
		err = domain.ErrNotFound
	}
	observability.ObserveStore("delete", collProperties, outcome(err))
	return err
}

// ---- Offers ----

func (s *Store) InsertOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	res, err := s.db.Collection(collOffers).InsertOne(ctx, o)
	observability.ObserveStore("insert", collOffers, outcome(err))
	if err != nil {
		return domain.Offer{}, err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return o, nil
}

func (s *Store) ListOffers(ctx context.Context, f domain.OfferFilter) ([]domain.Offer, error) {
	filter := bson.M{}
	if f.PropertyID != nil {
		filter["property_id"] = *f.PropertyID
	}
	cursor, err := s.db.Collection(collOffers).Find(ctx, filter)
	observability.ObserveStore("find", collOffers, outcome(err))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []domain.Offer
	for cursor.Next(ctx) {
		var o domain.Offer
		if err := cursor.Decode(&o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, cursor.Err()
}

func (s *Store) PatchOffer(ctx context.Context, id string, p domain.OfferPatch) (domain.Offer, error) {
	objID, err := oid(id)
	if err != nil {
		return domain.Offer{}, err
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range p.Changes() {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out domain.Offer
	err = s.db.Collection(collOffers).
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).
		Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = domain.ErrNotFound
	}
	observability.ObserveStore("patch", collOffers, outcome(err))
	if err != nil {
		return domain.Offer{}, err
	}
	return out, nil
}

// ---- Settings singleton ----

// EnsureSettings returns the singleton, creating it atomically from the
// defaults when absent. $setOnInsert keeps concurrent first reads from
// minting duplicates.
func (s *Store) EnsureSettings(ctx context.Context, defaults domain.SiteSettings) (domain.SiteSettings, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out domain.SiteSettings
	err := s.db.Collection(collSettings).
		FindOneAndUpdate(ctx, bson.M{}, bson.M{"$setOnInsert": defaults}, opts).
		Decode(&out)
	observability.ObserveStore("ensure", collSettings, outcome(err))
	if err != nil {
		return domain.SiteSettings{}, err
	}
	return out, nil
}

// PatchSettings merge-updates the singleton; when none exists the upsert
// creates one straight from the supplied fields.
func (s *Store) PatchSettings(ctx context.Context, p domain.SettingsPatch) (domain.SiteSettings, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range p.Changes() {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out domain.SiteSettings
	err := s.db.Collection(collSettings).
		FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": set}, opts).
		Decode(&out)
	observability.ObserveStore("patch", collSettings, outcome(err))
	if err != nil {
		return domain.SiteSettings{}, err
	}
	return out, nil
}

// ---- Admin ----

func (s *Store) GetAdminByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	var a domain.AdminUser
	err := s.db.Collection(collAdmins).FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = domain.ErrNotFound
	}
	observability.ObserveStore("get", collAdmins, outcome(err))
	if err != nil {
		return domain.AdminUser{}, err
	}
	return a, nil
}

// SeedAdmin inserts the admin only if no document with that email exists.
// The upsert makes repeated seeds a no-op.
func (s *Store) SeedAdmin(ctx context.Context, a domain.AdminUser) (bool, error) {
	res, err := s.db.Collection(collAdmins).UpdateOne(
		ctx,
		bson.M{"email": a.Email},
		bson.M{"$setOnInsert": a},
		options.Update().SetUpsert(true),
	)
	observability.ObserveStore("seed", collAdmins, outcome(err))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount == 1, nil
}
