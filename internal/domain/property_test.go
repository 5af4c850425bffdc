package domain

import (
	"errors"
	"testing"
)

func fptr(f float64) *float64 { return &f }

func validProperty() Property {
	return Property{
		Title:   "Lake House",
		Price:   fptr(500000),
		Address: "1 Lake Rd",
		City:    "Tahoe",
		State:   "CA",
		Country: "US",
	}
}

func TestProperty_ApplyDefaults(t *testing.T) {
	p := validProperty()
	p.ApplyDefaults()
	if p.Status != StatusAvailable {
		t.Fatalf("status = %q", p.Status)
	}
	if p.Featured {
		t.Fatal("featured should default to false")
	}
	if p.Images == nil || len(p.Images) != 0 {
		t.Fatalf("images = %#v, want empty slice", p.Images)
	}
}

func TestProperty_Validate_OK(t *testing.T) {
	p := validProperty()
	p.ApplyDefaults()
	if err := Validate(&p); err != nil {
		t.Fatalf("valid property rejected: %v", err)
	}
}

func TestProperty_Validate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Property)
		field  string
	}{
		{"missing title", func(p *Property) { p.Title = "" }, "title"},
		{"missing price", func(p *Property) { p.Price = nil }, "price"},
		{"negative price", func(p *Property) { p.Price = fptr(-1) }, "price"},
		{"missing city", func(p *Property) { p.City = "" }, "city"},
		{"negative bedrooms", func(p *Property) { n := -2; p.Bedrooms = &n }, "bedrooms"},
		{"bad status", func(p *Property) { p.Status = "demolished" }, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProperty()
			p.ApplyDefaults()
			tc.mutate(&p)
			err := Validate(&p)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			found := false
			for _, f := range ve.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("field %q not reported in %v", tc.field, ve.Fields)
			}
		})
	}
}

func TestPropertyStatus_Valid(t *testing.T) {
	for _, s := range []PropertyStatus{StatusAvailable, StatusPending, StatusSold} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	if PropertyStatus("demolished").Valid() {
		t.Fatal("unknown status accepted")
	}
}

func TestPropertyPatch_ChangesAndApply(t *testing.T) {
	price := 450000.0
	patch := PropertyPatch{Price: &price}

	c := patch.Changes()
	if len(c) != 1 || c["price"] != 450000.0 {
		t.Fatalf("changes = %#v", c)
	}

	p := validProperty()
	p.ApplyDefaults()
	patch.Apply(&p)
	if *p.Price != 450000 {
		t.Fatalf("price = %v", *p.Price)
	}
	if p.Title != "Lake House" || p.Status != StatusAvailable {
		t.Fatal("untouched fields changed")
	}
}

func TestPropertyPatch_Validate(t *testing.T) {
	bad := PropertyStatus("demolished")
	patch := PropertyPatch{Status: &bad}
	var ve *ValidationError
	if err := Validate(&patch); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := Validate(&PropertyPatch{}); err != nil {
		t.Fatalf("empty patch should validate: %v", err)
	}
}

func TestOffer_DefaultsAndValidate(t *testing.T) {
	o := Offer{
		PropertyID: "64f0c3e2a1b2c3d4e5f60718",
		BuyerName:  "Ana",
		BuyerEmail: "ana@example.com",
		Amount:     fptr(480000),
	}
	o.ApplyDefaults()
	if o.Status != OfferPending {
		t.Fatalf("status = %q", o.Status)
	}
	if err := Validate(&o); err != nil {
		t.Fatalf("valid offer rejected: %v", err)
	}

	// a free listing is a legal zero, an omitted amount is not
	o.Amount = fptr(0)
	if err := Validate(&o); err != nil {
		t.Fatalf("zero amount rejected: %v", err)
	}
	o.Amount = nil
	err := Validate(&o)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Fields[0].Field != "amount" || ve.Fields[0].Constraint != "required" {
		t.Fatalf("unexpected field error: %+v", ve.Fields[0])
	}

	o.Amount = fptr(480000)
	o.BuyerEmail = "not-an-email"
	err = Validate(&o)
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Fields[0].Field != "buyer_email" || ve.Fields[0].Constraint != "email" {
		t.Fatalf("unexpected field error: %+v", ve.Fields[0])
	}
}

func TestSettingsPatch_Apply_CreateFromScratch(t *testing.T) {
	name := "Acme Homes"
	patch := SettingsPatch{SiteName: &name}
	var s SiteSettings
	patch.Apply(&s)
	if s.SiteName != "Acme Homes" || s.HeroHeadline != "" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}
