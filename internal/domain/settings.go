package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings is a singleton document: the store holds at most one
// meaningful record, created lazily with DefaultSettings on first read.
type SiteSettings struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SiteName     string             `bson:"site_name" json:"site_name" validate:"required"`
	HeroHeadline string             `bson:"hero_headline" json:"hero_headline" validate:"required"`
	HeroSubtitle *string            `bson:"hero_subtitle,omitempty" json:"hero_subtitle"`
	ContactEmail *string            `bson:"contact_email,omitempty" json:"contact_email" validate:"omitempty,email"`
	Phone        *string            `bson:"phone,omitempty" json:"phone"`
	UpdatedAt    *time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func DefaultSettings() SiteSettings {
	sub := "Browse curated properties"
	return SiteSettings{
		SiteName:     "Nova Estates",
		HeroHeadline: "Find your next home",
		HeroSubtitle: &sub,
	}
}

type SettingsPatch struct {
	SiteName     *string `json:"site_name" validate:"omitempty,min=1"`
	HeroHeadline *string `json:"hero_headline" validate:"omitempty,min=1"`
	HeroSubtitle *string `json:"hero_subtitle"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
}

func (p SettingsPatch) Changes() map[string]any {
	c := map[string]any{}
	if p.SiteName != nil {
		c["site_name"] = *p.SiteName
	}
	if p.HeroHeadline != nil {
		c["hero_headline"] = *p.HeroHeadline
	}
	if p.HeroSubtitle != nil {
		c["hero_subtitle"] = *p.HeroSubtitle
	}
	if p.ContactEmail != nil {
		c["contact_email"] = *p.ContactEmail
	}
	if p.Phone != nil {
		c["phone"] = *p.Phone
	}
	return c
}

func (p SettingsPatch) Apply(dst *SiteSettings) {
	if p.SiteName != nil {
		dst.SiteName = *p.SiteName
	}
	if p.HeroHeadline != nil {
		dst.HeroHeadline = *p.HeroHeadline
	}
	if p.HeroSubtitle != nil {
		dst.HeroSubtitle = p.HeroSubtitle
	}
	if p.ContactEmail != nil {
		dst.ContactEmail = p.ContactEmail
	}
	if p.Phone != nil {
		dst.Phone = p.Phone
	}
}
