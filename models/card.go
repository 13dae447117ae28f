// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Card field names. They are shared by the JSON payloads, the SQL columns and
// the DynamoDB attribute names, so a field is addressed the same way in every
// layer.
const (
	FieldCardID             = "card_id"
	FieldName               = "name"
	FieldEmail              = "email"
	FieldWhatsApp           = "whatsapp"
	FieldProfilePhoto       = "profile_photo"
	FieldEducation          = "education"
	FieldCurrentRole        = "current_role"
	FieldBio                = "bio"
	FieldPaymentKey         = "payment_key"
	FieldAcademicProfileURL = "academic_profile_url"
	FieldInstagram          = "instagram"
	FieldLinkedIn           = "linkedin"
	FieldTwitter            = "twitter"
	FieldFacebook           = "facebook"
	FieldGitHub             = "github"
	FieldSite               = "site"
)

// Card is a public business-card profile identified by CardID.
//
// CardID is supplied by the caller, is unique and never changes after the
// card has been created. Name, Email and WhatsApp are required; all other
// fields are optional and omitted from JSON when empty.
type Card struct {
	CardID   string `json:"card_id" dynamodbav:"card_id"`
	Name     string `json:"name" dynamodbav:"name"`
	Email    string `json:"email" dynamodbav:"email"`
	WhatsApp string `json:"whatsapp" dynamodbav:"whatsapp"`

	// ProfilePhoto holds the public URL of the uploaded photo. On input it
	// may also carry an embedded data URI which is resolved before storing.
	ProfilePhoto string `json:"profile_photo,omitempty" dynamodbav:"profile_photo,omitempty"`

	Education          string `json:"education,omitempty" dynamodbav:"education,omitempty"`
	CurrentRole        string `json:"current_role,omitempty" dynamodbav:"current_role,omitempty"`
	Bio                string `json:"bio,omitempty" dynamodbav:"bio,omitempty"`
	PaymentKey         string `json:"payment_key,omitempty" dynamodbav:"payment_key,omitempty"`
	AcademicProfileURL string `json:"academic_profile_url,omitempty" dynamodbav:"academic_profile_url,omitempty"`

	Instagram string `json:"instagram,omitempty" dynamodbav:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" dynamodbav:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty" dynamodbav:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" dynamodbav:"facebook,omitempty"`
	GitHub    string `json:"github,omitempty" dynamodbav:"github,omitempty"`
	Site      string `json:"site,omitempty" dynamodbav:"site,omitempty"`
}

// CardUpdate is a partial update of a card. A nil field was not supplied by
// the caller and must be left untouched in the stored record.
type CardUpdate struct {
	CardID string `json:"card_id"`

	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	WhatsApp           *string `json:"whatsapp,omitempty"`
	ProfilePhoto       *string `json:"profile_photo,omitempty"`
	Education          *string `json:"education,omitempty"`
	CurrentRole        *string `json:"current_role,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	PaymentKey         *string `json:"payment_key,omitempty"`
	AcademicProfileURL *string `json:"academic_profile_url,omitempty"`
	Instagram          *string `json:"instagram,omitempty"`
	LinkedIn           *string `json:"linkedin,omitempty"`
	Twitter            *string `json:"twitter,omitempty"`
	Facebook           *string `json:"facebook,omitempty"`
	GitHub             *string `json:"github,omitempty"`
	Site               *string `json:"site,omitempty"`
}

// FieldValue is a single supplied field of a [CardUpdate].
type FieldValue struct {
	Name  string
	Value string
}

// Fields returns the supplied fields in a stable order. CardID is never part
// of the result because it identifies the record and cannot be updated.
func (u CardUpdate) Fields() []FieldValue {
	fields := make([]FieldValue, 0, 15)
	add := func(name string, value *string) {
		if value != nil {
			fields = append(fields, FieldValue{Name: name, Value: *value})
		}
	}

	add(FieldName, u.Name)
	add(FieldEmail, u.Email)
	add(FieldWhatsApp, u.WhatsApp)
	add(FieldProfilePhoto, u.ProfilePhoto)
	add(FieldEducation, u.Education)
	add(FieldCurrentRole, u.CurrentRole)
	add(FieldBio, u.Bio)
	add(FieldPaymentKey, u.PaymentKey)
	add(FieldAcademicProfileURL, u.AcademicProfileURL)
	add(FieldInstagram, u.Instagram)
	add(FieldLinkedIn, u.LinkedIn)
	add(FieldTwitter, u.Twitter)
	add(FieldFacebook, u.Facebook)
	add(FieldGitHub, u.GitHub)
	add(FieldSite, u.Site)

	return fields
}

// IsEmpty reports whether the update carries no field besides CardID.
func (u CardUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0
}

// Apply overwrites the fields of c that are supplied in u.
func (c *Card) Apply(u CardUpdate) {
	for _, f := range u.Fields() {
		if p := c.field(f.Name); p != nil {
			*p = f.Value
		}
	}
}

func (c *Card) field(name string) *string {
	switch name {
	case FieldName:
		return &c.Name
	case FieldEmail:
		return &c.Email
	case FieldWhatsApp:
		return &c.WhatsApp
	case FieldProfilePhoto:
		return &c.ProfilePhoto
	case FieldEducation:
		return &c.Education
	case FieldCurrentRole:
		return &c.CurrentRole
	case FieldBio:
		return &c.Bio
	case FieldPaymentKey:
		return &c.PaymentKey
	case FieldAcademicProfileURL:
		return &c.AcademicProfileURL
	case FieldInstagram:
		return &c.Instagram
	case FieldLinkedIn:
		return &c.LinkedIn
	case FieldTwitter:
		return &c.Twitter
	case FieldFacebook:
		return &c.Facebook
	case FieldGitHub:
		return &c.GitHub
	case FieldSite:
		return &c.Site
	}
	return nil
}
