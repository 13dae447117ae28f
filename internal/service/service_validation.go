package service

import (
	"context"

	"github.com/MKhiriev/go-business-card/internal/validators"
	"github.com/MKhiriev/go-business-card/models"
)

// CardValidationService rejects malformed card requests before they reach
// the wrapped service.
type CardValidationService struct {
	inner     CardService
	validator validators.Validator
}

func NewCardValidationService(validator validators.Validator) CardServiceWrapper {
	return &CardValidationService{validator: validator}
}

func (v *CardValidationService) CreateCard(ctx context.Context, card models.Card) error {
	if err := v.validator.Validate(ctx, card, validators.RequiredFields(validators.OpCreateCard)...); err != nil {
		return invalidRequest(err)
	}
	return v.inner.CreateCard(ctx, card)
}

func (v *CardValidationService) UpdateCard(ctx context.Context, update models.CardUpdate) error {
	if err := v.validator.Validate(ctx, update, validators.RequiredFields(validators.OpUpdateCard)...); err != nil {
		return invalidRequest(err)
	}
	return v.inner.UpdateCard(ctx, update)
}

func (v *CardValidationService) GetCard(ctx context.Context, cardID string) (models.Card, error) {
	return v.inner.GetCard(ctx, cardID)
}

func (v *CardValidationService) DeleteCard(ctx context.Context, cardID string) error {
	return v.inner.DeleteCard(ctx, cardID)
}

func (v *CardValidationService) Wrap(inner CardService) CardService {
	v.inner = inner
	return v
}

// AuthValidationService rejects malformed account and login requests.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) error {
	if err := v.validator.Validate(ctx, user, validators.RequiredFields(validators.OpCreateUser)...); err != nil {
		return invalidRequest(err)
	}
	return v.inner.RegisterUser(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req, validators.RequiredFields(validators.OpLogin)...); err != nil {
		return models.User{}, invalidRequest(err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}
