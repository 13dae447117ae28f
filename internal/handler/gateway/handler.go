// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/MKhiriev/go-business-card/internal/validators"
	"github.com/MKhiriev/go-business-card/models"
)

// Success messages.
const (
	MsgCardCreated = "Card created successfully"
	MsgCardUpdated = "Card updated successfully"
	MsgCardDeleted = "Card deleted successfully"
	MsgUserCreated = "User created successfully"
	MsgLoggedIn    = "Login successful"
)

// Func is a single handler entry point.
type Func func(ctx context.Context, req models.Request) models.Response

type Handler struct {
	cards service.CardService
	auth  service.AuthService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("gateway handler created")
	return &Handler{
		cards:  services.CardService,
		auth:   services.AuthService,
		logger: logger,
	}
}

func (h *Handler) CreateCard(ctx context.Context, req models.Request) (resp models.Response) {
	defer h.recoverPanic(ctx, "CreateCard", &resp)

	var card models.Card
	if err := validators.DecodeBody(req.Body, &card); err != nil {
		return errorResponse(ctx, err)
	}

	if err := h.cards.CreateCard(ctx, card); err != nil {
		return errorResponse(ctx, err)
	}
	return messageResponse(MsgCardCreated)
}

func (h *Handler) UpdateCard(ctx context.Context, req models.Request) (resp models.Response) {
	defer h.recoverPanic(ctx, "UpdateCard", &resp)

	var update models.CardUpdate
	if err := validators.DecodeBody(req.Body, &update); err != nil {
		return errorResponse(ctx, err)
	}

	if err := h.cards.UpdateCard(ctx, update); err != nil {
		return errorResponse(ctx, err)
	}
	return messageResponse(MsgCardUpdated)
}

// GetCard reads the card named by the card_id query parameter.
func (h *Handler) GetCard(ctx context.Context, req models.Request) (resp models.Response) {
	defer h.recoverPanic(ctx, "GetCard", &resp)

	card, err := h.cards.GetCard(ctx, req.Query(models.FieldCardID))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return jsonResponse(http.StatusOK, card)
}

// DeleteCard removes the card named by the card_id query parameter.
func (h *Handler) DeleteCard(ctx context.Context, req models.Request) (resp models.Response) {
	defer h.recoverPanic(ctx, "DeleteCard", &resp)

	if err := h.cards.DeleteCard(ctx, req.Query(models.FieldCardID)); err != nil {
		return errorResponse(ctx, err)
	}
	return messageResponse(MsgCardDeleted)
}

func (h *Handler) CreateUser(ctx context.Context, req models.Request) (resp models.Response) {
	defer h.recoverPanic(ctx, "CreateUser", &resp)

	var user models.User
	if err := validators.DecodeBody(req.Body, &user); err != nil {
		return errorResponse(ctx, err)
	}

	if err := h.auth.RegisterUser(ctx, user); err != nil {
		return errorResponse(ctx, err)
	}
	return messageResponse(MsgUserCreated)
}

func (h *Handler) Login(ctx context.Context, req models.Request) (resp models.Response) {
	defer h.recoverPanic(ctx, "Login", &resp)

	var login models.LoginRequest
	if err := validators.DecodeBody(req.Body, &login); err != nil {
		return errorResponse(ctx, err)
	}

	user, err := h.auth.Login(ctx, login)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return jsonResponse(http.StatusOK, models.LoginResponse{Message: MsgLoggedIn, CardID: user.CardID})
}

// recoverPanic turns a panic of a handler into a 500 response.
func (h *Handler) recoverPanic(ctx context.Context, name string, resp *models.Response) {
	rec := recover()
	if rec == nil {
		return
	}

	logger.FromContext(ctx).Error().
		Str("func", "*Handler."+name).
		Any("panic", rec).
		Msg("handler panicked")
	*resp = errorResponse(ctx, fmt.Errorf("%v", rec))
}
