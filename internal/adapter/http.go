package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-business-card/internal/config"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/utils"
	"github.com/MKhiriev/go-business-card/models"
)

type httpCardAPI struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCardAPI returns a [CardAPI] for the service at cfg.HTTPAddress. An
// address without a scheme is treated as http.
func NewHTTPCardAPI(cfg config.Adapter, logger *logger.Logger) (CardAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCardAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCardAPI) CreateCard(ctx context.Context, card models.Card) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(card).
		Post("/cards")
	if err != nil {
		return fmt.Errorf("create card request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCardAPI) UpdateCard(ctx context.Context, update models.CardUpdate) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/cards")
	if err != nil {
		return fmt.Errorf("update card request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCardAPI) GetCard(ctx context.Context, cardID string) (models.Card, error) {
	var card models.Card

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("card_id", cardID).
		SetResult(&card).
		Get("/cards")
	if err != nil {
		return models.Card{}, fmt.Errorf("get card request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Card{}, err
	}

	return card, nil
}

func (h *httpCardAPI) DeleteCard(ctx context.Context, cardID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("card_id", cardID).
		Delete("/cards")
	if err != nil {
		return fmt.Errorf("delete card request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCardAPI) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/users")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCardAPI) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("card_id", result.CardID).Msg("logged in")
	return result.CardID, nil
}
