package lambda

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-business-card/internal/handler/gateway"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/mock"
	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/MKhiriev/go-business-card/models"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServices(t *testing.T) (*service.Services, *mock.MockCardService) {
	ctrl := gomock.NewController(t)
	cards := mock.NewMockCardService(ctrl)
	return &service.Services{
		CardService: cards,
		AuthService: mock.NewMockAuthService(ctrl),
	}, cards
}

func TestNewHandler_UnknownFunction(t *testing.T) {
	services, _ := newServices(t)

	_, err := NewHandler(services, "list-cards", logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestHandle_DispatchesByPath(t *testing.T) {
	services, cards := newServices(t)
	cards.EXPECT().GetCard(gomock.Any(), "ana").Return(models.Card{CardID: "ana", Name: "Ana"}, nil)

	h, err := NewHandler(services, "", logger.Nop())
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/cards",
		QueryStringParameters: map[string]string{"card_id": "ana"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Body, `"name":"Ana"`)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestHandle_PinnedFunctionIgnoresPath(t *testing.T) {
	services, cards := newServices(t)
	cards.EXPECT().DeleteCard(gomock.Any(), "ana").Return(nil)

	h, err := NewHandler(services, gateway.NameDeleteCard, logger.Nop())
	require.NoError(t, err)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
	resp, err := h.Handle(ctx, events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodPost,
		Path:                  "/anything",
		QueryStringParameters: map[string]string{"card_id": "ana"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Card deleted successfully"}`, resp.Body)
}

func TestHandle_Base64Body(t *testing.T) {
	services, cards := newServices(t)
	cards.EXPECT().CreateCard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, card models.Card) error {
			assert.Equal(t, "ana", card.CardID)
			return nil
		})

	h, err := NewHandler(services, gateway.NameCreateCard, logger.Nop())
	require.NoError(t, err)

	body := `{"card_id":"ana","name":"Ana","email":"ana@example.com","whatsapp":"1"}`
	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            "/cards",
		Body:            base64.StdEncoding.EncodeToString([]byte(body)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandle_BrokenBase64Body(t *testing.T) {
	services, _ := newServices(t)
	h, err := NewHandler(services, gateway.NameCreateCard, logger.Nop())
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Body, `"kind":"invalid_request"`)
}

func TestHandle_UnknownRoute(t *testing.T) {
	services, _ := newServices(t)
	h, err := NewHandler(services, "", logger.Nop())
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet, Path: "/nope"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
