// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lambda adapts the gateway handlers to AWS Lambda behind an API
// Gateway proxy integration.
package lambda

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-business-card/internal/handler/gateway"
	"github.com/MKhiriev/go-business-card/internal/logger"
	"github.com/MKhiriev/go-business-card/internal/service"
	"github.com/MKhiriev/go-business-card/models"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

var ErrUnknownFunction = errors.New("unknown function")

// Handler serves API Gateway proxy events. A handler pinned to one function
// ignores the method and path of the event.
type Handler struct {
	serve gateway.Func

	logger *logger.Logger
}

// NewHandler pins the handler to function. An empty function routes every
// event by its method and path.
func NewHandler(services *service.Services, function string, logger *logger.Logger) (*Handler, error) {
	gw := gateway.NewHandler(services, logger)

	serve := gw.Dispatch
	if function != "" {
		fn, ok := gw.ByName(function)
		if !ok {
			return nil, fmt.Errorf("%w: %q, expected one of %v", ErrUnknownFunction, function, gateway.Names())
		}
		serve = fn
	}

	logger.Info().Str("function", function).Msg("lambda handler created")
	return &Handler{serve: serve, logger: logger}, nil
}

// Handle is the Lambda entry point. Failures are always expressed in the
// response, so the returned error is nil.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := event.RequestContext.RequestID
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}
	log := h.logger.With().Str("request_id", requestID).Logger()
	ctx = log.WithContext(ctx)

	req, err := toRequest(event)
	if err != nil {
		log.Err(err).Str("func", "*Handler.Handle").Msg("failed to decode event body")
		return toProxyResponse(gateway.BadRequest(err.Error())), nil
	}

	resp := h.serve(ctx, req)
	log.Info().
		Str("method", event.HTTPMethod).
		Str("path", event.Path).
		Int("status", resp.StatusCode).
		Msg("request handled")

	return toProxyResponse(resp), nil
}

func toRequest(event events.APIGatewayProxyRequest) (models.Request, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return models.Request{}, fmt.Errorf("invalid base64 body: %w", err)
		}
		body = string(decoded)
	}

	return models.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
	}, nil
}

func toProxyResponse(resp models.Response) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}
