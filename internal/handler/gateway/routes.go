package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-business-card/models"
)

// Handler names, as used by single-function deployments.
const (
	NameCreateCard = "create-card"
	NameUpdateCard = "update-card"
	NameGetCard    = "get-card"
	NameDeleteCard = "delete-card"
	NameCreateUser = "create-user"
	NameLogin      = "login"
)

// Resource paths served by Dispatch.
const (
	PathCards = "/cards"
	PathUsers = "/users"
	PathLogin = "/login"
)

type route struct {
	method string
	path   string
	name   string
}

var routes = []route{
	{method: http.MethodPost, path: PathCards, name: NameCreateCard},
	{method: http.MethodPut, path: PathCards, name: NameUpdateCard},
	{method: http.MethodGet, path: PathCards, name: NameGetCard},
	{method: http.MethodDelete, path: PathCards, name: NameDeleteCard},
	{method: http.MethodPost, path: PathUsers, name: NameCreateUser},
	{method: http.MethodPost, path: PathLogin, name: NameLogin},
}

// ByName returns the handler registered under name.
func (h *Handler) ByName(name string) (Func, bool) {
	switch name {
	case NameCreateCard:
		return h.CreateCard, true
	case NameUpdateCard:
		return h.UpdateCard, true
	case NameGetCard:
		return h.GetCard, true
	case NameDeleteCard:
		return h.DeleteCard, true
	case NameCreateUser:
		return h.CreateUser, true
	case NameLogin:
		return h.Login, true
	}
	return nil, false
}

// Dispatch routes req by method and path. A trailing slash is ignored.
func (h *Handler) Dispatch(ctx context.Context, req models.Request) models.Response {
	path := strings.TrimSuffix(req.Path, "/")
	method := strings.ToUpper(req.Method)

	for _, r := range routes {
		if r.method == method && r.path == path {
			fn, _ := h.ByName(r.name)
			return fn(ctx, req)
		}
	}

	return errorBodyResponse(http.StatusNotFound, models.KindNotFound, "route not found")
}

// Names lists the handler names in routing order.
func Names() []string {
	names := make([]string, 0, len(routes))
	for _, r := range routes {
		names = append(names, r.name)
	}
	return names
}
