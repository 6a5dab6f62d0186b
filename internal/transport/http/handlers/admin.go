package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/baechuer/account-service/internal/account"
	"github.com/baechuer/account-service/internal/domain"
	"github.com/baechuer/account-service/internal/transport/http/dto"
	"github.com/baechuer/account-service/internal/transport/http/response"
)

// AdminHandler exposes the admin-only user management endpoints.
type AdminHandler struct {
	svc *account.Service
}

func NewAdminHandler(svc *account.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListUsers handles GET /api/v1/admin/users?page=&limit=.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	users, err := h.svc.ListUsers(r.Context(), page, limit)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	views := make([]dto.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, dto.NewUserView(u))
	}

	response.OK(w, dto.UserListData{Users: views, Page: page, Limit: limit})
}

// Activate handles PUT /api/v1/admin/users/{id}/activate.
func (h *AdminHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// Deactivate handles PUT /api/v1/admin/users/{id}/deactivate.
func (h *AdminHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *AdminHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.WriteError(w, r, domain.ErrInvalidField("id", "must be a positive integer"))
		return
	}

	var status string
	if active {
		err = h.svc.ActivateUser(r.Context(), id)
		status = "activated"
	} else {
		err = h.svc.DeactivateUser(r.Context(), id)
		status = "deactivated"
	}
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log.Info().Int64("user_id", id).Str("status", status).Msg("user status changed")

	response.OK(w, dto.UserStatusData{Status: status, UserID: id})
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
