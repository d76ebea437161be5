package handlers

import (
	"log/slog"
	"net/http"

	"starwars-api/internal/shared/request"
	"starwars-api/internal/shared/response"
	"starwars-api/internal/user"
)

type UsersHandler struct {
	service *user.Service
}

func NewUsersHandler(service *user.Service) *UsersHandler {
	return &UsersHandler{service: service}
}

func (h *UsersHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_users", "remote_addr", r.RemoteAddr)
	logger.Debug("Users list requested")

	users, err := h.service.GetAllUsers(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if users == nil {
		users = []user.User{}
	}

	response.Success(w, http.StatusOK, users)
}

func (h *UsersHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_user")

	userID, err := request.PathInt(r, "id", "user ID")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	u, err := h.service.GetUserByID(ctx, userID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, u)
}
