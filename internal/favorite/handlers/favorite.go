package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"starwars-api/internal/favorite"
	"starwars-api/internal/shared/request"
	"starwars-api/internal/shared/response"
)

type FavoriteHandler struct {
	service *favorite.Service
}

func NewFavoriteHandler(service *favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

func (h *FavoriteHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_favorites")

	favorites, err := h.service.GetAllFavorites(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if favorites == nil {
		favorites = []favorite.Favorite{}
	}

	response.Success(w, http.StatusOK, favorites)
}

func (h *FavoriteHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_user_favorites")

	userID, err := request.PathInt(r, "id", "user ID")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	favorites, err := h.service.GetFavoritesByUserID(ctx, userID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if favorites == nil {
		favorites = []favorite.Favorite{}
	}

	response.Success(w, http.StatusOK, favorites)
}

func (h *FavoriteHandler) AddCharacter(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, favorite.TargetCharacter, "characterID")
}

func (h *FavoriteHandler) AddPlanet(w http.ResponseWriter, r *http.Request) {
	h.add(w, r, favorite.TargetPlanet, "planetID")
}

func (h *FavoriteHandler) RemoveCharacter(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, favorite.TargetCharacter, "characterID")
}

func (h *FavoriteHandler) RemovePlanet(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, favorite.TargetPlanet, "planetID")
}

func (h *FavoriteHandler) add(w http.ResponseWriter, r *http.Request, kind favorite.TargetKind, itemParam string) {
	ctx := r.Context()
	logger := slog.With("handler", "add_favorite_"+string(kind))

	userID, itemID, err := favoritePath(r, kind, itemParam)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Add(ctx, userID, kind, itemID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusCreated, fmt.Sprintf("%s added to favorites!", kind))
}

func (h *FavoriteHandler) remove(w http.ResponseWriter, r *http.Request, kind favorite.TargetKind, itemParam string) {
	ctx := r.Context()
	logger := slog.With("handler", "remove_favorite_"+string(kind))

	userID, itemID, err := favoritePath(r, kind, itemParam)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Remove(ctx, userID, kind, itemID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Message(w, http.StatusOK, fmt.Sprintf("%s removed from favorites!", kind))
}

func favoritePath(r *http.Request, kind favorite.TargetKind, itemParam string) (int, int, error) {
	userID, err := request.PathInt(r, "userID", "user ID")
	if err != nil {
		return 0, 0, err
	}

	itemID, err := request.PathInt(r, itemParam, string(kind)+" ID")
	if err != nil {
		return 0, 0, err
	}

	return userID, itemID, nil
}
