package handlers

import (
	"log/slog"
	"net/http"

	"starwars-api/internal/character"
	"starwars-api/internal/shared/request"
	"starwars-api/internal/shared/response"
)

type CharacterHandler struct {
	service *character.Service
}

func NewCharacterHandler(service *character.Service) *CharacterHandler {
	return &CharacterHandler{service: service}
}

func (h *CharacterHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_characters")

	characters, err := h.service.GetAllCharacters(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if characters == nil {
		characters = []character.Character{}
	}

	response.Success(w, http.StatusOK, characters)
}

func (h *CharacterHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_character")

	characterID, err := request.PathInt(r, "id", "character ID")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	c, err := h.service.GetCharacterByID(ctx, characterID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, c)
}
