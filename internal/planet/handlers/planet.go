package handlers

import (
	"log/slog"
	"net/http"

	"starwars-api/internal/planet"
	"starwars-api/internal/shared/request"
	"starwars-api/internal/shared/response"
)

type PlanetHandler struct {
	service *planet.Service
}

func NewPlanetHandler(service *planet.Service) *PlanetHandler {
	return &PlanetHandler{service: service}
}

func (h *PlanetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_planets")

	planets, err := h.service.GetAllPlanets(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if planets == nil {
		planets = []planet.Planet{}
	}

	response.Success(w, http.StatusOK, planets)
}

func (h *PlanetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_planet")

	planetID, err := request.PathInt(r, "id", "planet ID")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	p, err := h.service.GetPlanetByID(ctx, planetID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, p)
}
