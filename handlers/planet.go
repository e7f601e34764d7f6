package handlers

import (
	"net/http"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

type PlanetHandler struct {
	Repo repository.PlanetRepository
}

type PlanetResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Population *int64 `json:"population"`
	Terrain    string `json:"terrain"`
	Diameter   *int   `json:"diameter"`
}

func toPlanetResponse(p *models.Planet) PlanetResponse {
	return PlanetResponse{
		ID:         p.PlanetID,
		Name:       p.Name,
		Population: p.Population,
		Terrain:    p.Terrain,
		Diameter:   p.Diameter,
	}
}

func (h *PlanetHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "planets", h.Repo.ListAll, toPlanetResponse)
}

func (h *PlanetHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "planet_id", "planet", errorBody("Planet not found"), h.Repo.GetByID, toPlanetResponse)
}
