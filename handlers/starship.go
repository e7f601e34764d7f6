package handlers

import (
	"net/http"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

type StarshipHandler struct {
	Repo repository.StarshipRepository
}

// StarshipResponse carries the pilot's name, or null for unpiloted ships.
type StarshipResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Pilot *string `json:"pilot"`
}

func toStarshipResponse(s *models.Starship) StarshipResponse {
	resp := StarshipResponse{ID: s.StarshipID, Name: s.Name}
	if s.Pilot != nil {
		resp.Pilot = &s.Pilot.Name
	}
	return resp
}

func (h *StarshipHandler) ListStarships(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "starships", h.Repo.ListAll, toStarshipResponse)
}

func (h *StarshipHandler) GetStarship(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "starship_id", "starship", errorBody("Starship not found"), h.Repo.GetByID, toStarshipResponse)
}
