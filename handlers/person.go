package handlers

import (
	"net/http"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

type PersonHandler struct {
	Repo repository.PersonRepository
}

// PersonResponse flattens every relation of a character to a scalar.
type PersonResponse struct {
	Name    string   `json:"name"`
	Gender  *string  `json:"gender"`
	Specie  *string  `json:"specie"`
	Vehicle *string  `json:"vehicle"`
	Height  *int     `json:"height"`
	Films   []string `json:"films"`
}

func toPersonResponse(p *models.Person) PersonResponse {
	resp := PersonResponse{
		Name:   p.Name,
		Height: p.Height,
		Films:  []string{},
	}
	if p.Gender != nil {
		resp.Gender = &p.Gender.Type
	}
	if p.Specie != nil {
		resp.Specie = &p.Specie.Languaje
	}
	if p.Vehicle != nil {
		resp.Vehicle = &p.Vehicle.Name
	}
	// a person appears in at most one film
	if p.Film != nil {
		resp.Films = append(resp.Films, p.Film.Title)
	}
	return resp
}

func (h *PersonHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "people", h.Repo.ListAll, toPersonResponse)
}

func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "people_id", "person", errorBody("Person not found"), h.Repo.GetByID, toPersonResponse)
}
