package handlers

import (
	"net/http"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

// LookupHandler serves the gender, specie and director lookup tables.
type LookupHandler struct {
	Genders   repository.GenderRepository
	Species   repository.SpecieRepository
	Directors repository.DirectorRepository
}

type GenderResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

type SpecieResponse struct {
	ID       uint   `json:"id"`
	Languaje string `json:"languaje"`
}

type DirectorResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toGenderResponse(g *models.Gender) GenderResponse {
	return GenderResponse{ID: g.GenderID, Type: g.Type}
}

func toSpecieResponse(s *models.Specie) SpecieResponse {
	return SpecieResponse{ID: s.SpecieID, Languaje: s.Languaje}
}

func toDirectorResponse(d *models.Director) DirectorResponse {
	return DirectorResponse{ID: d.DirectorID, Name: d.Name}
}

func (h *LookupHandler) ListGenders(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "genders", h.Genders.ListAll, toGenderResponse)
}

func (h *LookupHandler) GetGender(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "gender_id", "gender", errorBody("Gender not found"), h.Genders.GetByID, toGenderResponse)
}

func (h *LookupHandler) ListSpecies(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "species", h.Species.ListAll, toSpecieResponse)
}

func (h *LookupHandler) GetSpecie(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "specie_id", "specie", errorBody("Specie not found"), h.Species.GetByID, toSpecieResponse)
}

func (h *LookupHandler) ListDirectors(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "directors", h.Directors.ListAll, toDirectorResponse)
}

func (h *LookupHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "director_id", "director", errorBody("Director not found"), h.Directors.GetByID, toDirectorResponse)
}
