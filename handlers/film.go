package handlers

import (
	"net/http"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

type FilmHandler struct {
	Repo repository.FilmRepository
}

// FilmResponse exposes the director as its raw id.
type FilmResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Director *uint  `json:"director"`
	Opening  string `json:"opening"`
}

func toFilmResponse(f *models.Film) FilmResponse {
	resp := FilmResponse{
		ID:      f.FilmID,
		Title:   f.Title,
		Opening: f.Opening,
	}
	if f.DirectorID != nil && *f.DirectorID != 0 {
		resp.Director = f.DirectorID
	}
	return resp
}

func (h *FilmHandler) ListFilms(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "films", h.Repo.ListAll, toFilmResponse)
}

func (h *FilmHandler) GetFilm(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "film_id", "film", errorBody("Film not found"), h.Repo.GetByID, toFilmResponse)
}
