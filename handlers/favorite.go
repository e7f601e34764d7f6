package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

type FavoriteHandler struct {
	Repo repository.FavoriteRepository
}

// FavoriteResponse is the projection served when listing a user's favorites.
// people_id is not part of it.
type FavoriteResponse struct {
	UserID   *uint `json:"user_id"`
	PlanetID *uint `json:"planet_id"`
	FilmID   *uint `json:"film_id"`
}

type favoriteMessages struct {
	added    string
	deleted  string
	notFound string
}

var favoriteKindMessages = map[string]favoriteMessages{
	models.FavoriteKindPlanet: {
		added:    "Favorite planet added successfully",
		deleted:  "Favorite planet deleted successfully",
		notFound: "Favorite planet not found",
	},
	models.FavoriteKindPeople: {
		added:    "Favorite people added successfully",
		deleted:  "Favorite people deleted successfully",
		notFound: "Favorite people not found",
	},
}

func toFavoriteResponse(f *models.Favorite) FavoriteResponse {
	return FavoriteResponse{UserID: f.UserID, PlanetID: f.PlanetID, FilmID: f.FilmID}
}

func (h *FavoriteHandler) ListUserFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "user_id", "user")
	if !ok {
		return
	}

	favorites, err := h.Repo.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("Error listing favorites")
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to retrieve favorites"))
		return
	}

	result := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		result = append(result, toFavoriteResponse(&favorites[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *FavoriteHandler) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, models.FavoriteKindPlanet, "planet_id")
}

func (h *FavoriteHandler) DeleteFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	h.deleteFavorite(w, r, models.FavoriteKindPlanet, "planet_id")
}

func (h *FavoriteHandler) AddFavoritePeople(w http.ResponseWriter, r *http.Request) {
	h.addFavorite(w, r, models.FavoriteKindPeople, "people_id")
}

func (h *FavoriteHandler) DeleteFavoritePeople(w http.ResponseWriter, r *http.Request) {
	h.deleteFavorite(w, r, models.FavoriteKindPeople, "people_id")
}

// addFavorite inserts unconditionally: neither the user nor the target is checked
// and duplicates are accepted.
func (h *FavoriteHandler) addFavorite(w http.ResponseWriter, r *http.Request, kind, targetParam string) {
	userID, ok := parseIDParam(w, r, "user_id", "user")
	if !ok {
		return
	}
	targetID, ok := parseIDParam(w, r, targetParam, kind)
	if !ok {
		return
	}

	if _, err := h.Repo.Add(r.Context(), userID, kind, targetID); err != nil {
		log.Error().Err(err).Str("kind", kind).Uint("user_id", userID).Uint("target_id", targetID).Msg("Error adding favorite")
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to add favorite"))
		return
	}

	writeJSON(w, http.StatusOK, messageBody(favoriteKindMessages[kind].added))
}

func (h *FavoriteHandler) deleteFavorite(w http.ResponseWriter, r *http.Request, kind, targetParam string) {
	userID, ok := parseIDParam(w, r, "user_id", "user")
	if !ok {
		return
	}
	targetID, ok := parseIDParam(w, r, targetParam, kind)
	if !ok {
		return
	}

	msgs := favoriteKindMessages[kind]
	err := h.Repo.RemoveFirst(r.Context(), userID, kind, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody(msgs.notFound))
		} else {
			log.Error().Err(err).Str("kind", kind).Uint("user_id", userID).Uint("target_id", targetID).Msg("Error deleting favorite")
			writeJSON(w, http.StatusInternalServerError, errorBody("Failed to delete favorite"))
		}
		return
	}

	writeJSON(w, http.StatusOK, messageBody(msgs.deleted))
}
