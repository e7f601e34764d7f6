package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

// RouterOptions carries the HTTP settings of config.Config the router needs.
type RouterOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires every endpoint onto a chi router. Numeric path segments are enforced
// by the route patterns, so non-numeric ids never reach a handler.
func NewRouter(repos *repository.Repositories, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})

	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(corsHandler.Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("Not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("Method not allowed"))
	})

	userHandler := &UserHandler{Repo: repos.Users}
	personHandler := &PersonHandler{Repo: repos.People}
	planetHandler := &PlanetHandler{Repo: repos.Planets}
	filmHandler := &FilmHandler{Repo: repos.Films}
	starshipHandler := &StarshipHandler{Repo: repos.Starships}
	vehicleHandler := &VehicleHandler{Repo: repos.Vehicles}
	lookupHandler := &LookupHandler{Genders: repos.Genders, Species: repos.Species, Directors: repos.Directors}
	favoriteHandler := &FavoriteHandler{Repo: repos.Favorites}

	r.Get("/", SitemapHandler(r))

	r.Get("/users", userHandler.ListUsers)
	r.Get("/users/{user_id:[0-9]+}", userHandler.GetUser)

	r.Get("/people", personHandler.ListPeople)
	r.Get("/people/{people_id:[0-9]+}", personHandler.GetPerson)

	r.Get("/planets", planetHandler.ListPlanets)
	r.Get("/planets/{planet_id:[0-9]+}", planetHandler.GetPlanet)

	r.Get("/films", filmHandler.ListFilms)
	r.Get("/films/{film_id:[0-9]+}", filmHandler.GetFilm)

	r.Get("/starships", starshipHandler.ListStarships)
	r.Get("/starships/{starship_id:[0-9]+}", starshipHandler.GetStarship)

	r.Get("/vehicles", vehicleHandler.ListVehicles)
	r.Get("/vehicles/{vehicle_id:[0-9]+}", vehicleHandler.GetVehicle)

	r.Get("/genders", lookupHandler.ListGenders)
	r.Get("/genders/{gender_id:[0-9]+}", lookupHandler.GetGender)

	r.Get("/species", lookupHandler.ListSpecies)
	r.Get("/species/{specie_id:[0-9]+}", lookupHandler.GetSpecie)

	r.Get("/directors", lookupHandler.ListDirectors)
	r.Get("/directors/{director_id:[0-9]+}", lookupHandler.GetDirector)

	r.Get("/user/{user_id:[0-9]+}/favorites", favoriteHandler.ListUserFavorites)

	// the planet routes take their ids in opposite orders
	r.Post("/favorite/planet/{planet_id:[0-9]+}/user/{user_id:[0-9]+}", favoriteHandler.AddFavoritePlanet)
	r.Delete("/favorite/planet/{user_id:[0-9]+}/{planet_id:[0-9]+}", favoriteHandler.DeleteFavoritePlanet)

	r.Post("/favorite/people/{user_id:[0-9]+}/{people_id:[0-9]+}", favoriteHandler.AddFavoritePeople)
	r.Delete("/favorite/people/{user_id:[0-9]+}/{people_id:[0-9]+}", favoriteHandler.DeleteFavoritePeople)

	return r
}
