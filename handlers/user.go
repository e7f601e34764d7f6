package handlers

import (
	"net/http"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

type UserHandler struct {
	Repo repository.UserRepository
}

// UserResponse never carries the password hash
type UserResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Username    string  `json:"username"`
	Lastname    string  `json:"lastname"`
	Suscription string  `json:"suscription"`
	Email       string  `json:"email"`
	Favorites   *string `json:"favorites"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Username:    u.Username,
		Lastname:    u.Lastname,
		Suscription: u.SuscriptionDates,
		Email:       u.Email,
		Favorites:   u.Favorites,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "users", h.Repo.ListAll, toUserResponse)
}

// GetUser answers a missing user with a "message" key, unlike the other resources.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "user_id", "user", messageBody("User not found"), h.Repo.GetByID, toUserResponse)
}
