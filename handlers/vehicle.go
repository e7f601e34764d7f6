package handlers

import (
	"net/http"

	"github.com/4GeeksAcademy/cdavis-starwars-api/models"
	"github.com/4GeeksAcademy/cdavis-starwars-api/repository"
)

type VehicleHandler struct {
	Repo repository.VehicleRepository
}

type VehicleResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model"`
}

func toVehicleResponse(v *models.Vehicle) VehicleResponse {
	return VehicleResponse{ID: v.VehicleID, Name: v.Name, Model: v.Model}
}

func (h *VehicleHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, "vehicles", h.Repo.ListAll, toVehicleResponse)
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	serveOne(w, r, "vehicle_id", "vehicle", errorBody("Vehicle not found"), h.Repo.GetByID, toVehicleResponse)
}
