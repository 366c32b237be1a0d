package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newskoop/newsroom/internal/auth"
	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/models/dtos/requests"
	"newskoop/newsroom/internal/models/dtos/responses"
	"newskoop/newsroom/internal/services"
)

// ListStationsHandler handles GET /api/v1/stations
func ListStationsHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations, err := stationSvc.List(r.Context(), auth.GetActor(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "stations", responses.NewStationResponses(stations))
	}
}

// GetStationHandler handles GET /api/v1/stations/{id}
func GetStationHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		station, err := stationSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		contact, err := stationSvc.PrimaryContact(r.Context(), station.ID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "station", responses.NewStationDetailResponse(station, contact))
	}
}

// CreateStationHandler handles POST /api/v1/stations
func CreateStationHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.StationCreateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		station, err := stationSvc.Create(r.Context(), auth.GetActor(r.Context()), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "station created", responses.NewStationResponse(station), http.StatusCreated)
	}
}

// UpdateStationHandler handles PUT /api/v1/stations/{id}
func UpdateStationHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.StationUpdateRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		station, err := stationSvc.Update(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "station updated", responses.NewStationResponse(station))
	}
}

// DeleteStationHandler handles DELETE /api/v1/stations/{id}
func DeleteStationHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := stationSvc.Delete(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "station deleted", nil)
	}
}

// ListStationUsersHandler handles GET /api/v1/stations/{id}/users
func ListStationUsersHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := stationSvc.ListUsers(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "station users", responses.NewUserResponses(users))
	}
}

// AddStationUserHandler handles POST /api/v1/stations/{id}/users
func AddStationUserHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stationID := chi.URLParam(r, "id")

		var req requests.RadioUserCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondServiceError(w, r, services.NewValidationError("body", "invalid JSON payload"))
			return
		}
		// The station comes from the URL, not the body.
		req.RadioStationID = stationID
		if err := validate.Struct(&req); err != nil {
			respondServiceError(w, r, services.NewValidationError("body", "validation failed"))
			return
		}

		user, err := stationSvc.AddUser(r.Context(), auth.GetActor(r.Context()), stationID, &req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "station user created", responses.NewUserResponse(user), http.StatusCreated)
	}
}

// SetPrimaryContactHandler handles POST /api/v1/stations/{id}/primary-contact
func SetPrimaryContactHandler(stationSvc *services.StationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SetPrimaryContactRequest
		if err := bind(r, &req); err != nil {
			respondServiceError(w, r, err)
			return
		}

		if err := stationSvc.SetPrimaryContact(r.Context(), auth.GetActor(r.Context()), chi.URLParam(r, "id"), req.UserID); err != nil {
			respondServiceError(w, r, err)
			return
		}
		common.RespondSuccess(w, "primary contact updated", nil)
	}
}
