package shelters

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shelter-registry/internal/middleware"
	"shelter-registry/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/shelters", func(sr chi.Router) {
		sr.Post("/", createShelterHandler(svc))
		sr.Get("/", listSheltersHandler(svc))
		sr.Get("/{shelterID}", getShelterHandler(svc))
	})
}

type createShelterRequest struct {
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	ShelteredPeople *int    `json:"shelteredPeople"`
	Capacity        *int    `json:"capacity"`
	Verified        bool    `json:"verified"`
	PetFriendly     *bool   `json:"petFriendly"`
	Contact         *string `json:"contact"`
	Pix             *string `json:"pix"`
}

type shelterResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	ShelteredPeople *int      `json:"shelteredPeople"`
	Capacity        *int      `json:"capacity"`
	Verified        bool      `json:"verified"`
	PetFriendly     *bool     `json:"petFriendly"`
	Contact         *string   `json:"contact"`
	Pix             *string   `json:"pix"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// errorResponse: el cliente muestra Message en el toast.
type errorResponse struct {
	Message string                 `json:"message"`
	Fields  validation.FieldErrors `json:"fields,omitempty"`
}

// createShelterHandler godoc
// @Summary  Cadastra um novo abrigo
// @Tags     shelters
// @Accept   json
// @Produce  json
// @Param    body body createShelterRequest true "abrigo"
// @Success  201 {object} shelterResponse
// @Failure  400 {object} errorResponse
// @Failure  401 {object} errorResponse
// @Router   /shelters [post]
func createShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}

		var req createShelterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json", nil)
			return
		}

		sh, err := svc.Create(r.Context(), userID, CreateInput(req))
		if err != nil {
			var verr *ValidationError
			switch {
			case errors.As(err, &verr):
				writeError(w, http.StatusBadRequest, verr.Error(), verr.Fields)
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error(), nil)
			default:
				writeError(w, http.StatusInternalServerError, "internal error", nil)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toShelterResponse(sh))
	}
}

// listSheltersHandler godoc
// @Summary  Lista os abrigos
// @Tags     shelters
// @Produce  json
// @Success  200 {array} shelterResponse
// @Router   /shelters [get]
func listSheltersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error", nil)
			return
		}

		out := make([]shelterResponse, 0, len(items))
		for _, sh := range items {
			out = append(out, toShelterResponse(sh))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getShelterHandler godoc
// @Summary  Detalhe de um abrigo
// @Tags     shelters
// @Produce  json
// @Param    shelterID path string true "id do abrigo"
// @Success  200 {object} shelterResponse
// @Failure  404 {object} errorResponse
// @Router   /shelters/{shelterID} [get]
func getShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sh, err := svc.GetByID(r.Context(), chi.URLParam(r, "shelterID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "shelter not found", nil)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error", nil)
			return
		}
		writeJSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

func toShelterResponse(s Shelter) shelterResponse {
	return shelterResponse{
		ID:              s.ID,
		Name:            s.Name,
		Address:         s.Address,
		ShelteredPeople: s.ShelteredPeople,
		Capacity:        s.Capacity,
		Verified:        s.Verified,
		PetFriendly:     s.PetFriendly,
		Contact:         s.Contact,
		Pix:             s.Pix,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, fields validation.FieldErrors) {
	writeJSON(w, status, errorResponse{Message: msg, Fields: fields})
}
