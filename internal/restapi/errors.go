package restapi

import (
	"encoding/json"
	"net/http"

	"delaycast.arrivals.org/internal/models"
)

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)

	response := models.ResponseModel{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     2,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusInternalServerError)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// notFoundResponse reports a failed reference lookup. The pipeline produces
// no partial rows, so the caller gets the reason, not an inferred zero.
func (api *RestAPI) notFoundResponse(w http.ResponseWriter, r *http.Request, text string) {
	response := models.ResponseModel{
		Code:        http.StatusNotFound,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusNotFound)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode not found response", "error", err)
	}
}
