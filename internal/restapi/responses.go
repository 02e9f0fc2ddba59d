package restapi

import (
	"encoding/json"
	"net/http"

	"delaycast.arrivals.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
