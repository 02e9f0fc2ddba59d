package restapi

import (
	"errors"
	"net/http"

	"delaycast.arrivals.org/internal/models"
	"delaycast.arrivals.org/internal/reference"
	"delaycast.arrivals.org/internal/utils"
)

func (api *RestAPI) airportHandler(w http.ResponseWriter, r *http.Request) {
	code := utils.ExtractParam(r, "code")

	if err := utils.ValidateAirportCode(code); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"code": {err.Error()},
		})
		return
	}

	lat, lon, err := api.Refs.Coordinates(code)
	if err != nil {
		if errors.Is(err, reference.ErrUnknownAirport) {
			api.notFoundResponse(w, r, err.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.AirportEntry{Code: code, Lat: lat, Lon: lon}
	api.sendResponse(w, r, models.NewOKResponse(entry))
}
