package restapi

import (
	"errors"
	"net/http"

	"delaycast.arrivals.org/internal/models"
	"delaycast.arrivals.org/internal/reference"
	"delaycast.arrivals.org/internal/utils"
)

func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	origin := utils.ExtractParam(r, "origin")
	dest := utils.ExtractParam(r, "dest")

	fieldErrors := make(map[string][]string)
	if err := utils.ValidateAirportCode(origin); err != nil {
		fieldErrors["origin"] = append(fieldErrors["origin"], err.Error())
	}
	if err := utils.ValidateAirportCode(dest); err != nil {
		fieldErrors["dest"] = append(fieldErrors["dest"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	distance, err := api.Refs.Distance(origin, dest)
	if err != nil {
		if errors.Is(err, reference.ErrUnknownRoute) {
			api.notFoundResponse(w, r, err.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.RouteEntry{Origin: origin, Dest: dest, Distance: distance}
	api.sendResponse(w, r, models.NewOKResponse(entry))
}
