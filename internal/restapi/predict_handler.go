package restapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"delaycast.arrivals.org/internal/classifier"
	"delaycast.arrivals.org/internal/features"
	"delaycast.arrivals.org/internal/models"
	"delaycast.arrivals.org/internal/reference"
	"delaycast.arrivals.org/internal/utils"
)

type predictRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Airline     string `json:"airline"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
}

// timestampFormats accepted for departure and arrival. The short form is what
// an HTML datetime-local input submits.
var timestampFormats = []string{time.RFC3339, "2006-01-02T15:04"}

func parseTimestamp(value string) (time.Time, bool) {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (api *RestAPI) predictHandler(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"request body must be valid JSON"},
		})
		return
	}

	fieldErrors := make(map[string][]string)
	origin := strings.ToUpper(strings.TrimSpace(req.Origin))
	dest := strings.ToUpper(strings.TrimSpace(req.Destination))

	if err := utils.ValidateAirportCode(origin); err != nil {
		fieldErrors["origin"] = append(fieldErrors["origin"], err.Error())
	}
	if err := utils.ValidateAirportCode(dest); err != nil {
		fieldErrors["destination"] = append(fieldErrors["destination"], err.Error())
	}
	if strings.TrimSpace(req.Airline) == "" {
		fieldErrors["airline"] = append(fieldErrors["airline"], "airline is required")
	}

	departure, ok := parseTimestamp(req.Departure)
	if !ok {
		fieldErrors["departure"] = append(fieldErrors["departure"], "departure must be a valid timestamp")
	}
	arrival, ok := parseTimestamp(req.Arrival)
	if !ok {
		fieldErrors["arrival"] = append(fieldErrors["arrival"], "arrival must be a valid timestamp")
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	trip := features.Trip{
		Origin:    origin,
		Dest:      dest,
		Carrier:   api.Refs.CarrierCode(req.Airline),
		Departure: departure,
		Arrival:   arrival,
	}

	row, err := features.BuildRow(trip, api.Refs)
	if err != nil {
		if errors.Is(err, reference.ErrUnknownAirport) || errors.Is(err, reference.ErrUnknownRoute) {
			api.notFoundResponse(w, r, err.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	label, err := api.Model.Predict(row)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NewPredictionEntry(row, label, classifier.Outcome(label), api.Model.Version())
	api.sendResponse(w, r, models.NewOKResponse(entry))
}
