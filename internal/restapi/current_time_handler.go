package restapi

import (
	"net/http"
	"time"

	"delaycast.arrivals.org/internal/models"
)

// currentTimeHandler writes a JSON response with information about the
// current time.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	entry := models.NewCurrentTimeModel(time.Now())
	api.sendResponse(w, r, models.NewOKResponse(entry))
}
