package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a named route parameter from the request context,
// uppercased and trimmed the way airport and carrier codes are stored.
func ExtractParam(r *http.Request, name string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return strings.ToUpper(strings.TrimSpace(params.ByName(name)))
}
