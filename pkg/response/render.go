package response

import (
	"encoding/json"
	"net/http"
)

// PrettyParam is the query flag that switches on indented output.
const PrettyParam = "pretty"

// Pretty reports whether the request asked for indented JSON.
// Only presence of the flag matters, not its value.
func Pretty(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}
	_, ok := r.URL.Query()[PrettyParam]
	return ok
}

// Render writes body as JSON with the given status.
// Indentation follows the pretty flag; the structure never changes.
func Render(w http.ResponseWriter, r *http.Request, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	if Pretty(r) {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(body)
}
