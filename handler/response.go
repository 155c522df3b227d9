package handler

import (
	"net/http"

	"github.com/dmitrymomot/payloadkit/pkg/response"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return response.Render(w, r, j.status, j.body)
}

// JSON returns a Response writing body with status.
// The pretty query flag of the request controls indentation.
func JSON(status int, body any) Response {
	return jsonResponse{status: status, body: body}
}

// JSONError returns a Response with the single-entry {"error": message} body.
func JSONError(status int, message string) Response {
	return JSON(status, map[string]string{"error": message})
}
