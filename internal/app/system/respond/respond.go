// Package respond writes the JSON bodies returned by the public API.
//
// Every error body has the shape {"error": "..."} with an optional
// "details" string.
package respond

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// Error writes {"error": msg} with the given status.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	JSON(w, r, status, ErrorBody{Error: msg})
}

// ErrorDetails writes {"error": msg, "details": details}.
func ErrorDetails(w http.ResponseWriter, r *http.Request, status int, msg, details string) {
	JSON(w, r, status, ErrorBody{Error: msg, Details: details})
}

// MethodNotAllowed is the router's 405 handler.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}

// NotFound is the 404 handler for unknown API routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusNotFound, "Not found")
}
