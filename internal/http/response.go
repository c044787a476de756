package http

import (
	"encoding/json"
	"mime"
	"net/http"
)

// Response messages, kept stable for API consumers.
const (
	msgMissingFields  = "Unprocessable entity: Missing required fields"
	msgEmptyFields    = "Unprocessable entity: Empty fields are not accepted"
	msgBadISBN        = "Unprocessable entity: ISBN must be only 13 numbers"
	msgBadGenre       = "Unprocessable entity: Invalid genre value"
	msgBadJSON        = "Unprocessable entity: Invalid JSON body"
	msgDuplicateISBN  = "Error: Book already exists"
	msgBookNotFound   = "Not Found: Book not found"
	msgRatingNotFound = "Not Found: book not found"
	msgMissingValue   = "Unprocessable entity: You should enter a value field"
	msgBadValue       = "Unprocessable entity: A value should be a 1-5 integer"
	msgServerError    = "Internal server error"
	msgNotJSON        = "Unsupported Media Type: Only JSON is supported."
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeMediaTypeError(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnsupportedMediaType, map[string]string{"error": msgNotJSON})
}

func isJSONRequest(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
