package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/haeun0228/powerBoost/app/apperrors"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps a classified outcome to a status code and a JSON body. The
// wrapped cause of unclassified errors never reaches the client.
func sendError(w http.ResponseWriter, err error) {
	sendJSON(w, apperrors.HTTPStatus(err), map[string]string{
		"message": apperrors.Message(err),
	})
}
