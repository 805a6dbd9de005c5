package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/haeun0228/powerBoost/app/services"
)

// AuthController handles registration and login
type AuthController struct {
	users *services.UserService
}

// NewAuthController creates a new AuthController
func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Register handles account creation
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var creds services.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	resp, err := ac.users.Register(creds)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, resp)
}

// Login handles credential verification and token issue
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var creds services.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"message": "invalid JSON body"})
		return
	}

	resp, err := ac.users.Login(creds)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, resp)
}
