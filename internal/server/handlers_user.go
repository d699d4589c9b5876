package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"parcelverge/internal/auth"
	"parcelverge/internal/metrics"
	"parcelverge/internal/storage"
)

func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var tokenRequest struct {
		Email string `json:"email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&tokenRequest); err != nil || tokenRequest.Email == "" {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.auth.Issue(tokenRequest.Email)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	auth.SetTokenCookie(w, token)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	auth.ClearTokenCookie(w)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var user storage.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if user.Email == "" {
		respondError(w, http.StatusBadRequest, "Missing email")
		return
	}

	result, err := s.storage.RegisterUser(r.Context(), user)
	if err != nil {
		s.logger.Error("failed to register user", zap.String("email", user.Email), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("register").Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !result.Created {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"message":    "User already exists",
			"insertedId": nil,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"insertedId": result.InsertedID})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := s.storage.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error("failed to get user", zap.String("email", email), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handlePromoteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.storage.PromoteToDeliveryPerson(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error("failed to promote user", zap.String("id", id), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("promote").Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := s.storage.GetUserByID(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to load promoted user", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleUserCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.storage.CountUsers(r.Context())
	if err != nil {
		s.logger.Error("failed to count users", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (s *Server) handleListDeliveryPersons(w http.ResponseWriter, r *http.Request) {
	users, err := s.storage.ListDeliveryPersons(r.Context())
	if err != nil {
		s.logger.Error("failed to list delivery persons", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, users)
}
