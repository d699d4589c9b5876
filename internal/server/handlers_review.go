package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"parcelverge/internal/metrics"
	"parcelverge/internal/storage"
)

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var review storage.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if review.DeliveryPersonID == "" {
		respondError(w, http.StatusBadRequest, "Missing deliveryMenId")
		return
	}
	if review.Rating < 1 || review.Rating > 5 {
		respondError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	added, err := s.storage.AddReview(r.Context(), review)
	if err != nil {
		s.logger.Error("failed to add review", zap.String("deliveryPersonId", review.DeliveryPersonID), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("review").Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.ReviewsAddedTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]string{"insertedId": added.ID})
}

func (s *Server) handleReviewsByDeliveryPerson(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	reviews, err := s.storage.ReviewsByDeliveryPerson(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to list reviews", zap.String("deliveryPersonId", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(reviews) == 0 {
		respondError(w, http.StatusNotFound, "No reviews found")
		return
	}

	respondJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.storage.AllReviews(r.Context())
	if err != nil {
		s.logger.Error("failed to list reviews", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleAverageReview(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["deliverymenId"]

	result, err := s.storage.AverageReview(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to average reviews", zap.String("deliveryPersonId", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Clients expect the aggregate wrapped in a single-element array.
	respondJSON(w, http.StatusOK, map[string][]storage.AverageReviewResult{
		"averageReview": {result},
	})
}
