package server

import (
	"net/http"

	"go.uber.org/zap"
)

func (s *Server) handleUserSpendSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.storage.UserSpendSummaries(r.Context())
	if err != nil {
		s.logger.Error("failed to build spend summaries", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleTopDeliveryPersons(w http.ResponseWriter, r *http.Request) {
	s.respondTopDeliveryPersons(w, r, false)
}

func (s *Server) handleTopDeliveryPersonsDetailed(w http.ResponseWriter, r *http.Request) {
	s.respondTopDeliveryPersons(w, r, true)
}

func (s *Server) respondTopDeliveryPersons(w http.ResponseWriter, r *http.Request, detailed bool) {
	ranks, err := s.storage.TopDeliveryPersons(r.Context(), detailed)
	if err != nil {
		s.logger.Error("failed to rank delivery persons", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, ranks)
}

func (s *Server) handleBookingsByDate(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.storage.BookingsByDate(r.Context())
	if err != nil {
		s.logger.Error("failed to bucket bookings by date", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, buckets)
}
