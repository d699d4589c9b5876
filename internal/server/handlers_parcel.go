package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"parcelverge/internal/metrics"
	"parcelverge/internal/storage"
)

func (s *Server) handleBookParcel(w http.ResponseWriter, r *http.Request) {
	var parcel storage.Parcel
	if err := json.NewDecoder(r.Body).Decode(&parcel); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if parcel.Email == "" {
		respondError(w, http.StatusBadRequest, "Missing email")
		return
	}

	booked, err := s.storage.BookParcel(r.Context(), parcel)
	if err != nil {
		s.logger.Error("failed to book parcel", zap.String("email", parcel.Email), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("book").Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.BookingsCreatedTotal.Inc()
	respondJSON(w, http.StatusOK, map[string]string{"insertedId": booked.ID})
}

func (s *Server) handleListParcelsByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	// Customers only see their own bookings.
	claims := claimsFromContext(r.Context())
	if claims == nil || claims.Email != email {
		respondError(w, http.StatusForbidden, "Forbidden access")
		return
	}

	parcels, err := s.storage.ListParcelsByEmail(r.Context(), email)
	if err != nil {
		s.logger.Error("failed to list parcels", zap.String("email", email), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, parcels)
}

func (s *Server) handleGetParcel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	parcel, err := s.storage.GetParcel(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Parcel not found")
			return
		}
		s.logger.Error("failed to get parcel", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, parcel)
}

func (s *Server) handleFilterParcels(w http.ResponseWriter, r *http.Request) {
	filter := storage.ParcelFilter{
		FromDate:         r.URL.Query().Get("fromDate"),
		ToDate:           r.URL.Query().Get("toDate"),
		DeliveryPersonID: r.URL.Query().Get("deliveryManId"),
	}

	parcels, err := s.storage.FilterParcels(r.Context(), filter)
	if err != nil {
		s.logger.Error("failed to filter parcels", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(parcels) == 0 {
		respondError(w, http.StatusNotFound, "Not found")
		return
	}

	respondJSON(w, http.StatusOK, parcels)
}

func (s *Server) handleReplaceParcel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var parcel storage.Parcel
	if err := json.NewDecoder(r.Body).Decode(&parcel); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !parcel.Status.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	result, err := s.storage.ReplaceParcel(r.Context(), id, parcel)
	if err != nil {
		s.logger.Error("failed to update parcel", zap.String("id", id), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("update").Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpdateParcelStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var statusRequest struct {
		Status storage.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !statusRequest.Status.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	result, err := s.storage.UpdateParcelStatus(r.Context(), id, statusRequest.Status)
	if err != nil {
		s.logger.Error("failed to update parcel status", zap.String("id", id), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("status").Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(statusRequest.Status)).Inc()
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAssignParcel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var assignRequest struct {
		DeliveryPersonID        string         `json:"deliveryManId"`
		ApproximateDeliveryDate string         `json:"approximateDeliveryDate"`
		Status                  storage.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&assignRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if assignRequest.DeliveryPersonID == "" || assignRequest.ApproximateDeliveryDate == "" {
		respondError(w, http.StatusBadRequest, "Missing deliveryManId or approximateDeliveryDate")
		return
	}
	if assignRequest.Status == "" {
		assignRequest.Status = storage.StatusOnTheWay
	}
	if !assignRequest.Status.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	result, err := s.storage.AssignParcel(r.Context(), id, assignRequest.DeliveryPersonID, assignRequest.ApproximateDeliveryDate, assignRequest.Status)
	if err != nil {
		s.logger.Error("failed to assign parcel", zap.String("id", id), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("assign").Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.AssignmentsTotal.Inc()
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := s.storage.DeleteParcel(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to cancel booking", zap.String("id", id), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("cancel").Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleParcelCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := s.storage.ParcelCounts(r.Context())
	if err != nil {
		s.logger.Error("failed to compute parcel counts", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, counts)
}

func (s *Server) handleParcelsCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.storage.CountParcels(r.Context())
	if err != nil {
		s.logger.Error("failed to count parcels", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (s *Server) handleParcelHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	history, err := s.storage.ParcelHistory(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to get parcel history", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, history)
}
