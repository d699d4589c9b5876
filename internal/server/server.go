//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_repository
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"parcelverge/internal/auth"
	"parcelverge/internal/storage"
)

type Storage interface {
	BookParcel(ctx context.Context, parcel storage.Parcel) (*storage.Parcel, error)
	GetParcel(ctx context.Context, id string) (*storage.Parcel, error)
	ListParcelsByEmail(ctx context.Context, email string) ([]storage.Parcel, error)
	FilterParcels(ctx context.Context, filter storage.ParcelFilter) ([]storage.Parcel, error)
	ReplaceParcel(ctx context.Context, id string, parcel storage.Parcel) (storage.UpdateResult, error)
	UpdateParcelStatus(ctx context.Context, id string, status storage.Status) (storage.UpdateResult, error)
	AssignParcel(ctx context.Context, id, deliveryPersonID, approximateDate string, status storage.Status) (storage.UpdateResult, error)
	DeleteParcel(ctx context.Context, id string) (storage.DeleteResult, error)
	CountParcels(ctx context.Context) (int64, error)
	ParcelCounts(ctx context.Context) (storage.ParcelCounts, error)
	ParcelHistory(ctx context.Context, id string) ([]storage.StatusChange, error)

	RegisterUser(ctx context.Context, user storage.User) (storage.RegisterResult, error)
	GetUserByEmail(ctx context.Context, email string) (*storage.User, error)
	GetUserByID(ctx context.Context, id string) (*storage.User, error)
	PromoteToDeliveryPerson(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int64, error)
	ListDeliveryPersons(ctx context.Context) ([]storage.User, error)

	AddReview(ctx context.Context, review storage.Review) (*storage.Review, error)
	ReviewsByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]storage.Review, error)
	AverageReview(ctx context.Context, deliveryPersonID string) (storage.AverageReviewResult, error)
	AllReviews(ctx context.Context) ([]storage.Review, error)

	UserSpendSummaries(ctx context.Context) ([]storage.UserSpendSummary, error)
	TopDeliveryPersons(ctx context.Context, detailed bool) ([]storage.DeliveryPersonRank, error)
	BookingsByDate(ctx context.Context) ([]storage.DateBucket, error)
}

type Authenticator interface {
	Issue(email string) (string, error)
	Verify(token string) (*auth.Claims, error)
}

type Server struct {
	storage      Storage
	auth         Authenticator
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(st Storage, authenticator Authenticator, sink AuditSink, logger *zap.Logger) *Server {
	return &Server{
		storage:      st,
		auth:         authenticator,
		logger:       logger,
		AuditManager: NewAuditManager(2, 5, 500*time.Millisecond, sink, logger),
	}
}

// Run starts the HTTP server and blocks until it stops. Shutdown is driven by
// the caller cancelling ctx (see cmd/api).
func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)

	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/jwt", s.handleIssueToken).Methods(http.MethodPost)
	router.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	router.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)

	router.HandleFunc("/user/parcel/Booking", s.handleBookParcel).Methods(http.MethodPost)
	router.HandleFunc("/parcelBook/{email}", s.requireAuth(s.handleListParcelsByEmail)).Methods(http.MethodGet)
	router.HandleFunc("/parcel/{id}/history", s.requireAuth(s.handleParcelHistory)).Methods(http.MethodGet)
	router.HandleFunc("/parcel/{id}", s.requireAuth(s.handleGetParcel)).Methods(http.MethodGet)
	router.HandleFunc("/parcel/{id}", s.handleAssignParcel).Methods(http.MethodPut)
	router.HandleFunc("/updateParcel/{id}", s.handleReplaceParcel).Methods(http.MethodPut)
	router.HandleFunc("/updateParcelStatus/{id}", s.requireAuth(s.handleUpdateParcelStatus)).Methods(http.MethodPatch)
	router.HandleFunc("/cancelBooking/{id}", s.requireAuth(s.handleCancelBooking)).Methods(http.MethodDelete)
	router.HandleFunc("/parcels", s.requireAuth(s.handleFilterParcels)).Methods(http.MethodGet)
	router.HandleFunc("/parcel-counts", s.handleParcelCounts).Methods(http.MethodGet)
	router.HandleFunc("/parcelsCount", s.handleParcelsCount).Methods(http.MethodGet)

	router.HandleFunc("/user/{email}", s.handleGetUser).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}/promote", s.requireAuth(s.handlePromoteUser)).Methods(http.MethodPost)
	router.HandleFunc("/userCount", s.handleUserCount).Methods(http.MethodGet)
	router.HandleFunc("/deliveryMen", s.requireAuth(s.handleListDeliveryPersons)).Methods(http.MethodGet)

	router.HandleFunc("/review", s.requireAuth(s.handleAddReview)).Methods(http.MethodPost)
	router.HandleFunc("/review/{id}", s.requireAuth(s.handleReviewsByDeliveryPerson)).Methods(http.MethodGet)
	router.HandleFunc("/allReviews", s.handleAllReviews).Methods(http.MethodGet)
	router.HandleFunc("/average-review/{deliverymenId}", s.requireAuth(s.handleAverageReview)).Methods(http.MethodGet)

	router.HandleFunc("/aggregateDataByEmail", s.requireAuth(s.handleUserSpendSummaries)).Methods(http.MethodGet)
	router.HandleFunc("/bookings-by-date", s.handleBookingsByDate).Methods(http.MethodGet)
	router.HandleFunc("/allDeliveryMen", s.requireAuth(s.handleTopDeliveryPersonsDetailed)).Methods(http.MethodGet)
	router.HandleFunc("/topDeliveryMen", s.handleTopDeliveryPersons).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return s.auditLogMiddleware(router)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
