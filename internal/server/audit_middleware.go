package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"parcelverge/internal/auth"
)

// Skip response capture for the verbose read-only endpoints; the audit trail
// is about mutations and access, not payload mirroring.
var auditResponseSkip = map[string]struct{}{
	"/metrics":    {},
	"/allReviews": {},
}

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r.URL.Path, r.Method),
		}

		if cookie, err := r.Cookie(auth.CookieName); err == nil {
			if claims, err := s.auth.Verify(cookie.Value); err == nil {
				entry.UserEmail = claims.Email
			}
		}

		entry.ParcelID = parcelIDFromPath(r.URL.Path)

		var requestBody []byte
		if r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if entry.ParcelID != "" && strings.HasPrefix(r.URL.Path, "/updateParcelStatus/") {
				var statusRequest struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(requestBody, &statusRequest); err == nil {
					if parcel, err := s.storage.GetParcel(r.Context(), entry.ParcelID); err == nil {
						entry.OldStatus = string(parcel.Status)
						entry.NewStatus = statusRequest.Status
					}
				}
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		if _, skip := auditResponseSkip[r.URL.Path]; !skip {
			entry.Response = string(wrw.GetBody())
		}

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

// parcelIDFromPath pulls the booking id out of the parcel-scoped routes.
func parcelIDFromPath(path string) string {
	for _, prefix := range []string{"/parcel/", "/updateParcel/", "/updateParcelStatus/", "/cancelBooking/", "/parcelBook/"} {
		if strings.HasPrefix(path, prefix) {
			rest := strings.TrimPrefix(path, prefix)
			if i := strings.IndexByte(rest, '/'); i >= 0 {
				rest = rest[:i]
			}
			if prefix == "/parcelBook/" {
				// That segment is an email, not a parcel id.
				return ""
			}
			return rest
		}
	}
	return ""
}

func handlerName(path string, method string) string {
	switch {
	case path == "/jwt":
		return "handleIssueToken"
	case path == "/logout":
		return "handleLogout"
	case path == "/register":
		return "handleRegister"
	case path == "/user/parcel/Booking":
		return "handleBookParcel"
	case strings.HasPrefix(path, "/parcelBook/"):
		return "handleListParcelsByEmail"
	case strings.HasPrefix(path, "/updateParcelStatus/"):
		return "handleUpdateParcelStatus"
	case strings.HasPrefix(path, "/updateParcel/"):
		return "handleReplaceParcel"
	case strings.HasPrefix(path, "/cancelBooking/"):
		return "handleCancelBooking"
	case strings.HasPrefix(path, "/parcel/") && strings.HasSuffix(path, "/history"):
		return "handleParcelHistory"
	case strings.HasPrefix(path, "/parcel/") && method == http.MethodPut:
		return "handleAssignParcel"
	case strings.HasPrefix(path, "/parcel/"):
		return "handleGetParcel"
	case path == "/parcels":
		return "handleFilterParcels"
	case path == "/parcel-counts":
		return "handleParcelCounts"
	case path == "/parcelsCount":
		return "handleParcelsCount"
	case strings.HasPrefix(path, "/users/") && strings.HasSuffix(path, "/promote"):
		return "handlePromoteUser"
	case strings.HasPrefix(path, "/user/"):
		return "handleGetUser"
	case path == "/userCount":
		return "handleUserCount"
	case path == "/deliveryMen":
		return "handleListDeliveryPersons"
	case path == "/review":
		return "handleAddReview"
	case strings.HasPrefix(path, "/review/"):
		return "handleReviewsByDeliveryPerson"
	case path == "/allReviews":
		return "handleAllReviews"
	case strings.HasPrefix(path, "/average-review/"):
		return "handleAverageReview"
	case path == "/aggregateDataByEmail":
		return "handleUserSpendSummaries"
	case path == "/bookings-by-date":
		return "handleBookingsByDate"
	case path == "/allDeliveryMen":
		return "handleTopDeliveryPersonsDetailed"
	case path == "/topDeliveryMen":
		return "handleTopDeliveryPersons"
	case path == "/health":
		return "handleHealth"
	case path == "/metrics":
		return "metrics"
	}
	return "unknown"
}
