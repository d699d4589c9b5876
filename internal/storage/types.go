package storage

import "time"

// Status is the closed set of parcel lifecycle labels. Transitions between
// them are deliberately not validated: any status may follow any other, and
// two concurrent writers race with last-write-wins. Only membership in the
// set is checked at the API boundary.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusOnTheWay  Status = "OnTheWay"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

const (
	RoleCustomer       = "customer"
	RoleDeliveryPerson = "deliveryPerson"
)

type Parcel struct {
	ID                       string    `json:"_id"`
	Name                     string    `json:"name"`
	Email                    string    `json:"email"`
	PhoneNumber              string    `json:"phoneNumber"`
	ParcelType               string    `json:"parcelType"`
	ParcelWeight             float64   `json:"parcelWeight"`
	ReceiverName             string    `json:"receiverName"`
	ReceiverPhoneNumber      string    `json:"receiverPhoneNumber"`
	ParcelDeliveryAddress    string    `json:"parcelDeliveryAddress"`
	DeliveryAddressLatitude  float64   `json:"deliveryAddressLatitude"`
	DeliveryAddressLongitude float64   `json:"deliveryAddressLongitude"`
	RequestedDeliveryDate    string    `json:"requestedDeliveryDate"`
	Price                    float64   `json:"price"`
	BookingDate              time.Time `json:"bookingDate"`
	Status                   Status    `json:"status"`
	DeliveryPersonID         *string   `json:"deliveryManId"`
	ApproximateDeliveryDate  *string   `json:"approximateDeliveryDate"`
}

type User struct {
	ID          string `json:"_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	ImageURL    string `json:"imageUrl"`
	Role        string `json:"role"`
}

type Review struct {
	ID               string    `json:"_id"`
	DeliveryPersonID string    `json:"deliveryMenId"`
	Rating           int       `json:"rating"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"createdAt"`
}

type StatusChange struct {
	ParcelID  string    `json:"parcelId"`
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// ParcelFilter narrows the admin parcel listing. Empty fields are
// unconstrained; the date range is inclusive on both ends.
type ParcelFilter struct {
	FromDate         string
	ToDate           string
	DeliveryPersonID string
}

// UpdateResult mirrors the shape clients of the original API expect from
// update operations.
type UpdateResult struct {
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// RegisterResult reports whether registration inserted a new user. Registering
// an existing email is a no-op with Created=false.
type RegisterResult struct {
	Created    bool
	InsertedID string
	User       *User
}

type ParcelCounts struct {
	TotalParcels     int64 `json:"totalParcels"`
	DeliveredParcels int64 `json:"deliveredParcels"`
}

type UserSpendSummary struct {
	ID               string  `json:"_id"`
	Email            string  `json:"email"`
	Name             string  `json:"name"`
	PhoneNumber      string  `json:"phoneNumber"`
	ImageURL         string  `json:"imageUrl"`
	Role             string  `json:"role"`
	NumberOfBookings int64   `json:"numberOfParcelsBooked"`
	TotalSpent       float64 `json:"totalSpentAmount"`
}

// DeliveryPersonRank is one entry of the top-delivery-personnel view. When the
// assignee id has no matching user record the profile fields stay empty.
type DeliveryPersonRank struct {
	ID            string  `json:"_id,omitempty"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone,omitempty"`
	Photo         string  `json:"photo"`
	TotalDelivery int64   `json:"totalDelivery"`
	AverageReview float64 `json:"averageReview"`
}

type DateBucket struct {
	Date  string `json:"_id"`
	Count int64  `json:"count"`
}

type AverageReviewResult struct {
	DeliveryPersonID string  `json:"_id"`
	AverageReview    float64 `json:"averageReview"`
}
