package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Parcel struct {
	ID                       string    `db:"id"`
	Name                     string    `db:"name"`
	Email                    string    `db:"email"`
	PhoneNumber              string    `db:"phone_number"`
	ParcelType               string    `db:"parcel_type"`
	ParcelWeight             float64   `db:"parcel_weight"`
	ReceiverName             string    `db:"receiver_name"`
	ReceiverPhoneNumber      string    `db:"receiver_phone_number"`
	ParcelDeliveryAddress    string    `db:"parcel_delivery_address"`
	DeliveryAddressLatitude  float64   `db:"delivery_address_latitude"`
	DeliveryAddressLongitude float64   `db:"delivery_address_longitude"`
	RequestedDeliveryDate    string    `db:"requested_delivery_date"`
	Price                    float64   `db:"price"`
	BookingDate              time.Time `db:"booking_date"`
	Status                   string    `db:"status"`
	DeliveryPersonID         *string   `db:"delivery_person_id"`
	ApproximateDeliveryDate  *string   `db:"approximate_delivery_date"`
	CreatedAt                time.Time `db:"created_at"`
	UpdatedAt                time.Time `db:"updated_at"`
}

type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	Name        string    `db:"name"`
	PhoneNumber string    `db:"phone_number"`
	ImageURL    string    `db:"image_url"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
}

type Review struct {
	ID               string    `db:"id"`
	DeliveryPersonID string    `db:"delivery_person_id"`
	Rating           int       `db:"rating"`
	Content          string    `db:"content"`
	CreatedAt        time.Time `db:"created_at"`
}

type StatusHistoryEntry struct {
	ID        int64     `db:"id"`
	ParcelID  string    `db:"parcel_id"`
	Status    string    `db:"status"`
	ChangedAt time.Time `db:"changed_at"`
}

// UserSpend is the row shape of the users-joined-with-parcels aggregation.
type UserSpend struct {
	ID               string  `db:"id"`
	Email            string  `db:"email"`
	Name             string  `db:"name"`
	PhoneNumber      string  `db:"phone_number"`
	ImageURL         string  `db:"image_url"`
	Role             string  `db:"role"`
	NumberOfBookings int64   `db:"number_of_bookings"`
	TotalSpent       float64 `db:"total_spent"`
}

// DeliveryPersonCount is one group of the bookings-per-assignee aggregation.
type DeliveryPersonCount struct {
	DeliveryPersonID string `db:"delivery_person_id"`
	Count            int64  `db:"count"`
}

// DateCount is one bucket of the bookings-by-date histogram.
type DateCount struct {
	Date  string `db:"date"`
	Count int64  `db:"count"`
}
