package entity

// Known status values. The store accepts any string.
const (
	BookingStatusPending  = "pending"
	BookingStatusAccepted = "accepted"
	BookingStatusRejected = "rejected"
)

// Booking copies the service details at creation time; it does not reference a Service.
type Booking struct {
	Base
	ServiceProviderEmail string `db:"service_provider_email"`
	BuyerEmail           string `db:"buyer_email"`
	ServiceName          string `db:"service_name"`
	ServiceImage         string `db:"service_image"`
	ServicePrice         Price  `db:"service_price"`
	ServiceTakingDate    string `db:"service_taking_date"`
	Message              string `db:"message"`
	Status               string `db:"status"`
}
