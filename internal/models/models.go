package models

import "time"

const (
	TherapistSandra = "sandra"
	TherapistBrett  = "brett"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	UserRoleAdmin = "admin"
)

// SessionPriceCents is the flat session fee for every booking. Payment is
// collected at the session or via invoice, never online.
const SessionPriceCents = 11000

const SessionPriceDisplay = "$110.00 AUD"

type Slot struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Therapist string    `bson:"therapist" json:"therapist"`
	Date      string    `bson:"slot_date" json:"slot_date"`
	StartTime string    `bson:"start_time" json:"start_time"`
	EndTime   string    `bson:"end_time" json:"end_time"`
	IsBooked  bool      `bson:"is_booked" json:"is_booked"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Booking struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Reference       string    `bson:"reference" json:"reference"`
	SlotID          string    `bson:"slot_id" json:"slot_id"`
	Therapist       string    `bson:"therapist" json:"therapist"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string    `bson:"customer_phone" json:"customer_phone"`
	CustomerAddress string    `bson:"customer_address,omitempty" json:"customer_address,omitempty"`
	SessionPrice    int       `bson:"session_price" json:"session_price"`
	PaymentStatus   string    `bson:"payment_status" json:"payment_status"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

type ContactMessage struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Setting struct {
	Key       string    `bson:"_id" json:"key"`
	Value     string    `bson:"value" json:"value"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
