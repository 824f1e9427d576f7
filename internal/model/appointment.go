package model

import (
	"time"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const PaymentStatusPending = "pending"

type Appointment struct {
	ID              string    `db:"id" json:"id" bson:"_id"`
	UserID          string    `db:"user_id" json:"user_id" bson:"user_id"`
	AppointmentDate time.Time `db:"appointment_date" json:"appointment_date" bson:"appointment_date"`
	Status          string    `db:"status" json:"status" bson:"status"`
	PaymentStatus   string    `db:"payment_status" json:"payment_status" bson:"payment_status"`
	Amount          float64   `db:"amount" json:"amount" bson:"amount"`
	Notes           *string   `db:"notes" json:"notes" bson:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at" bson:"created_at"`
}
