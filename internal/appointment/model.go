package appointment

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusPaid      AppointmentStatus = "paid"
	StatusUnpaid    AppointmentStatus = "unpaid"
)

var validStatuses = map[AppointmentStatus]struct{}{
	StatusPending:   {},
	StatusApproved:  {},
	StatusConfirmed: {},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusPaid:      {},
	StatusUnpaid:    {},
}

// Valid reports whether s is one of the known lifecycle values.
func (s AppointmentStatus) Valid() bool {
	_, ok := validStatuses[s]
	return ok
}

// ParseStatus converts raw input into a status, rejecting unknown values.
func ParseStatus(raw string) (AppointmentStatus, error) {
	s := AppointmentStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Appointment is the persisted record. The JSON tags are the storage layout
// shared with the web client, so they stay camelCase.
type Appointment struct {
	ID              string            `json:"id"`
	DoctorID        string            `json:"doctorId"`
	UserID          string            `json:"userId"`
	DoctorName      string            `json:"doctorName,omitempty"`
	DoctorSpecialty string            `json:"doctorSpecialty,omitempty"`
	DoctorImage     string            `json:"doctorImage,omitempty"`
	DoctorEmail     string            `json:"doctorEmail,omitempty"`
	DoctorPhone     string            `json:"doctorPhone,omitempty"`
	PatientName     string            `json:"patientName,omitempty"`
	PatientEmail    string            `json:"patientEmail,omitempty"`
	PatientPhone    string            `json:"patientPhone,omitempty"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	Reason          string            `json:"reason,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	PaymentStatus   string            `json:"paymentStatus,omitempty"`
	PaymentMethod   string            `json:"paymentMethod,omitempty"`
	PaymentAmount   *float64          `json:"paymentAmount,omitempty"`
}

// NewAppointment is everything the caller supplies on create. The store
// assigns ID and CreatedAt.
type NewAppointment struct {
	DoctorID        string
	UserID          string
	DoctorName      string
	DoctorSpecialty string
	DoctorImage     string
	DoctorEmail     string
	DoctorPhone     string
	PatientName     string
	PatientEmail    string
	PatientPhone    string
	Date            string
	Time            string
	Status          AppointmentStatus
	Notes           string
	Reason          string
	PaymentStatus   string
	PaymentMethod   string
	PaymentAmount   *float64
}

func (n NewAppointment) toAppointment(id string, createdAt time.Time) Appointment {
	return Appointment{
		ID:              id,
		DoctorID:        n.DoctorID,
		UserID:          n.UserID,
		DoctorName:      n.DoctorName,
		DoctorSpecialty: n.DoctorSpecialty,
		DoctorImage:     n.DoctorImage,
		DoctorEmail:     n.DoctorEmail,
		DoctorPhone:     n.DoctorPhone,
		PatientName:     n.PatientName,
		PatientEmail:    n.PatientEmail,
		PatientPhone:    n.PatientPhone,
		Date:            n.Date,
		Time:            n.Time,
		Status:          n.Status,
		Notes:           n.Notes,
		Reason:          n.Reason,
		CreatedAt:       createdAt,
		PaymentStatus:   n.PaymentStatus,
		PaymentMethod:   n.PaymentMethod,
		PaymentAmount:   n.PaymentAmount,
	}
}
