package api

import (
	"time"

	"github.com/hackgods/appointment-store/internal/appointment"
)

type CreateAppointmentRequest struct {
	DoctorID        string   `json:"doctor_id"`
	UserID          string   `json:"user_id"`
	DoctorName      string   `json:"doctor_name"`
	DoctorSpecialty string   `json:"doctor_specialty"`
	DoctorImage     string   `json:"doctor_image"`
	DoctorEmail     string   `json:"doctor_email"`
	DoctorPhone     string   `json:"doctor_phone"`
	PatientName     string   `json:"patient_name"`
	PatientEmail    string   `json:"patient_email"`
	PatientPhone    string   `json:"patient_phone"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
	Reason          string   `json:"reason"`
	PaymentStatus   string   `json:"payment_status"`
	PaymentMethod   string   `json:"payment_method"`
	PaymentAmount   *float64 `json:"payment_amount"`
}

func (r CreateAppointmentRequest) toNewAppointment() appointment.NewAppointment {
	return appointment.NewAppointment{
		DoctorID:        r.DoctorID,
		UserID:          r.UserID,
		DoctorName:      r.DoctorName,
		DoctorSpecialty: r.DoctorSpecialty,
		DoctorImage:     r.DoctorImage,
		DoctorEmail:     r.DoctorEmail,
		DoctorPhone:     r.DoctorPhone,
		PatientName:     r.PatientName,
		PatientEmail:    r.PatientEmail,
		PatientPhone:    r.PatientPhone,
		Date:            r.Date,
		Time:            r.Time,
		Status:          appointment.AppointmentStatus(r.Status),
		Notes:           r.Notes,
		Reason:          r.Reason,
		PaymentStatus:   r.PaymentStatus,
		PaymentMethod:   r.PaymentMethod,
		PaymentAmount:   r.PaymentAmount,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AppointmentResponse struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctor_id"`
	UserID          string    `json:"user_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	DoctorSpecialty string    `json:"doctor_specialty,omitempty"`
	DoctorImage     string    `json:"doctor_image,omitempty"`
	DoctorEmail     string    `json:"doctor_email,omitempty"`
	DoctorPhone     string    `json:"doctor_phone,omitempty"`
	PatientName     string    `json:"patient_name,omitempty"`
	PatientEmail    string    `json:"patient_email,omitempty"`
	PatientPhone    string    `json:"patient_phone,omitempty"`
	Date            string    `json:"date"`
	DateDisplay     string    `json:"date_display"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	Reason          string    `json:"reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	PaymentStatus   string    `json:"payment_status,omitempty"`
	PaymentMethod   string    `json:"payment_method,omitempty"`
	PaymentAmount   *float64  `json:"payment_amount,omitempty"`
}

type ListAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Count        int                   `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
