package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hackgods/appointment-store/internal/appointment"
)

type appointmentHandler struct {
	store AppointmentStore
	log   *zap.Logger
}

func (h *appointmentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	appt, err := h.store.Create(r.Context(), req.toNewAppointment())
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toResponse(r, *appt))
}

func (h *appointmentHandler) list(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get("doctor_id")
	userID := r.URL.Query().Get("user_id")

	var (
		appts []appointment.Appointment
		err   error
	)
	switch {
	case doctorID != "":
		appts, err = h.store.ListByDoctor(r.Context(), doctorID)
	case userID != "":
		appts, err = h.store.ListByUser(r.Context(), userID)
	default:
		appts, err = h.store.List(r.Context())
	}
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	resp := ListAppointmentsResponse{
		Appointments: make([]AppointmentResponse, 0, len(appts)),
	}
	for _, a := range appts {
		// doctor_id already filtered; narrow by user too when both are given
		if doctorID != "" && userID != "" && a.UserID != userID {
			continue
		}
		resp.Appointments = append(resp.Appointments, h.toResponse(r, a))
	}
	resp.Count = len(resp.Appointments)

	writeJSON(w, http.StatusOK, resp)
}

func (h *appointmentHandler) get(w http.ResponseWriter, r *http.Request) {
	appt, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(r, *appt))
}

func (h *appointmentHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
		return
	}

	status, err := appointment.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_status", err.Error())
		return
	}

	appt, err := h.store.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(r, *appt))
}

func (h *appointmentHandler) toResponse(r *http.Request, a appointment.Appointment) AppointmentResponse {
	date := appointment.FormatDate(a.Date)
	if !date.Parsed {
		h.log.Warn("could not format appointment date",
			zap.String("appointment_id", a.ID),
			zap.String("date", a.Date),
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(date.Err),
		)
	}

	return AppointmentResponse{
		ID:              a.ID,
		DoctorID:        a.DoctorID,
		UserID:          a.UserID,
		DoctorName:      a.DoctorName,
		DoctorSpecialty: a.DoctorSpecialty,
		DoctorImage:     a.DoctorImage,
		DoctorEmail:     a.DoctorEmail,
		DoctorPhone:     a.DoctorPhone,
		PatientName:     a.PatientName,
		PatientEmail:    a.PatientEmail,
		PatientPhone:    a.PatientPhone,
		Date:            a.Date,
		DateDisplay:     date.Text,
		Time:            a.Time,
		Status:          string(a.Status),
		Notes:           a.Notes,
		Reason:          a.Reason,
		CreatedAt:       a.CreatedAt,
		PaymentStatus:   a.PaymentStatus,
		PaymentMethod:   a.PaymentMethod,
		PaymentAmount:   a.PaymentAmount,
	}
}

func (h *appointmentHandler) handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		writeError(w, http.StatusNotFound, "appointment_not_found", err.Error())
	case errors.Is(err, appointment.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status", err.Error())
	case errors.Is(err, appointment.ErrStoreBusy):
		writeError(w, http.StatusConflict, "store_busy", "appointment store is being written, please retry shortly")
	case errors.Is(err, appointment.ErrCorruptCollection):
		h.log.Error("corrupt appointment collection", zap.String("request_id", GetRequestID(r.Context())), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "corrupt_collection", err.Error())
	default:
		h.log.Error("store operation failed", zap.String("request_id", GetRequestID(r.Context())), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	writeJSON(w, status, ErrorResponse{Error: code, Details: details})
}
