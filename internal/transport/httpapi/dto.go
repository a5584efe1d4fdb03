package httpapi

import (
	"time"

	"nailbook/internal/domain"
)

type createClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toClientResponse(c domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

type createStaffRequest struct {
	Name        string   `json:"name" binding:"required"`
	Specialties []string `json:"specialties"`
	Active      *bool    `json:"active"`
}

type staffResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Specialties []string  `json:"specialties"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toStaffResponse(s domain.Staff) staffResponse {
	specialties := s.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return staffResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Specialties: specialties,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
	}
}

type createServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Price           float64 `json:"price"`
	Active          *bool   `json:"active"`
}

type serviceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

func toServiceResponse(s domain.Service) serviceResponse {
	return serviceResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Active:          s.Active,
		CreatedAt:       s.CreatedAt,
	}
}

type createAppointmentRequest struct {
	ClientID  string    `json:"client_id" binding:"required"`
	StaffID   string    `json:"staff_id" binding:"required"`
	ServiceID string    `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	Notes     string    `json:"notes"`
}

type updateAppointmentRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type appointmentResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	StaffID   string    `json:"staff_id"`
	ServiceID string    `json:"service_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toAppointmentResponse(a domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID.String(),
		ClientID:  a.ClientID.String(),
		StaffID:   a.StaffID.String(),
		ServiceID: a.ServiceID.String(),
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    string(a.Status),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAppointmentResponses(appts []domain.Appointment) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	return out
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func errBody(code, message string) errorResponse {
	return errorResponse{Error: errorBody{Code: code, Message: message}}
}
