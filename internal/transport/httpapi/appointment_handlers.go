package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"nailbook/internal/service/scheduling"
	"nailbook/internal/store"
)

type AppointmentHandler struct {
	svc *scheduling.Service
	log *slog.Logger
}

func NewAppointmentHandler(svc *scheduling.Service, log *slog.Logger) *AppointmentHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AppointmentHandler{
		svc: svc,
		log: log.With(slog.String("component", "http.appointments")),
	}
}

func (h *AppointmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/appointments", h.List)
	rg.POST("/appointments", h.Create)
	rg.GET("/appointments/:id", h.Get)
	rg.PATCH("/appointments/:id", h.Update)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errBody("VALIDATION_ERROR", "invalid request body"))
		return
	}

	appt, err := h.svc.Create(c.Request.Context(), scheduling.CreateInput{
		ClientID:  req.ClientID,
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			h.log.Info(
				"appointment create conflict",
				slog.String("staff_id", req.StaffID),
				slog.Time("start_time", req.StartTime),
			)
			c.JSON(http.StatusConflict, errBody("CONFLICT", "time slot overlaps another appointment for this staff member"))
			return
		}
		h.fail(c, "appointment create failed", err)
		return
	}

	h.log.Info(
		"appointment created",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("staff_id", appt.StaffID.String()),
		slog.Time("start_time", appt.StartTime),
		slog.Time("end_time", appt.EndTime),
	)
	c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.svc.List(c.Request.Context(), scheduling.ListQuery{
		Date:    c.Query("date"),
		StaffID: c.Query("staff_id"),
	})
	if err != nil {
		h.fail(c, "appointment list failed", err)
		return
	}

	c.JSON(http.StatusOK, toAppointmentResponses(appts))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "appointment get failed", err)
		return
	}

	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errBody("VALIDATION_ERROR", "invalid request body"))
		return
	}

	appt, err := h.svc.Update(c.Request.Context(), c.Param("id"), scheduling.UpdateInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, errBody("CONFLICT", "time slot overlaps another appointment for this staff member"))
			return
		}
		h.fail(c, "appointment update failed", err)
		return
	}

	c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

func (h *AppointmentHandler) fail(c *gin.Context, msg string, err error) {
	var vErr *scheduling.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, errBody("VALIDATION_ERROR", vErr.Error()))
		return
	}
	var nfErr *scheduling.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, errBody("NOT_FOUND", nfErr.Error()))
		return
	}
	h.log.Error(msg, slog.Any("err", err))
	c.JSON(http.StatusInternalServerError, errBody("INTERNAL_ERROR", "internal error"))
}
