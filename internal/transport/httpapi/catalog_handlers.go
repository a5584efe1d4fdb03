package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nailbook/internal/service/catalog"
)

type CatalogHandler struct {
	svc *catalog.Service
	log *slog.Logger
}

func NewCatalogHandler(svc *catalog.Service, log *slog.Logger) *CatalogHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CatalogHandler{
		svc: svc,
		log: log.With(slog.String("component", "http.catalog")),
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/clients", h.ListClients)
	rg.POST("/clients", h.CreateClient)
	rg.GET("/staff", h.ListStaff)
	rg.POST("/staff", h.CreateStaff)
	rg.GET("/services", h.ListServices)
	rg.POST("/services", h.CreateService)
}

func (h *CatalogHandler) CreateClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errBody("VALIDATION_ERROR", "invalid request body"))
		return
	}

	client, err := h.svc.CreateClient(c.Request.Context(), catalog.CreateClientInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		h.fail(c, "client create failed", err)
		return
	}

	c.JSON(http.StatusCreated, toClientResponse(client))
}

func (h *CatalogHandler) ListClients(c *gin.Context) {
	clients, err := h.svc.ListClients(c.Request.Context())
	if err != nil {
		h.fail(c, "client list failed", err)
		return
	}

	out := make([]clientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, toClientResponse(cl))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) CreateStaff(c *gin.Context) {
	var req createStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errBody("VALIDATION_ERROR", "invalid request body"))
		return
	}

	staff, err := h.svc.CreateStaff(c.Request.Context(), catalog.CreateStaffInput{
		Name:        req.Name,
		Specialties: req.Specialties,
		Active:      req.Active,
	})
	if err != nil {
		h.fail(c, "staff create failed", err)
		return
	}

	c.JSON(http.StatusCreated, toStaffResponse(staff))
}

func (h *CatalogHandler) ListStaff(c *gin.Context) {
	staff, err := h.svc.ListStaff(c.Request.Context())
	if err != nil {
		h.fail(c, "staff list failed", err)
		return
	}

	out := make([]staffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, toStaffResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errBody("VALIDATION_ERROR", "invalid request body"))
		return
	}

	svc, err := h.svc.CreateService(c.Request.Context(), catalog.CreateServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          req.Active,
	})
	if err != nil {
		h.fail(c, "service create failed", err)
		return
	}

	c.JSON(http.StatusCreated, toServiceResponse(svc))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))

	services, err := h.svc.ListServices(c.Request.Context(), includeInactive)
	if err != nil {
		h.fail(c, "service list failed", err)
		return
	}

	out := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) fail(c *gin.Context, msg string, err error) {
	var vErr *catalog.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, errBody("VALIDATION_ERROR", vErr.Error()))
		return
	}
	h.log.Error(msg, slog.Any("err", err))
	c.JSON(http.StatusInternalServerError, errBody("INTERNAL_ERROR", "internal error"))
}
