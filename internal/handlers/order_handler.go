package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
	userService  services.UserService
}

func NewOrderHandler(orderService services.OrderService, userService services.UserService) *OrderHandler {
	return &OrderHandler{orderService: orderService, userService: userService}
}

// History lists the current customer's orders, newest first. Guests see the
// orders placed under the guest identity.
func (h *OrderHandler) History(c *gin.Context) {
	user, err := h.userService.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	email := models.GuestEmail
	if user != nil && user.Email != "" {
		email = user.Email
	}

	orders, err := h.orderService.ListForCustomer(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orderService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		orderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return id, true
}

func orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyCancelReason):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a reason for cancellation"})
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrOrderFinal):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
