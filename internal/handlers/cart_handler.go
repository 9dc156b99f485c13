package handlers

import (
	"errors"
	"net/http"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService  services.CartService
	menuService  services.MenuService
	orderService services.OrderService
	userService  services.UserService
}

func NewCartHandler(
	cartService services.CartService,
	menuService services.MenuService,
	orderService services.OrderService,
	userService services.UserService,
) *CartHandler {
	return &CartHandler{
		cartService:  cartService,
		menuService:  menuService,
		orderService: orderService,
		userService:  userService,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.cartService.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": models.CartTotal(items)})
}

type AddCartItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// AddItem resolves the menu item server-side so cart lines always carry the
// catalog price, then merges it into the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	menuItem, err := h.menuService.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	item := models.CartItem{
		ID:       menuItem.ID,
		Name:     menuItem.Name,
		Price:    menuItem.Price,
		Quantity: req.Quantity,
		Category: menuItem.Category,
	}
	if err := h.cartService.AddItem(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.GetCart(c)
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartService.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.GetCart(c)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.cartService.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.GetCart(c)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *CartHandler) GetDraft(c *gin.Context) {
	draft, err := h.cartService.Draft(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *CartHandler) SaveDraft(c *gin.Context) {
	var draft models.CheckoutDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartService.SaveDraft(c.Request.Context(), draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

type CheckoutRequest struct {
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	PickupDate string `json:"pickup_date"`
}

// Checkout places the order for the logged-in customer. Guests are asked to
// log in first, matching the original cart page behaviour.
func (h *CartHandler) Checkout(c *gin.Context) {
	user, err := h.userService.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to checkout"})
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.Place(c.Request.Context(), services.PlaceOrderRequest{
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		Address:       req.Address,
		Phone:         req.Phone,
		PickupDate:    req.PickupDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingDetails):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all details to place the order"})
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}
