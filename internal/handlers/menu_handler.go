package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *MenuHandler) Featured(c *gin.Context) {
	items, err := h.menuService.Featured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Add creates a menu item from a multipart form: name, description, price
// (cents), category, and an optional image file stored inline.
func (h *MenuHandler) Add(c *gin.Context) {
	input, ok := bindMenuItemForm(c)
	if !ok {
		return
	}

	image, imageType, ok := readImageFile(c)
	if !ok {
		return
	}

	item, err := h.menuService.Add(c.Request.Context(), input, image, imageType)
	if err != nil {
		menuError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) Update(c *gin.Context) {
	input, ok := bindMenuItemForm(c)
	if !ok {
		return
	}

	image, imageType, ok := readImageFile(c)
	if !ok {
		return
	}

	item, err := h.menuService.Update(c.Request.Context(), c.Param("id"), input, image, imageType)
	if err != nil {
		menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.menuService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type SetFeaturedRequest struct {
	IDs []string `json:"ids"`
}

func (h *MenuHandler) SetFeatured(c *gin.Context) {
	var req SetFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	items, err := h.menuService.SetFeatured(c.Request.Context(), req.IDs)
	if err != nil {
		menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func bindMenuItemForm(c *gin.Context) (services.MenuItemInput, bool) {
	price, err := strconv.ParseInt(c.PostForm("price"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a whole number of cents"})
		return services.MenuItemInput{}, false
	}

	return services.MenuItemInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    c.PostForm("category"),
	}, true
}

func readImageFile(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		// No image supplied; the service keeps the previous one on update.
		return nil, "", true
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return nil, "", false
	}

	return data, fileHeader.Header.Get("Content-Type"), true
}

func menuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrBuiltinItem), errors.Is(err, services.ErrInvalidMenuItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
