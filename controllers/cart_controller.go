package controllers

import (
	"context"

	"esencia-shop/middleware"
	"esencia-shop/models"
	"esencia-shop/repositories"
	"esencia-shop/services"

	"github.com/gin-gonic/gin"
)

// PerfumeFinder is the slice of the catalog the cart needs: resolving an
// ID to a sellable perfume.
type PerfumeFinder interface {
	GetPerfumeByID(ctx context.Context, id string) (*models.Perfume, error)
}

type CartController struct {
	repo     repositories.CartRepository
	perfumes PerfumeFinder
}

func NewCartController(repo repositories.CartRepository, perfumes PerfumeFinder) *CartController {
	return &CartController{repo: repo, perfumes: perfumes}
}

func (ctrl *CartController) store(c *gin.Context) *services.CartStore {
	store := services.NewCartStore(ctrl.repo, c.GetString(middleware.CartTokenKey))
	store.Load(c.Request.Context())
	return store
}

func cartPayload(store *services.CartStore) gin.H {
	return gin.H{
		"items":       store.Lines(),
		"total_items": store.TotalItems(),
		"subtotal":    store.Subtotal(),
		"total":       store.Total(),
	}
}

func cartResponse(message string, store *services.CartStore, notice models.Notice) gin.H {
	resp := gin.H{
		"success": true,
		"message": message,
		"data":    cartPayload(store),
	}
	if notice.Level != "" {
		resp["notice"] = notice
	}
	return resp
}

// @Summary Get cart
// @Description Get the current cart with derived totals
// @Tags Cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	store := ctrl.store(c)
	c.JSON(200, cartResponse("Cart retrieved", store, models.Notice{}))
}

// @Summary Add item to cart
// @Description Add a perfume to the cart, merging quantities by perfume ID
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	perfume, err := ctrl.perfumes.GetPerfumeByID(c.Request.Context(), req.PerfumeID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Perfume not found"})
		return
	}

	store := ctrl.store(c)
	notice := store.AddItem(c.Request.Context(), *perfume, req.Quantity)
	c.JSON(200, cartResponse("Item added", store, notice))
}

// @Summary Set line quantity
// @Description Overwrite a line's quantity; zero or below removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Param id path string true "Perfume ID"
// @Param request body models.SetCartQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) SetQuantity(c *gin.Context) {
	var req models.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	store := ctrl.store(c)
	notice := store.SetQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	c.JSON(200, cartResponse("Cart updated", store, notice))
}

// @Summary Remove item from cart
// @Description Remove a line by perfume ID; absent IDs are a no-op
// @Tags Cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Param id path string true "Perfume ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	store := ctrl.store(c)
	notice := store.RemoveItem(c.Request.Context(), c.Param("id"))
	c.JSON(200, cartResponse("Cart updated", store, notice))
}

// @Summary Clear cart
// @Description Empty the cart unconditionally
// @Tags Cart
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) Clear(c *gin.Context) {
	store := ctrl.store(c)
	notice := store.Clear(c.Request.Context())
	c.JSON(200, cartResponse("Cart cleared", store, notice))
}
