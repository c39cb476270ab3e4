package controllers

import (
	"fmt"
	"log"
	"time"

	"esencia-shop/config"
	"esencia-shop/middleware"
	"esencia-shop/models"
	"esencia-shop/repositories"
	"esencia-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	cartRepo repositories.CartRepository
}

func NewCheckoutController(cartRepo repositories.CartRepository) *CheckoutController {
	return &CheckoutController{cartRepo: cartRepo}
}

// @Summary Checkout
// @Description Persist the cart as an order and hand it off to WhatsApp
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Param X-Cart-Token header string false "Cart token"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetInt("user_id")

	store := services.NewCartStore(ctrl.cartRepo, c.GetString(middleware.CartTokenKey))
	store.Load(ctx)

	lines := store.Lines()
	if len(lines) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}
	total := store.Total()

	var name, phone, email string
	models.DB.QueryRow(ctx,
		`SELECT COALESCE(p.full_name, ''), COALESCE(p.phone, ''), u.email
		 FROM users u LEFT JOIN user_profiles p ON u.id = p.user_id WHERE u.id = $1`,
		userID).Scan(&name, &phone, &email)

	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	orderNumber := fmt.Sprintf("ORD-%d", time.Now().Unix())
	now := time.Now()

	var orderID int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, customer_name, customer_phone, customer_email,
			total_amount, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7, $7) RETURNING id`,
		orderNumber, userID, name, phone, email, total, now).Scan(&orderID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": fmt.Sprintf("Failed to create order: %v", err)})
		return
	}

	for _, line := range lines {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, perfume_id, perfume_name, perfume_brand, quantity, unit_price, in_stock)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			orderID, line.PerfumeID, line.Name, line.Brand, line.Quantity, line.Price, line.InStock)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": fmt.Sprintf("Failed to create order items: %v", err)})
			return
		}
	}

	if err = tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": fmt.Sprintf("Failed to commit: %v", err)})
		return
	}

	// The order is recorded; from here the handoff is best-effort. The cart
	// clears optimistically and the message delivery is never tracked.
	message := services.BuildWhatsAppMessage(orderNumber, lines, total)
	waURL := services.WhatsAppURL(config.AppConfig.WhatsAppPhone, message)

	store.Clear(ctx)

	if email != "" {
		go sendOrderConfirmation(email, orderNumber, total)
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order created successfully",
		"data": gin.H{
			"order_id":         orderID,
			"order_number":     orderNumber,
			"total":            total,
			"whatsapp_url":     waURL,
			"whatsapp_message": message,
		},
		"notice": gin.H{
			"level":       "success",
			"title":       "Pedido registrado",
			"description": fmt.Sprintf("Tu pedido #%s ha sido guardado exitosamente", orderNumber),
		},
	})
}

func sendOrderConfirmation(email, orderNumber string, total int) {
	emailSvc, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service unavailable:", err)
		return
	}

	if err := emailSvc.SendOrderConfirmationEmail(email, orderNumber, total); err != nil {
		log.Println("Failed to send order confirmation:", err)
	}
}
