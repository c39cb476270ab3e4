package controllers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"esencia-shop/models"

	"github.com/gin-gonic/gin"
)

type OrderController struct{}

func NewOrderController() *OrderController {
	return &OrderController{}
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

func (ctrl *OrderController) generateLinks(c *gin.Context, page, limit, totalPages int) models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	host := c.Request.Host
	path := c.Request.URL.Path
	queryParams := c.Request.URL.Query()

	makeURL := func(pageNum int) string {
		newParams := url.Values{}
		for key, values := range queryParams {
			if key != "page" {
				for _, value := range values {
					newParams.Add(key, value)
				}
			}
		}
		newParams.Set("page", strconv.Itoa(pageNum))
		newParams.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, host, path, newParams.Encode())
	}

	links := models.PaginationLinks{
		Self: makeURL(page),
	}

	if page > 1 {
		links.Prev = makeURL(page - 1)
	}

	if page < totalPages {
		links.Next = makeURL(page + 1)
	}

	return links
}

func (ctrl *OrderController) buildResponse(c *gin.Context, message string, data interface{}, page, limit, totalItems int) models.HATEOASResponse {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	meta := models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}

	return models.HATEOASResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
		Links:   ctrl.generateLinks(c, page, limit, totalPages),
	}
}

func (ctrl *OrderController) loadOrderItems(ctx context.Context, order *models.Order) error {
	rows, err := models.DB.Query(ctx,
		`SELECT id, order_id, perfume_id, perfume_name, perfume_brand, quantity, unit_price, in_stock
		 FROM order_items WHERE order_id=$1 ORDER BY id`, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.PerfumeID, &item.PerfumeName,
			&item.PerfumeBrand, &item.Quantity, &item.UnitPrice, &item.InStock); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

// @Summary Get my orders
// @Description Get the authenticated customer's orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")
	ctx := c.Request.Context()

	rows, err := models.DB.Query(ctx,
		`SELECT id, order_number, user_id, total_amount, status, created_at, updated_at
		 FROM orders WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.TotalAmount,
			&order.Status, &order.CreatedAt, &order.UpdatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// @Summary Get my order by ID
// @Description Get one of the authenticated customer's orders with its items
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetMyOrderByID(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))
	ctx := c.Request.Context()

	var order models.Order
	err := models.DB.QueryRow(ctx,
		`SELECT id, order_number, user_id, total_amount, status, created_at, updated_at
		 FROM orders WHERE id=$1 AND user_id=$2`, id, userID).Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.TotalAmount,
		&order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	if err := ctrl.loadOrderItems(ctx, &order); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order items"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// @Summary Get all orders
// @Description Get all orders with pagination (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by order number or customer"
// @Param has_backorder query bool false "Only orders with (or without) backordered lines"
// @Success 200 {object} models.HATEOASResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := ctrl.getPaginationParams(c, 10)
	ctx := c.Request.Context()

	status := c.Query("status")
	search := c.Query("search")

	whereConditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if status != "" && status != "All" {
		if !models.IsValidOrderStatus(status) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid status"})
			return
		}
		whereConditions = append(whereConditions, fmt.Sprintf("o.status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}

	if search != "" {
		whereConditions = append(whereConditions,
			fmt.Sprintf("(o.order_number ILIKE $%d OR o.customer_name ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	switch c.Query("has_backorder") {
	case "true":
		whereConditions = append(whereConditions,
			"EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.in_stock = false)")
	case "false":
		whereConditions = append(whereConditions,
			"NOT EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.in_stock = false)")
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders o"+whereClause, args...).Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count orders"})
		return
	}

	query := fmt.Sprintf(`SELECT o.id, o.order_number, o.user_id,
		COALESCE(o.customer_name,''), COALESCE(o.customer_phone,''), COALESCE(o.customer_email,''),
		o.total_amount, o.status, o.created_at, o.updated_at
		FROM orders o%s ORDER BY o.created_at DESC LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.UserID,
			&order.CustomerName, &order.CustomerPhone, &order.CustomerEmail,
			&order.TotalAmount, &order.Status, &order.CreatedAt, &order.UpdatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}

	response := ctrl.buildResponse(c, "Orders retrieved successfully", orders, page, limit, total)
	c.JSON(200, response)
}

// @Summary Get order by ID
// @Description Get order details with its items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}
	ctx := c.Request.Context()

	var order models.Order
	err := models.DB.QueryRow(ctx,
		`SELECT id, order_number, user_id,
		 COALESCE(customer_name,''), COALESCE(customer_phone,''), COALESCE(customer_email,''),
		 total_amount, status, created_at, updated_at
		 FROM orders WHERE id=$1`, id).Scan(
		&order.ID, &order.OrderNumber, &order.UserID,
		&order.CustomerName, &order.CustomerPhone, &order.CustomerEmail,
		&order.TotalAmount, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	if err := ctrl.loadOrderItems(ctx, &order); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order items"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved successfully",
		"data": gin.H{
			"order":         order,
			"has_backorder": order.HasBackorder(),
		},
	})
}

// @Summary Update order status
// @Description Update order status (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Order ID"
// @Param status formData string true "New status"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	status := strings.TrimSpace(c.PostForm("status"))
	ctx := c.Request.Context()

	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	if !models.IsValidOrderStatus(status) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid status"})
		return
	}

	var exists int
	err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE id=$1", id).Scan(&exists)
	if err != nil || exists == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	_, err = models.DB.Exec(ctx,
		"UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3",
		status, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"data": gin.H{
			"id":     id,
			"status": status,
		},
	})
}

// @Summary Delete order
// @Description Delete order and its items (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}
	ctx := c.Request.Context()

	var exists int
	err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE id=$1", id).Scan(&exists)
	if err != nil || exists == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	_, _ = tx.Exec(ctx, "DELETE FROM order_items WHERE order_id=$1", id)

	if _, err = tx.Exec(ctx, "DELETE FROM orders WHERE id=$1", id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}

	if err = tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to commit transaction"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order deleted successfully"})
}

// @Summary Dashboard stats
// @Description Store level counters for the admin dashboard
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *OrderController) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var totalOrders, pendingOrders, backorderOrders, totalRevenue, totalPerfumes, totalCustomers int

	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&totalOrders)
	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE status='pending'").Scan(&pendingOrders)
	models.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders o
		 WHERE EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.in_stock = false)`).Scan(&backorderOrders)
	models.DB.QueryRow(ctx, "SELECT COALESCE(SUM(total_amount),0) FROM orders WHERE status != 'cancelled'").Scan(&totalRevenue)
	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM perfumes WHERE is_active=true").Scan(&totalPerfumes)
	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE role='customer'").Scan(&totalCustomers)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved",
		"data": gin.H{
			"total_orders":     totalOrders,
			"pending_orders":   pendingOrders,
			"backorder_orders": backorderOrders,
			"total_revenue":    totalRevenue,
			"total_perfumes":   totalPerfumes,
			"total_customers":  totalCustomers,
		},
	})
}
