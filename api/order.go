package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"atolye/config"
	"atolye/database"
	"atolye/middleware"
	"atolye/models"
	"atolye/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderHandler handles checkout, order tracking and the admin order screens.
type OrderHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewOrderHandler creates the order handler.
func NewOrderHandler(cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// CheckoutItem is one line of the client cart as sent at checkout. Prices are
// re-read from the catalog server-side; the client values are display-only.
type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest is the cash-on-delivery checkout payload.
type CheckoutRequest struct {
	CustomerName string         `json:"customer_name" binding:"required,min=2,max=100"`
	Phone        string         `json:"phone" binding:"required,min=7,max=30"`
	Email        string         `json:"email" binding:"omitempty,email"`
	Address      string         `json:"address" binding:"required,min=10,max=500"`
	City         string         `json:"city" binding:"omitempty,max=50"`
	Note         string         `json:"note" binding:"omitempty,max=500"`
	Items        []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// settingFloat reads a numeric setting, returning def when missing or bad.
func settingFloat(key string, def float64) float64 {
	var s models.Setting
	if err := database.DB.Where("`key` = ?", key).First(&s).Error; err != nil {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
	if err != nil {
		return def
	}
	return v
}

// Checkout places a cash-on-delivery order. Order, items, stock decrement and
// the admin notification are one transaction; the confirmation email is
// best-effort after commit.
// @Summary Place order
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "customer info and cart items"
// @Success 200 {object} map[string]interface{} "order number and totals"
// @Failure 400 {object} map[string]interface{} "validation or stock error"
// @Router /api/v1/orders [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Sipariş bilgileri eksik veya hatalı")})
		return
	}

	orderNo, err := models.GenerateOrderNo()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Sipariş numarası üretilemedi"})
		return
	}

	order := models.Order{
		OrderNo:       orderNo,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		Note:          req.Note,
		Status:        models.OrderStatusPending,
		PaymentMethod: models.PaymentCashOnDelivery,
	}
	// Logged-in customers get the order attached to their account.
	if userID := middleware.GetCurrentUserID(c); userID > 0 {
		order.UserID = &userID
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var itemsTotal float64
		for _, line := range req.Items {
			var product models.Product
			if err := tx.Where("is_active = ?", true).First(&product, line.ProductID).Error; err != nil {
				return fmt.Errorf("ürün bulunamadı (id=%d)", line.ProductID)
			}
			if product.Stock < line.Quantity {
				return fmt.Errorf("yetersiz stok: %s", product.Name)
			}
			if err := tx.Model(&product).Update("stock", gorm.Expr("stock - ?", line.Quantity)).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  line.Quantity,
				Image:     product.Image,
			})
			itemsTotal += product.Price * float64(line.Quantity)
		}

		shipping := settingFloat(models.SettingShippingFee, 0)
		freeLimit := settingFloat(models.SettingFreeShippingLimit, 0)
		if freeLimit > 0 && itemsTotal >= freeLimit {
			shipping = 0
		}
		order.ItemsTotal = itemsTotal
		order.ShippingFee = shipping
		order.Total = itemsTotal + shipping

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		notice := models.OrderNotification{
			OrderID: order.ID,
			Message: fmt.Sprintf("Yeni sipariş: %s - %s (%.2f TL)", order.OrderNo, order.CustomerName, order.Total),
		}
		return tx.Create(&notice).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Sipariş oluşturulamadı")})
		return
	}

	// Confirmation email never blocks the order.
	if order.Email != "" {
		if err := h.emailService.SendOrderConfirmation(&order); err != nil {
			log.Printf("sipariş onay e-postası gönderilemedi (%s): %v", order.OrderNo, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Siparişiniz alındı",
		"data": gin.H{
			"order_no":     order.OrderNo,
			"items_total":  order.ItemsTotal,
			"shipping_fee": order.ShippingFee,
			"total":        order.Total,
			"status":       order.Status,
		},
	})
}

// Track returns an order's public status by order number and phone. Both must
// match so order numbers alone do not leak customer data.
// @Summary Track order
// @Tags Storefront
// @Produce json
// @Param order_no query string true "order number"
// @Param phone query string true "phone used at checkout"
// @Success 200 {object} map[string]interface{} "order with items"
// @Failure 404 {object} map[string]interface{} "no matching order"
// @Router /api/v1/orders/track [get]
func (h *OrderHandler) Track(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Query("order_no"))
	phone := strings.TrimSpace(c.Query("phone"))
	if orderNo == "" || phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Sipariş numarası ve telefon gerekli"})
		return
	}
	var order models.Order
	if err := database.DB.Preload("Items").
		Where("order_no = ? AND phone = ?", orderNo, phone).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sipariş bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

type OrderListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
	Query    string `form:"q"` // order no, customer name or phone
}

// List returns orders for the admin console with status filter and paging.
// @Summary Order list
// @Tags Admin-Orders
// @Produce json
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Param status query string false "status filter"
// @Param q query string false "order no / customer / phone search"
// @Success 200 {object} Response{data=PageResponse} "orders"
// @Router /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var req OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Geçersiz istek"))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 20
	}

	q := database.DB.Model(&models.Order{})
	if req.Status != "" {
		if !models.ValidOrderStatus(req.Status) {
			BadRequest(c, "Geçersiz sipariş durumu")
			return
		}
		q = q.Where("status = ?", req.Status)
	}
	if s := strings.TrimSpace(req.Query); s != "" {
		like := "%" + escapeLikeValue(s) + "%"
		q = q.Where("order_no LIKE ? OR customer_name LIKE ? OR phone LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Siparişler yüklenemedi"))
		return
	}
	var orders []models.Order
	if err := q.Preload("Items").Order("created_at DESC, id DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Find(&orders).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Siparişler yüklenemedi"))
		return
	}

	Success(c, PageResponse{Total: total, Page: req.Page, PageSize: req.PageSize, List: orders})
}

// Get returns one order with items for the admin detail screen.
// @Summary Order detail
// @Tags Admin-Orders
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} map[string]interface{} "order"
// @Failure 404 {object} map[string]interface{} "unknown order"
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var order models.Order
	if err := database.DB.Preload("Items").First(&order, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sipariş bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order to a new status.
// @Summary Update order status
// @Tags Admin-Orders
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param request body OrderStatusRequest true "new status"
// @Success 200 {object} map[string]interface{} "updated order"
// @Failure 400 {object} map[string]interface{} "unknown status"
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": SafeErrorMessage(err, "Geçersiz istek")})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz sipariş durumu"})
		return
	}
	var order models.Order
	if err := database.DB.First(&order, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sipariş bulunamadı"})
		return
	}
	if err := database.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Sipariş güncellenemedi")})
		return
	}
	database.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sipariş durumu güncellendi", "data": order})
}

// Notifications returns unread-first admin notifications.
// @Summary Order notifications
// @Tags Admin-Orders
// @Produce json
// @Success 200 {object} map[string]interface{} "notifications"
// @Router /admin/orders/notifications [get]
func (h *OrderHandler) Notifications(c *gin.Context) {
	var list []models.OrderNotification
	if err := database.DB.Order("is_read ASC, created_at DESC").Limit(100).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Bildirimler yüklenemedi")})
		return
	}
	var unread int64
	database.DB.Model(&models.OrderNotification{}).Where("is_read = ?", false).Count(&unread)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"unread": unread, "list": list}})
}

// MarkNotificationRead marks one notification as read; id "all" marks all.
// @Summary Mark notification read
// @Tags Admin-Orders
// @Produce json
// @Param id path string true "notification id or 'all'"
// @Success 200 {object} map[string]interface{} "marked"
// @Router /admin/orders/notifications/{id}/read [post]
func (h *OrderHandler) MarkNotificationRead(c *gin.Context) {
	key := c.Param("id")
	if key == "all" {
		if err := database.DB.Model(&models.OrderNotification{}).Where("is_read = ?", false).
			Update("is_read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Bildirimler güncellenemedi")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Tüm bildirimler okundu"})
		return
	}
	id64, err := strconv.ParseUint(key, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Geçersiz ID"})
		return
	}
	if err := database.DB.Model(&models.OrderNotification{}).Where("id = ?", uint(id64)).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "Bildirim güncellenemedi")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Bildirim okundu"})
}
