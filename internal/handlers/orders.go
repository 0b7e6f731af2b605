package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campuswear/internal/models"
	"campuswear/internal/store"
)

type createOrderRequest struct {
	ProductID       string `json:"productId" binding:"required"`
	Size            string `json:"size" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
}

/* =========================
   CREATE ORDER
========================= */

// CreateOrder places an order for the signed-in user. The product name and
// total are snapshotted here: later catalogue edits never touch order
// history. Status always starts at Pending regardless of input.
func CreateOrder(orders store.OrderStore, products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"

		userID := c.GetString("userId")
		userEmail := c.GetString("userEmail")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.Quantity <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "quantity must be greater than zero")
			return
		}
		if !models.ValidPaymentMethod(req.PaymentMethod) {
			respondWithError(c, http.StatusBadRequest, route, "invalid payment method")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		product, err := products.GetProduct(ctx, strings.TrimSpace(req.ProductID))
		if errors.Is(err, store.ErrNotFound) {
			respondWithError(c, http.StatusBadRequest, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "store unavailable")
			return
		}

		size := strings.TrimSpace(req.Size)
		if !sizeOffered(product.Sizes, size) {
			respondWithError(c, http.StatusBadRequest, route, "size not available for this product")
			return
		}

		order, err := orders.AddOrder(ctx, store.OrderDraft{
			UserID:          userID,
			UserEmail:       userEmail,
			ProductID:       product.ID,
			ProductName:     product.Name,
			Size:            size,
			Quantity:        req.Quantity,
			TotalAmount:     product.PriceValue * req.Quantity,
			PaymentMethod:   req.PaymentMethod,
			DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
			Status:          models.StatusPending,
		})
		if err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "store unavailable")
			return
		}

		log.Println("[ORDER] [INFO] order created:", order.OrderNumber)
		c.JSON(http.StatusCreated, order)
	}
}

func sizeOffered(sizes []string, size string) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}

/* =========================
   MY ORDERS
========================= */

// ListMyOrders returns the signed-in user's orders, newest first. Backend
// failures degrade to an empty list like every other read.
func ListMyOrders(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userId")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		list, err := orders.ListOrdersByUser(ctx, userID)
		if err != nil {
			log.Println("[ORDER] [ERROR] list user orders failed:", err)
			c.JSON(http.StatusOK, gin.H{"data": []models.Order{}})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}
