package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"campuswear/internal/models"
	"campuswear/internal/store"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func ListOrders(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		list, err := orders.ListOrders(ctx)
		if err != nil {
			log.Println("[ORDER] [ERROR] list orders failed:", err)
			c.JSON(http.StatusOK, gin.H{"data": []models.Order{}})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func GetOrder(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		order, err := orders.GetOrder(ctx, c.Param("id"))
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Println("[ORDER] [ERROR] get order failed:", err)
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus overwrites the status unconditionally; there is no
// transition state machine. Only the status value itself is checked.
func UpdateOrderStatus(orders store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /admin/api/orders/:id/status"

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if !models.ValidStatus(req.Status) {
			respondWithError(c, http.StatusBadRequest, route, "invalid status")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		order, err := orders.UpdateOrderStatus(ctx, c.Param("id"), req.Status)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "store unavailable")
			return
		}

		log.Println("[ORDER] [INFO] status updated:", order.OrderNumber, "->", order.Status)
		c.JSON(http.StatusOK, order)
	}
}
