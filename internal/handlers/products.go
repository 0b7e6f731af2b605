package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campuswear/internal/models"
	"campuswear/internal/store"
)

const storeTimeout = 5 * time.Second

// ListProducts serves the landing carousel, the customer dashboard and the
// admin catalogue table. A backend failure degrades to an empty list: a
// stale-empty page beats a crashed one, and the failure is logged here once.
func ListProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		list, err := products.ListProducts(ctx)
		if err != nil {
			log.Println("[PRODUCT] [ERROR] list products failed:", err)
			c.JSON(http.StatusOK, gin.H{"data": []models.Product{}})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

// GetProduct returns a single product. Any failure, including a backend
// outage, renders as not-found: the page treats an unloadable product the
// same as a missing one.
func GetProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		product, err := products.GetProduct(ctx, c.Param("id"))
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				log.Println("[PRODUCT] [ERROR] get product failed:", err)
			}
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
