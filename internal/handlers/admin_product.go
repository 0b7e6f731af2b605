package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campuswear/internal/naira"
	"campuswear/internal/store"
)

/* =======================
   REQUEST MODELS
======================= */

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Hint        string   `json:"hint"`
	Price       string   `json:"price"`
	PriceValue  *int     `json:"priceValue"`
	Sizes       []string `json:"sizes" binding:"required"`
	Category    string   `json:"category" binding:"required"`
}

type updateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Hint        *string   `json:"hint"`
	Price       *string   `json:"price"`
	PriceValue  *int      `json:"priceValue"`
	Sizes       *[]string `json:"sizes"`
	Category    *string   `json:"category"`
}

/* =======================
   HELPERS
======================= */

// resolvePriceFields keeps the display price and its numeric value in sync.
// Either field may be supplied alone; when both are present they must agree,
// so a record never carries a price string that renders a different amount.
func resolvePriceFields(price string, priceValue *int) (string, int, error) {
	price = strings.TrimSpace(price)

	switch {
	case price == "" && priceValue == nil:
		return "", 0, errors.New("price or priceValue required")
	case price == "":
		return naira.Format(*priceValue), *priceValue, nil
	case priceValue == nil:
		parsed, err := naira.Parse(price)
		if err != nil {
			return "", 0, err
		}
		return price, parsed, nil
	default:
		parsed, err := naira.Parse(price)
		if err != nil {
			return "", 0, err
		}
		if parsed != *priceValue {
			return "", 0, fmt.Errorf("price %q renders %d, priceValue is %d", price, parsed, *priceValue)
		}
		return price, *priceValue, nil
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"

		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		price, priceValue, err := resolvePriceFields(req.Price, req.PriceValue)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}
		if priceValue <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "invalid price")
			return
		}
		if len(req.Sizes) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "at least one size is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		product, err := products.AddProduct(ctx, store.ProductDraft{
			Name:        strings.TrimSpace(req.Name),
			Description: strings.TrimSpace(req.Description),
			Image:       strings.TrimSpace(req.Image),
			Hint:        strings.TrimSpace(req.Hint),
			Price:       price,
			PriceValue:  priceValue,
			Sizes:       req.Sizes,
			Category:    strings.TrimSpace(req.Category),
		})
		if err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "store unavailable")
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

/* =======================
   UPDATE
======================= */

func UpdateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"

		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		patch := store.ProductPatch{
			Name:        req.Name,
			Description: req.Description,
			Image:       req.Image,
			Hint:        req.Hint,
			Sizes:       req.Sizes,
			Category:    req.Category,
		}

		if req.Price != nil || req.PriceValue != nil {
			priceInput := ""
			if req.Price != nil {
				priceInput = *req.Price
			}
			price, priceValue, err := resolvePriceFields(priceInput, req.PriceValue)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			if priceValue <= 0 {
				respondWithError(c, http.StatusBadRequest, route, "invalid price")
				return
			}
			patch.Price = &price
			patch.PriceValue = &priceValue
		}

		if patch.Sizes != nil && len(*patch.Sizes) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "at least one size is required")
			return
		}

		if patch == (store.ProductPatch{}) {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		product, err := products.UpdateProduct(ctx, c.Param("id"), patch)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "store unavailable")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

/* =======================
   DELETE
======================= */

func DeleteProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/products/:id"

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		existed, err := products.DeleteProduct(ctx, c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "store unavailable")
			return
		}
		if !existed {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
