package handlers

import (
	"net/http"
	"testing"

	"campuswear/internal/models"
	"campuswear/internal/store/memory"
)

func TestCreateProductDerivesDisplayPrice(t *testing.T) {
	mem := memory.New()
	r := testRouter(mem)

	w := doJSON(t, r, "POST", "/admin/api/products", map[string]interface{}{
		"name":       "Faculty Hoodie",
		"priceValue": 12500,
		"sizes":      []string{"M", "L", "XL"},
		"category":   "Hoodies",
	}, nil)
	requireStatus(t, w, http.StatusCreated)

	var product models.Product
	decodeBody(t, w, &product)
	if product.Price != "₦12,500" {
		t.Fatalf("expected derived price ₦12,500, got %q", product.Price)
	}
	if product.PriceValue != 12500 {
		t.Fatalf("expected priceValue 12500, got %d", product.PriceValue)
	}
}

func TestCreateProductParsesDisplayPrice(t *testing.T) {
	mem := memory.New()
	r := testRouter(mem)

	w := doJSON(t, r, "POST", "/admin/api/products", map[string]interface{}{
		"name":     "Dept Polo",
		"price":    "₦9,500",
		"sizes":    []string{"S"},
		"category": "Polos",
	}, nil)
	requireStatus(t, w, http.StatusCreated)

	var product models.Product
	decodeBody(t, w, &product)
	if product.PriceValue != 9500 {
		t.Fatalf("expected parsed priceValue 9500, got %d", product.PriceValue)
	}
}

func TestCreateProductRejectsMismatchedPriceFields(t *testing.T) {
	mem := memory.New()
	r := testRouter(mem)

	w := doJSON(t, r, "POST", "/admin/api/products", map[string]interface{}{
		"name":       "Bad Product",
		"price":      "₦5,000",
		"priceValue": 4999,
		"sizes":      []string{"M"},
		"category":   "Test",
	}, nil)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestCreateProductRequiresNameAndCategory(t *testing.T) {
	mem := memory.New()
	r := testRouter(mem)

	w := doJSON(t, r, "POST", "/admin/api/products", map[string]interface{}{
		"priceValue": 5000,
		"sizes":      []string{"M"},
	}, nil)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestUpdateProductChangesOnlyNamedField(t *testing.T) {
	mem := memory.New()
	r := testRouter(mem)

	w := doJSON(t, r, "POST", "/admin/api/products", map[string]interface{}{
		"name":        "Original",
		"description": "keep me",
		"priceValue":  5000,
		"sizes":       []string{"M", "L"},
		"category":    "Test",
	}, nil)
	requireStatus(t, w, http.StatusCreated)

	var created models.Product
	decodeBody(t, w, &created)

	w = doJSON(t, r, "PUT", "/admin/api/products/"+created.ID, map[string]interface{}{
		"name": "X",
	}, nil)
	requireStatus(t, w, http.StatusOK)

	var updated models.Product
	decodeBody(t, w, &updated)
	if updated.Name != "X" {
		t.Fatalf("expected name X, got %q", updated.Name)
	}
	if updated.Description != "keep me" || updated.PriceValue != 5000 || updated.Category != "Test" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if len(updated.Sizes) != 2 {
		t.Fatalf("sizes changed: %v", updated.Sizes)
	}
}

func TestUpdateProductMissingIDReturns404(t *testing.T) {
	mem := memory.New()
	r := testRouter(mem)

	w := doJSON(t, r, "PUT", "/admin/api/products/nope", map[string]interface{}{
		"name": "X",
	}, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestDeleteProduct(t *testing.T) {
	mem := memory.New()
	r := testRouter(mem)

	w := doJSON(t, r, "POST", "/admin/api/products", map[string]interface{}{
		"name":       "Short Lived",
		"priceValue": 3000,
		"sizes":      []string{"M"},
		"category":   "Test",
	}, nil)
	requireStatus(t, w, http.StatusCreated)

	var created models.Product
	decodeBody(t, w, &created)

	w = doJSON(t, r, "DELETE", "/admin/api/products/"+created.ID, nil, nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, "DELETE", "/admin/api/products/"+created.ID, nil, nil)
	requireStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, "GET", "/products/"+created.ID, nil, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestListProductsIncludesCreated(t *testing.T) {
	mem := memory.New()
	r := testRouter(mem)

	w := doJSON(t, r, "POST", "/admin/api/products", map[string]interface{}{
		"name":       "Listed Shirt",
		"priceValue": 5000,
		"sizes":      []string{"M"},
		"category":   "Test",
	}, nil)
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, "GET", "/products", nil, nil)
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Data []models.Product `json:"data"`
	}
	decodeBody(t, w, &resp)
	if len(resp.Data) != 1 || resp.Data[0].Name != "Listed Shirt" {
		t.Fatalf("expected created product in list, got %+v", resp.Data)
	}
}
