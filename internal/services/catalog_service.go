package services

import (
	"net/http"

	"github.com/invoicepay/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// CatalogService serves the mock e-commerce payloads behind the paywall.
// The data is static; the point of these endpoints is to exercise the
// admission gate with resources of differing cost.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	InStock  bool    `json:"inStock"`
	Rating   float64 `json:"rating"`
}

type Order struct {
	ID     string   `json:"id"`
	Date   string   `json:"date"`
	Total  float64  `json:"total"`
	Status string   `json:"status"`
	Items  []string `json:"items"`
}

// GetUserData serves the mock shopper profile
// @Summary Get user data
// @Description Protected endpoint returning mock e-commerce user data (costs 1 unit)
// @Tags api
// @Produce json
// @Param X-Client-Id header string true "Client ID"
// @Success 200 {object} models.APIResponse
// @Failure 402 {object} models.PaymentRequiredResponse
// @Router /api/getUserData [get]
func (cs *CatalogService) GetUserData(w http.ResponseWriter, r *http.Request) {
	clientID := r.Header.Get(ClientIDHeader)

	userData := map[string]any{
		"clientId":          clientID,
		"name":              "Chika Fashion",
		"topCategory":       "Dresses",
		"bestSeller":        "Black Midi Dress",
		"totalOrders":       1247,
		"averageOrderValue": 89.5,
		"favoriteColors":    []string{"Black", "Navy", "Burgundy"},
		"lastPurchase":      "2024-10-28T10:30:00Z",
		"membershipLevel":   "Gold",
		"recommendations": []string{
			"Elegant Evening Gown",
			"Casual Summer Dress",
			"Professional Blazer",
		},
	}

	log.Info().Str("clientId", clientID).Msg("served user data")

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    userData,
		Message: "User data retrieved successfully",
	})
}

// GetProducts serves the mock product catalogue
// @Summary Get products
// @Description Protected endpoint returning the product catalogue (costs 1 unit)
// @Tags api
// @Produce json
// @Param X-Client-Id header string true "Client ID"
// @Success 200 {object} models.APIResponse
// @Failure 402 {object} models.PaymentRequiredResponse
// @Router /api/products [get]
func (cs *CatalogService) GetProducts(w http.ResponseWriter, r *http.Request) {
	clientID := r.Header.Get(ClientIDHeader)

	products := []Product{
		{ID: "p001", Name: "Black Midi Dress", Price: 79.99, Category: "Dresses", InStock: true, Rating: 4.8},
		{ID: "p002", Name: "Elegant Evening Gown", Price: 149.99, Category: "Dresses", InStock: true, Rating: 4.9},
		{ID: "p003", Name: "Professional Blazer", Price: 89.99, Category: "Outerwear", InStock: false, Rating: 4.6},
	}

	log.Info().Str("clientId", clientID).Msg("served products data")

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    products,
		Message: "Products retrieved successfully",
	})
}

// GetOrders serves the mock order history
// @Summary Get orders
// @Description Protected endpoint returning order history (costs 2 units)
// @Tags api
// @Produce json
// @Param X-Client-Id header string true "Client ID"
// @Success 200 {object} models.APIResponse
// @Failure 402 {object} models.PaymentRequiredResponse
// @Router /api/orders [get]
func (cs *CatalogService) GetOrders(w http.ResponseWriter, r *http.Request) {
	clientID := r.Header.Get(ClientIDHeader)

	orders := []Order{
		{ID: "ord001", Date: "2024-10-28T10:30:00Z", Total: 79.99, Status: "delivered", Items: []string{"Black Midi Dress"}},
		{ID: "ord002", Date: "2024-10-15T14:22:00Z", Total: 149.99, Status: "delivered", Items: []string{"Elegant Evening Gown"}},
	}

	log.Info().Str("clientId", clientID).Msg("served order history")

	SendJSON(w, http.StatusOK, models.APIResponse{
		Success: true,
		Data:    orders,
		Message: "Order history retrieved successfully",
	})
}
