package handler

import (
	"errors"
	"net/http"

	"solarmarket-shipping/internal/core/logger"
	"solarmarket-shipping/internal/features/shipping/domain"
	"solarmarket-shipping/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShippingHandler handles HTTP requests for shipping quotes and supplier
// rate management.
type ShippingHandler struct {
	// service is the ShippingService instance.
	service *service.ShippingService
}

// NewShippingHandler creates a new instance of ShippingHandler.
func NewShippingHandler(s *service.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// QuoteRequest is the body of a shipping quote request.
type QuoteRequest struct {
	// Items is the customer's cart; items may belong to different suppliers.
	Items []domain.CartItem `json:"items"`
	// Address is the delivery destination.
	Address domain.ShippingAddress `json:"address"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// QuoteShipping handles the request to price shipping for a cart.
// @Summary Quote shipping for a cart
// @Description Resolves one shipping rate per supplier and prices the cart's shipping. Suppliers that cannot ship are reported inside the breakdown, never as an HTTP error.
// @Tags shipping
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Cart items and destination"
// @Success 200 {object} domain.ShippingBreakdown
// @Failure 400 {object} ErrorResponse
// @Router /shipping/quote [post]
func (h *ShippingHandler) QuoteShipping(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "item quantities must be positive",
				RayID:   rayID(c),
			})
		}
	}

	breakdown := h.service.CalculateShippingForCart(c.UserContext(), req.Items, req.Address)
	return c.Status(http.StatusOK).JSON(breakdown)
}

// ListSupplierRates handles the admin request to list a supplier's rates.
// @Summary List a supplier's shipping rates
// @Description Returns every rate the supplier has configured, active or not.
// @Tags rates
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {array} domain.ShippingRate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /suppliers/{id}/shipping-rates [get]
func (h *ShippingHandler) ListSupplierRates(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	if supplierID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "supplier id is required",
			RayID:   rayID(c),
		})
	}

	rates, err := h.service.GetSupplierShippingRates(c.UserContext(), supplierID)
	if err != nil {
		logger.Get().Error("Failed to list supplier rates",
			zap.String("supplier_id", supplierID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to list shipping rates",
			RayID:   rayID(c),
		})
	}

	if rates == nil {
		rates = []domain.ShippingRate{}
	}
	return c.Status(http.StatusOK).JSON(rates)
}

// SaveSupplierRate handles the admin request to create or update a rate.
// @Summary Create or update a shipping rate
// @Description Persists one rate record for the supplier. New records get a generated id.
// @Tags rates
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param rate body domain.ShippingRate true "Rate record"
// @Success 200 {object} domain.ShippingRate
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /suppliers/{id}/shipping-rates [post]
func (h *ShippingHandler) SaveSupplierRate(c *fiber.Ctx) error {
	supplierID := c.Params("id")
	if supplierID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "supplier id is required",
			RayID:   rayID(c),
		})
	}

	var rate domain.ShippingRate
	if err := c.BodyParser(&rate); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   rayID(c),
		})
	}
	rate.SupplierID = supplierID

	if err := h.service.SaveShippingRate(c.UserContext(), &rate); err != nil {
		if isValidationError(err) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   rayID(c),
			})
		}

		logger.Get().Error("Failed to save shipping rate",
			zap.String("supplier_id", supplierID),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to save shipping rate",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(rate)
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidRateType) ||
		errors.Is(err, domain.ErrInvalidChargeBasis) ||
		errors.Is(err, domain.ErrNegativeAmount) ||
		errors.Is(err, domain.ErrInvalidOrderBounds) ||
		errors.Is(err, domain.ErrMissingSupplier)
}
