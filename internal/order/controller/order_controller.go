package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type PlaceOrderUseCase interface {
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	GetOrders(ctx context.Context) (*dto.OrderListResponse, error)
	GetOrder(ctx context.Context, id uint) (*dto.OrderResponse, error)
}

type OrderController struct {
	useCase PlaceOrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase PlaceOrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validatePlaceOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.useCase.PlaceOrder(r.Context(), req)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := c.useCase.GetOrders(r.Context())
	if err != nil {
		c.logger.Error("list orders failed", zap.Error(err))
		c.writeErrorResponse(w, uuid.New().String(), http.StatusInternalServerError,
			"INTERNAL_ERROR", "an unexpected error occurred")
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		c.writeValidationError(w, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	resp, err := c.useCase.GetOrder(r.Context(), uint(orderID))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, c.logger.With(zap.String("traceId", traceID)))
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

// validatePlaceOrderRequest checks the request shape only. Quantity is
// passed through unchecked, matching the placement workflow's permissive
// handling of non-positive quantities.
func (c *OrderController) validatePlaceOrderRequest(req dto.PlaceOrderRequest) error {
	if req.ProductID <= 0 {
		msg := "productId must be a positive integer"
		if req.ProductID == 0 {
			msg = "productId is required"
		}
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "productId",
			Message: msg,
		})
	}

	return nil
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if pe, ok := apperrors.IsPlacementError(err); ok {
		status := http.StatusInternalServerError
		switch pe.Kind {
		case apperrors.ProductLookupFailed:
			status = http.StatusBadGateway
		case apperrors.CatalogUnavailable:
			status = http.StatusServiceUnavailable
		case apperrors.InvalidPrice:
			status = http.StatusUnprocessableEntity
		}
		logger.Warn("order placement rejected",
			zap.String("kind", string(pe.Kind)), zap.String("reason", pe.Message))
		c.writeErrorResponse(w, traceID, status, string(pe.Kind), pe.Message)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", nfe.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError,
		"INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, traceID string, status int, code string, message string) {
	response := dto.OrderErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, status, response)
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
