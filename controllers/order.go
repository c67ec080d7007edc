// controllers/order.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bikerz-heaven/middleware"
	"bikerz-heaven/models"
	"bikerz-heaven/store"
	"bikerz-heaven/utils"
)

// OrderController orchestrates the order lifecycle together with the
// inventory ledger: creating an order reserves part quantity, deleting it
// credits the quantity back.
type OrderController struct {
	Orders       store.OrderStore
	Parts        store.PartStore
	Users        store.UserStore
	EmailService *utils.EmailService
	Logger       *zap.Logger
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders store.OrderStore, parts store.PartStore, users store.UserStore, emailService *utils.EmailService, logger *zap.Logger) *OrderController {
	return &OrderController{
		Orders:       orders,
		Parts:        parts,
		Users:        users,
		EmailService: emailService,
		Logger:       logger,
	}
}

// CreateOrder places a new order and reserves the ordered quantity against
// the referenced part. The decrement is a single atomic operation at the
// storage layer; when the part does not exist, no order is written. Oversell
// is allowed: availableQuantity may go negative.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized Access")
		return
	}

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if order.ProductID.IsZero() {
		utils.Error(w, http.StatusBadRequest, "productId is required")
		return
	}
	if order.OrderQuantity <= 0 {
		utils.Error(w, http.StatusBadRequest, "orderQuantity must be a positive integer")
		return
	}
	if order.Email == "" {
		utils.Error(w, http.StatusBadRequest, "email is required")
		return
	}
	if order.Email != claims.Email {
		utils.Error(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Reserve the quantity first so a missing part leaves no partial state.
	matched, err := oc.Parts.AdjustQuantity(ctx, order.ProductID, -order.OrderQuantity)
	if err != nil {
		oc.Logger.Error("reserve part quantity", zap.String("productId", order.ProductID.Hex()), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Failed to update part quantity")
		return
	}
	if matched == 0 {
		utils.Error(w, http.StatusNotFound, "Part not found")
		return
	}

	order.ID = primitive.NilObjectID
	order.CreatedAt = time.Now().UTC()
	orderResult, err := oc.Orders.Insert(ctx, order)
	if err != nil {
		// Give the reserved quantity back before reporting failure.
		if _, creditErr := oc.Parts.AdjustQuantity(ctx, order.ProductID, order.OrderQuantity); creditErr != nil {
			oc.Logger.Error("credit part quantity after failed insert",
				zap.String("productId", order.ProductID.Hex()), zap.Error(creditErr))
		}
		oc.Logger.Error("insert order", zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if oc.EmailService != nil {
		go func(email, partName string, quantity int64) {
			if err := oc.EmailService.SendOrderConfirmation(email, partName, quantity); err != nil {
				oc.Logger.Warn("send order confirmation", zap.String("email", email), zap.Error(err))
			}
		}(order.Email, order.PartName, order.OrderQuantity)
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"order": orderResult,
		"inventory": map[string]int64{
			"matchedCount":  matched,
			"modifiedCount": matched,
		},
	})
}

// GetOrders lists orders. The email query must match the token subject;
// an admin may query any email, or omit it to list every order.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized Access")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := r.URL.Query().Get("email")
	if email != claims.Email && !oc.isAdmin(ctx, claims.Email) {
		utils.Error(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	var (
		orders []models.Order
		err    error
	)
	if email == "" {
		orders, err = oc.Orders.List(ctx)
	} else {
		orders, err = oc.Orders.ListByEmail(ctx, email)
	}
	if err != nil {
		oc.Logger.Error("list orders", zap.String("email", email), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	utils.JSON(w, http.StatusOK, orders)
}

// DeleteOrder deletes an order and credits the reserved quantity back to
// the part. The credit happens only when a document was actually deleted,
// so a repeated delete of the same id cannot credit twice.
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized Access")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := oc.Orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		oc.Logger.Error("get order", zap.String("id", id.Hex()), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Failed to retrieve order")
		return
	}

	if order.Email != claims.Email && !oc.isAdmin(ctx, claims.Email) {
		utils.Error(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	result, err := oc.Orders.Delete(ctx, id)
	if err != nil {
		oc.Logger.Error("delete order", zap.String("id", id.Hex()), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	if result.DeletedCount == 1 {
		if _, err := oc.Parts.AdjustQuantity(ctx, order.ProductID, order.OrderQuantity); err != nil {
			// The order is gone; the credit has to be reconciled by hand.
			oc.Logger.Error("credit part quantity after order delete",
				zap.String("orderId", id.Hex()),
				zap.String("productId", order.ProductID.Hex()),
				zap.Int64("quantity", order.OrderQuantity),
				zap.Error(err))
		}
	}

	utils.JSON(w, http.StatusOK, result)
}

// UpdateOrderPaymentStatus sets the order's payment field.
func (oc *OrderController) UpdateOrderPaymentStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized Access")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var paymentUpdate struct {
		NewPaymentStatus string `json:"newPaymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&paymentUpdate); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if paymentUpdate.NewPaymentStatus == "" {
		utils.Error(w, http.StatusBadRequest, "newPaymentStatus is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := oc.Orders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		oc.Logger.Error("get order", zap.String("id", id.Hex()), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Failed to retrieve order")
		return
	}
	if order.Email != claims.Email && !oc.isAdmin(ctx, claims.Email) {
		utils.Error(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	result, err := oc.Orders.SetPaymentStatus(ctx, id, paymentUpdate.NewPaymentStatus)
	if err != nil {
		oc.Logger.Error("update payment status", zap.String("id", id.Hex()), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Failed to update payment status")
		return
	}
	if result.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Order not found")
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (oc *OrderController) isAdmin(ctx context.Context, email string) bool {
	user, err := oc.Users.GetByEmail(ctx, email)
	if err != nil {
		return false
	}
	return user.IsAdmin()
}
