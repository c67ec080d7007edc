// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"bikerz-heaven/controllers"
	"bikerz-heaven/middleware"
	"bikerz-heaven/store"
)

// RegisterRoutes sets up all the routes for the application.
//
// Authorization policy, one tier per route:
//   - public: welcome, parts list, reviews list, login upsert
//   - bearer token: everything else
//   - bearer token + admin caller: the admin-grant route
func RegisterRoutes(
	router *mux.Router,
	partController *controllers.PartController,
	orderController *controllers.OrderController,
	reviewController *controllers.ReviewController,
	userController *controllers.UserController,
	profileController *controllers.ProfileController,
	users store.UserStore,
) {
	// Public routes
	router.HandleFunc("/", welcome).Methods("GET")
	router.HandleFunc("/bikeparts", partController.GetParts).Methods("GET")
	router.HandleFunc("/reviews", reviewController.GetReviews).Methods("GET")
	router.HandleFunc("/users/{email}", userController.Login).Methods("PUT")

	// Admin routes
	admin := router.PathPrefix("/users/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.RequireAdmin(users))
	admin.HandleFunc("/{email}", userController.GrantAdmin).Methods("PUT")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/bikeparts", partController.CreatePart).Methods("POST")
	protected.HandleFunc("/bikeparts/{id}", partController.GetPartByID).Methods("GET")
	protected.HandleFunc("/bikeparts/{id}", partController.DeletePart).Methods("DELETE")

	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	protected.HandleFunc("/orders/{id}", orderController.DeleteOrder).Methods("DELETE")
	protected.HandleFunc("/orders/{id}", orderController.UpdateOrderPaymentStatus).Methods("PUT")

	protected.HandleFunc("/reviews", reviewController.CreateReview).Methods("POST")

	protected.HandleFunc("/users", userController.GetUsers).Methods("GET")
	protected.HandleFunc("/admin/{email}", userController.CheckAdmin).Methods("GET")

	protected.HandleFunc("/userprofile", profileController.UpsertProfile).Methods("PUT")
	protected.HandleFunc("/userprofile", profileController.GetProfile).Methods("GET")
}

func welcome(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome To Bikerz Heaven Server..."))
}
