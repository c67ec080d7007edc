// controllers/user.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bikerz-heaven/models"
	"bikerz-heaven/store"
	"bikerz-heaven/utils"
)

// UserController handles user accounts, login and the admin role.
type UserController struct {
	Users  store.UserStore
	Logger *zap.Logger
}

// NewUserController creates a new UserController.
func NewUserController(users store.UserStore, logger *zap.Logger) *UserController {
	return &UserController{Users: users, Logger: logger}
}

// GetUsers retrieves all users.
func (uc *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := uc.Users.List(ctx)
	if err != nil {
		uc.Logger.Error("list users", zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error fetching users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	utils.JSON(w, http.StatusOK, users)
}

// Login upserts the user document for the email in the path and issues a
// fresh access token. There is no password: presenting an email here is the
// whole login, which is why the role field is never taken from the body.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == "" {
		utils.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	var body struct {
		CurrentUser map[string]interface{} `json:"currentUser"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := body.CurrentUser
	if fields == nil {
		fields = map[string]interface{}{}
	}
	// Clients must not smuggle a role or id through the login upsert.
	delete(fields, "role")
	delete(fields, "_id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := uc.Users.Upsert(ctx, email, fields)
	if err != nil {
		uc.Logger.Error("upsert user", zap.String("email", email), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error saving user")
		return
	}

	accessToken, err := utils.GenerateJWT(email)
	if err != nil {
		uc.Logger.Error("generate access token", zap.String("email", email), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"result":      result,
		"accessToken": accessToken,
	})
}

// CheckAdmin reports whether the given email belongs to an admin. An
// unknown email is simply not an admin.
func (uc *UserController) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := uc.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSON(w, http.StatusOK, map[string]bool{"admin": false})
			return
		}
		uc.Logger.Error("get user", zap.String("email", email), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error fetching user")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"admin": user.IsAdmin()})
}

// GrantAdmin elevates the user to the admin role. The route is gated by
// RequireAdmin, so the caller is already a verified admin.
func (uc *UserController) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := uc.Users.GrantAdmin(ctx, email)
	if err != nil {
		uc.Logger.Error("grant admin", zap.String("email", email), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error updating role")
		return
	}
	if result.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "User not found")
		return
	}
	utils.JSON(w, http.StatusOK, result)
}
