// controllers/profile.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"bikerz-heaven/middleware"
	"bikerz-heaven/models"
	"bikerz-heaven/store"
	"bikerz-heaven/utils"
)

// ProfileController handles user profile requests.
type ProfileController struct {
	Profiles store.ProfileStore
	Users    store.UserStore
	Logger   *zap.Logger
}

// NewProfileController creates a new ProfileController.
func NewProfileController(profiles store.ProfileStore, users store.UserStore, logger *zap.Logger) *ProfileController {
	return &ProfileController{Profiles: profiles, Users: users, Logger: logger}
}

// UpsertProfile stores the profile document keyed by its email field as a
// top-level field union with the existing document. Callers may only write
// their own profile.
func (pc *ProfileController) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized Access")
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if profile.Email() == "" {
		utils.Error(w, http.StatusBadRequest, "email is required")
		return
	}
	if profile.Email() != claims.Email {
		utils.Error(w, http.StatusForbidden, "Forbidden Access")
		return
	}
	delete(profile, "_id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := pc.Profiles.Upsert(ctx, profile)
	if err != nil {
		pc.Logger.Error("upsert profile", zap.String("email", profile.Email()), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error saving profile")
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// GetProfile retrieves the profile for the email query. Callers may only
// read their own profile; admins may read any.
func (pc *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized Access")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		email = claims.Email
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if email != claims.Email && !pc.isAdmin(ctx, claims.Email) {
		utils.Error(w, http.StatusForbidden, "Forbidden Access")
		return
	}

	profile, err := pc.Profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSON(w, http.StatusOK, models.UserProfile{})
			return
		}
		pc.Logger.Error("get profile", zap.String("email", email), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error fetching profile")
		return
	}
	utils.JSON(w, http.StatusOK, profile)
}

func (pc *ProfileController) isAdmin(ctx context.Context, email string) bool {
	user, err := pc.Users.GetByEmail(ctx, email)
	if err != nil {
		return false
	}
	return user.IsAdmin()
}
