// controllers/review.go
package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bikerz-heaven/models"
	"bikerz-heaven/store"
	"bikerz-heaven/utils"
)

// ReviewController handles review requests. Reviews are append-only.
type ReviewController struct {
	Reviews store.ReviewStore
	Logger  *zap.Logger
}

// NewReviewController creates a new ReviewController.
func NewReviewController(reviews store.ReviewStore, logger *zap.Logger) *ReviewController {
	return &ReviewController{Reviews: reviews, Logger: logger}
}

// CreateReview adds a new review.
func (rc *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	review.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := rc.Reviews.Insert(ctx, review)
	if err != nil {
		rc.Logger.Error("insert review", zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error creating review")
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

// GetReviews retrieves all reviews.
func (rc *ReviewController) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reviews, err := rc.Reviews.List(ctx)
	if err != nil {
		rc.Logger.Error("list reviews", zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error fetching reviews")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	utils.JSON(w, http.StatusOK, reviews)
}
