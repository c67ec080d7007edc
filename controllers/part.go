// controllers/part.go
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

	"bikerz-heaven/models"
	"bikerz-heaven/store"
	"bikerz-heaven/utils"
)

// PartController handles bike-part catalog requests.
type PartController struct {
	Parts  store.PartStore
	Logger *zap.Logger
}

// NewPartController creates a new PartController.
func NewPartController(parts store.PartStore, logger *zap.Logger) *PartController {
	return &PartController{Parts: parts, Logger: logger}
}

// GetParts retrieves all bike parts.
func (pc *PartController) GetParts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	parts, err := pc.Parts.List(ctx)
	if err != nil {
		pc.Logger.Error("list bike parts", zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error fetching bike parts")
		return
	}
	if parts == nil {
		parts = []models.Part{}
	}
	utils.JSON(w, http.StatusOK, parts)
}

// GetPartByID retrieves a single bike part by id.
func (pc *PartController) GetPartByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid part ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	part, err := pc.Parts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.Error(w, http.StatusNotFound, "Part not found")
			return
		}
		pc.Logger.Error("get bike part", zap.String("id", id.Hex()), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error fetching bike part")
		return
	}
	utils.JSON(w, http.StatusOK, part)
}

// CreatePart handles adding a new bike part.
func (pc *PartController) CreatePart(w http.ResponseWriter, r *http.Request) {
	var part models.Part
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if part.AvailableQuantity < 0 {
		utils.Error(w, http.StatusBadRequest, "availableQuantity must not be negative")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Parts.Insert(ctx, part)
	if err != nil {
		pc.Logger.Error("insert bike part", zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error creating bike part")
		return
	}
	utils.JSON(w, http.StatusCreated, result)
}

// DeletePart handles deleting a bike part by id. Orders referencing the
// part keep their productId; the reference simply dangles.
func (pc *PartController) DeletePart(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid part ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := pc.Parts.Delete(ctx, id)
	if err != nil {
		pc.Logger.Error("delete bike part", zap.String("id", id.Hex()), zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Error deleting bike part")
		return
	}
	utils.JSON(w, http.StatusOK, result)
}
