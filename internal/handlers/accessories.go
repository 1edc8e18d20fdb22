package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kunjcreation/internal/models"
)

type accessoryCreateRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Category     []string `json:"category"`
	Price        float64  `json:"price"`
	SetType      string   `json:"setType"`
	Images       []string `json:"images"`
	CountInStock int      `json:"countInStock"`
	IsActive     *bool    `json:"isActive"`
}

type accessoryUpdateRequest struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Category     *[]string `json:"category"`
	Price        *float64  `json:"price"`
	SetType      *string   `json:"setType"`
	Images       *[]string `json:"images"`
	CountInStock *int      `json:"countInStock"`
	IsActive     *bool     `json:"isActive"`
}

func GetAccessories(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/accessories"
		defer handlePanic(c, route)

		filter := bson.M{
			"isActive": bson.M{"$ne": false},
		}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = bson.M{"$in": []string{category}}
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["name"] = bson.M{"$regex": search, "$options": "i"}
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		pageStr := c.Query("page")
		limitStr := c.Query("limit")

		if pageStr != "" && limitStr != "" {
			page, limit, err := parsePaginationParams(pageStr, limitStr)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
				return
			}

			findOptions.
				SetSkip((page - 1) * limit).
				SetLimit(limit)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("accessories").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		accessories := make([]models.Accessory, 0)
		if err := cursor.All(ctx, &accessories); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, accessories)
	}
}

func GetAccessory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/accessories/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var accessory models.Accessory
		err = db.Collection("accessories").FindOne(ctx, bson.M{"_id": id}).Decode(&accessory)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "accessory not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, accessory)
	}
}

func CreateAccessory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/accessories"
		defer handlePanic(c, route)

		var req accessoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if req.Price < 0 {
			respondWithError(c, http.StatusBadRequest, route, "price must be zero or greater")
			return
		}

		if req.CountInStock < 0 {
			respondWithError(c, http.StatusBadRequest, route, "countInStock must be zero or greater")
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		accessory := models.Accessory{
			Name:         strings.TrimSpace(req.Name),
			Description:  strings.TrimSpace(req.Description),
			Category:     models.StringList(req.Category),
			Price:        req.Price,
			SetType:      strings.TrimSpace(req.SetType),
			Images:       req.Images,
			CountInStock: req.CountInStock,
			IsActive:     isActive,
			CreatedAt:    time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("accessories").InsertOne(ctx, accessory)
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		accessory.ID = res.InsertedID.(primitive.ObjectID)
		c.JSON(http.StatusCreated, accessory)
	}
}

func UpdateAccessory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/accessories/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req accessoryUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		updateSet := bson.M{}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				respondWithError(c, http.StatusBadRequest, route, "name required")
				return
			}
			updateSet["name"] = name
		}
		if req.Description != nil {
			updateSet["description"] = strings.TrimSpace(*req.Description)
		}
		if req.Category != nil {
			updateSet["category"] = models.StringList(*req.Category)
		}
		if req.Price != nil {
			if *req.Price < 0 {
				respondWithError(c, http.StatusBadRequest, route, "price must be zero or greater")
				return
			}
			updateSet["price"] = *req.Price
		}
		if req.SetType != nil {
			updateSet["setType"] = strings.TrimSpace(*req.SetType)
		}
		if req.Images != nil {
			updateSet["images"] = *req.Images
		}
		if req.CountInStock != nil {
			if *req.CountInStock < 0 {
				respondWithError(c, http.StatusBadRequest, route, "countInStock must be zero or greater")
				return
			}
			updateSet["countInStock"] = *req.CountInStock
		}
		if req.IsActive != nil {
			updateSet["isActive"] = *req.IsActive
		}

		if len(updateSet) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("accessories").UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": updateSet},
		)
		if err != nil {
			log.Printf("[%s] update error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "accessory not found")
			return
		}

		var updated models.Accessory
		if err := db.Collection("accessories").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteAccessory(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/accessories/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("accessories").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "accessory not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "accessory deleted"})
	}
}
