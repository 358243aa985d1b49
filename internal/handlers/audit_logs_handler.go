package handlers

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gin-gonic/gin"

	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/httpresp"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type AuditLogsHandler struct {
	db *mongo.Database
}

func NewAuditLogsHandler(db *mongo.Database) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns the most recent audit entries, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(100)

	cursor, err := h.db.Collection("audit_logs").Find(ctx, bson.M{}, opts)
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	logs := []models.AuditLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	httpresp.OK(c, logs)
}
