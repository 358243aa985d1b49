package audit

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

// Sink receives audit entries. The mongo-backed Logger is the production
// sink; tests substitute a recording one.
type Sink interface {
	Log(ctx context.Context, action, entity, entityID string, metadata any) error
}

type Logger struct {
	coll *mongo.Collection
}

func New(db *mongo.Database) *Logger {
	return &Logger{coll: db.Collection("audit_logs")}
}

func (l *Logger) Log(
	ctx context.Context,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now().UTC(),
	}

	_, err := l.coll.InsertOne(ctx, entry)
	return err
}
