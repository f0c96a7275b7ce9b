package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"productmetrics/internal/models"
	"productmetrics/internal/repository"
)

const codeNamespaceExists = 48

// ProductSchema is the $jsonSchema the storage engine enforces on products.
// It mirrors the rules in the validation package.
func ProductSchema() bson.M {
	stages := make(bson.A, 0, len(models.LifecycleStages))
	for _, stage := range models.LifecycleStages {
		stages = append(stages, stage)
	}

	return bson.M{
		"bsonType": "object",
		"required": bson.A{"product", "material", "cost", "embodiedCO2", "lifecycleStage"},
		"properties": bson.M{
			"product":                  bson.M{"bsonType": "string", "minLength": 1},
			"material":                 bson.M{"bsonType": "string", "minLength": 1},
			"manufacturer":             bson.M{"bsonType": "string"},
			"cost":                     bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}},
			"embodiedCO2":              bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}},
			"lifecycleStage":           bson.M{"enum": stages},
			"carbonCertifications":     bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
			"productionCountry":        bson.M{"bsonType": "string"},
			"recyclable":               bson.M{"bsonType": "bool"},
			"durability":               bson.M{"bsonType": "string"},
			"environmentalImpactScore": bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0, "maximum": 100},
			"additionalInfo":           bson.M{"bsonType": "object"},
		},
	}
}

// EnsureProductCollection creates the products collection with its validator,
// or installs the validator on an existing collection with collMod.
func EnsureProductCollection(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	validator := bson.M{"$jsonSchema": ProductSchema()}

	zap.S().Info("EnsureProductCollection: creating products collection")
	opts := options.CreateCollection().
		SetValidator(validator).
		SetValidationLevel("moderate")
	err := db.CreateCollection(ctx, repository.CollectionName, opts)
	if err == nil {
		zap.S().Info("EnsureProductCollection: products collection created")
		return nil
	}

	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != codeNamespaceExists {
		zap.S().Errorf("EnsureProductCollection: create error: %v", err)
		return errors.Wrap(err, "create products collection")
	}

	zap.S().Info("EnsureProductCollection: collection exists, updating validator")
	cmd := bson.D{
		{Key: "collMod", Value: repository.CollectionName},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
	}
	if err := db.RunCommand(ctx, cmd).Err(); err != nil {
		zap.S().Errorf("EnsureProductCollection: collMod error: %v", err)
		return errors.Wrap(err, "update products validator")
	}
	zap.S().Info("EnsureProductCollection: products validator updated")
	return nil
}
