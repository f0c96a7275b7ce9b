package database

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestEnsureProductCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates collection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := EnsureProductCollection(mt.DB); err != nil {
			mt.Fatalf("EnsureProductCollection returned error: %v", err)
		}
		started := mt.GetAllStartedEvents()
		if len(started) != 1 || started[0].CommandName != "create" {
			mt.Fatalf("expected a single create command, got %d events", len(started))
		}
	})

	mt.Run("existing collection is modified", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    codeNamespaceExists,
				Name:    "NamespaceExists",
				Message: "Collection already exists",
			}),
			mtest.CreateSuccessResponse(),
		)

		if err := EnsureProductCollection(mt.DB); err != nil {
			mt.Fatalf("EnsureProductCollection returned error: %v", err)
		}
		started := mt.GetAllStartedEvents()
		if len(started) != 2 || started[1].CommandName != "collMod" {
			mt.Fatalf("expected create then collMod, got %d events", len(started))
		}
	})

	mt.Run("other errors are returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		if err := EnsureProductCollection(mt.DB); err == nil {
			mt.Fatal("expected error")
		}
	})
}

func TestProductSchemaRequiredFields(t *testing.T) {
	schema := ProductSchema()
	required, ok := schema["required"].(bson.A)
	if !ok {
		t.Fatalf("required must be an array, got %T", schema["required"])
	}
	want := map[string]bool{"product": true, "material": true, "cost": true, "embodiedCO2": true, "lifecycleStage": true}
	if len(required) != len(want) {
		t.Fatalf("unexpected required fields: %v", required)
	}
	for _, field := range required {
		if !want[field.(string)] {
			t.Fatalf("unexpected required field %v", field)
		}
	}

	props := schema["properties"].(bson.M)
	stage := props["lifecycleStage"].(bson.M)
	if len(stage["enum"].(bson.A)) != 3 {
		t.Fatalf("expected three lifecycle stages, got %v", stage["enum"])
	}
}
