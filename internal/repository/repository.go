package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"productmetrics/internal/models"
	"productmetrics/internal/validation"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// CollectionName is where products are stored.
const CollectionName = "products"

// ErrNotFound is returned by Update and Delete when no product has the identifier.
var ErrNotFound = errors.New("product not found")

// Repository is the storage capability the handlers depend on. Writes are
// validated against the product schema before anything is persisted.
type Repository interface {
	// ListOrGet returns every product when id is empty, otherwise the zero or
	// one product with that identifier.
	ListOrGet(ctx context.Context, id string) ([]models.Product, error)
	Create(ctx context.Context, doc map[string]interface{}) (models.Product, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (models.Product, error)
	// Delete removes the product and returns its prior state.
	Delete(ctx context.Context, id string) (models.Product, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, validation.NewIDCastError(id)
	}
	return oid, nil
}

// IsNotFound reports whether err means the identifier matched nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
