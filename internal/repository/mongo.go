package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"productmetrics/internal/models"
	"productmetrics/internal/validation"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return NewMongoRepositoryWithCollection(db.Collection(CollectionName))
}

func NewMongoRepositoryWithCollection(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) ListOrGet(ctx context.Context, id string) ([]models.Product, error) {
	filter := bson.M{}
	if id != "" {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		filter["_id"] = oid
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "find products")
	}
	defer cursor.Close(ctx)

	products, err := decodeProducts(ctx, cursor)
	if err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}

func (r *MongoRepository) Create(ctx context.Context, doc map[string]interface{}) (models.Product, error) {
	product, err := validation.Validate(doc)
	if err != nil {
		return models.Product{}, err
	}

	product.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return models.Product{}, errors.Wrap(err, "insert product")
	}
	return product, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, patch map[string]interface{}) (models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	var existing models.Product
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, errors.Wrap(err, "find product")
	}

	product, err := validation.Validate(validation.Merge(existing, patch))
	if err != nil {
		return models.Product{}, err
	}

	// the replacement carries no _id; the stored one is kept
	product.ID = primitive.NilObjectID

	var updated models.Product
	err = r.coll.FindOneAndReplace(
		ctx,
		bson.M{"_id": oid},
		product,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, errors.Wrap(err, "replace product")
	}

	normalizeProduct(&updated)
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	var removed models.Product
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&removed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, errors.Wrap(err, "delete product")
	}

	normalizeProduct(&removed)
	return removed, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return count, nil
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.Product, error) {
	products := make([]models.Product, 0)

	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		normalizeProduct(&product)
		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// normalizeProduct fills in values older documents may lack.
func normalizeProduct(p *models.Product) {
	if p.CarbonCertifications == nil {
		p.CarbonCertifications = models.StringList{}
	}
}
