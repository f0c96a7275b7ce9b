package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"productmetrics/internal/models"
	"productmetrics/internal/validation"
)

// MemoryRepository keeps products in process memory, in insertion order. It
// backs STORE_DRIVER=memory and the handler tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]models.Product
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: map[primitive.ObjectID]models.Product{}}
}

func (r *MemoryRepository) ListOrGet(_ context.Context, id string) ([]models.Product, error) {
	products := make([]models.Product, 0)

	if id != "" {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		r.mu.RLock()
		defer r.mu.RUnlock()
		if p, ok := r.docs[oid]; ok {
			products = append(products, cloneProduct(p))
		}
		return products, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, oid := range r.order {
		products = append(products, cloneProduct(r.docs[oid]))
	}
	return products, nil
}

func (r *MemoryRepository) Create(_ context.Context, doc map[string]interface{}) (models.Product, error) {
	product, err := validation.Validate(doc)
	if err != nil {
		return models.Product{}, err
	}
	product.ID = primitive.NewObjectID()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[product.ID] = cloneProduct(product)
	r.order = append(r.order, product.ID)
	return product, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, patch map[string]interface{}) (models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.docs[oid]
	if !ok {
		return models.Product{}, ErrNotFound
	}

	product, err := validation.Validate(validation.Merge(existing, patch))
	if err != nil {
		return models.Product{}, err
	}
	product.ID = oid
	r.docs[oid] = cloneProduct(product)
	return product, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed, ok := r.docs[oid]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	delete(r.docs, oid)
	for i, candidate := range r.order {
		if candidate == oid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return removed, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.docs)), nil
}

func (r *MemoryRepository) Ping(_ context.Context) error {
	return nil
}

// cloneProduct copies every reference field so callers never share state with
// the store.
func cloneProduct(p models.Product) models.Product {
	out := p
	out.Cost = cloneFloat(p.Cost)
	out.EmbodiedCO2 = cloneFloat(p.EmbodiedCO2)
	out.EnvironmentalImpactScore = cloneFloat(p.EnvironmentalImpactScore)
	out.Manufacturer = cloneString(p.Manufacturer)
	out.ProductionCountry = cloneString(p.ProductionCountry)
	out.Durability = cloneString(p.Durability)
	if p.CarbonCertifications != nil {
		out.CarbonCertifications = append(models.StringList{}, p.CarbonCertifications...)
	}
	if p.AdditionalInfo != nil {
		out.AdditionalInfo = cloneValue(p.AdditionalInfo).(map[string]interface{})
	}
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			out[k] = cloneValue(v)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, v := range typed {
			out[i] = cloneValue(v)
		}
		return out
	default:
		return value
	}
}
