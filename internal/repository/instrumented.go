package repository

import (
	"context"

	"github.com/pkg/errors"

	"productmetrics/internal/models"
	"productmetrics/internal/validation"
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// OperationRecorder receives one call per repository operation.
type OperationRecorder interface {
	RecordOperation(operation, outcome string)
}

type instrumented struct {
	next     Repository
	recorder OperationRecorder
}

// Instrument reports the outcome of every call on next to recorder.
func Instrument(next Repository, recorder OperationRecorder) Repository {
	if recorder == nil {
		return next
	}
	return &instrumented{next: next, recorder: recorder}
}

func (r *instrumented) ListOrGet(ctx context.Context, id string) ([]models.Product, error) {
	products, err := r.next.ListOrGet(ctx, id)
	r.recorder.RecordOperation("list_or_get", Outcome(err))
	return products, err
}

func (r *instrumented) Create(ctx context.Context, doc map[string]interface{}) (models.Product, error) {
	product, err := r.next.Create(ctx, doc)
	r.recorder.RecordOperation("create", Outcome(err))
	return product, err
}

func (r *instrumented) Update(ctx context.Context, id string, patch map[string]interface{}) (models.Product, error) {
	product, err := r.next.Update(ctx, id, patch)
	r.recorder.RecordOperation("update", Outcome(err))
	return product, err
}

func (r *instrumented) Delete(ctx context.Context, id string) (models.Product, error) {
	product, err := r.next.Delete(ctx, id)
	r.recorder.RecordOperation("delete", Outcome(err))
	return product, err
}

func (r *instrumented) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *instrumented) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}

// Outcome classifies an operation error for metrics and logs.
func Outcome(err error) string {
	var verr *validation.ValidationError
	var cerr *validation.CastError
	switch {
	case err == nil:
		return OutcomeOK
	case IsNotFound(err):
		return OutcomeNotFound
	case errors.As(err, &verr), errors.As(err, &cerr):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
