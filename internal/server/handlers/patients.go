package handlers

import (
	"context"

	"clinic/internal/entities"
)

type PatientStore interface {
	Create(ctx context.Context, p entities.Patient) (entities.Patient, error)
	List(ctx context.Context) ([]entities.Patient, error)
	Get(ctx context.Context, id int64) (entities.Patient, error)
	Update(ctx context.Context, p entities.Patient) (entities.Patient, error)
	Delete(ctx context.Context, id int64) error
}

func NewPatients(store PatientStore) Resource[entities.Patient] {
	return NewResource[entities.Patient]("patient", store)
}
