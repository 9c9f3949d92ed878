package handlers

import (
	"context"

	"clinic/internal/entities"
)

type DoctorStore interface {
	Create(ctx context.Context, d entities.Doctor) (entities.Doctor, error)
	List(ctx context.Context) ([]entities.Doctor, error)
	Get(ctx context.Context, id int64) (entities.Doctor, error)
	Update(ctx context.Context, d entities.Doctor) (entities.Doctor, error)
	Delete(ctx context.Context, id int64) error
}

func NewDoctors(store DoctorStore) Resource[entities.Doctor] {
	return NewResource[entities.Doctor]("doctor", store)
}
