package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clinic/internal/common/commonerr"
	"clinic/internal/entities"
)

const patientTable = `
	CREATE TABLE IF NOT EXISTS patient(
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		age INTEGER NOT NULL DEFAULT 0,
		gender TEXT NOT NULL DEFAULT '');
	`

type PatientStore struct {
	repo *Repository
}

// NewPatientStore creates the patient table if it does not exist yet.
func NewPatientStore(ctx context.Context, repo *Repository) (*PatientStore, error) {
	if err := repo.migrate(ctx, "patient", patientTable); err != nil {
		return nil, err
	}
	return &PatientStore{repo: repo}, nil
}

func (s *PatientStore) Create(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	op := "database.PatientStore.Create()"

	err := s.repo.Db.QueryRowContext(ctx,
		`INSERT INTO patient (name, age, gender) VALUES ($1, $2, $3) RETURNING id`,
		p.Name, p.Age, p.Gender,
	).Scan(&p.ID)
	if err != nil {
		return entities.Patient{}, fmt.Errorf("%s: failed to insert patient: %w", op, err)
	}

	return p, nil
}

func (s *PatientStore) List(ctx context.Context) ([]entities.Patient, error) {
	op := "database.PatientStore.List()"

	rows, err := s.repo.Db.QueryContext(ctx, `SELECT id, name, age, gender FROM patient`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to select patients: %w", op, err)
	}
	defer rows.Close()

	patients := make([]entities.Patient, 0)
	for rows.Next() {
		var p entities.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.Gender); err != nil {
			return nil, fmt.Errorf("%s: failed to scan patient: %w", op, err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return patients, nil
}

func (s *PatientStore) Get(ctx context.Context, id int64) (entities.Patient, error) {
	op := "database.PatientStore.Get()"

	var p entities.Patient
	err := s.repo.Db.QueryRowContext(ctx,
		`SELECT id, name, age, gender FROM patient WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Age, &p.Gender)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Patient{}, fmt.Errorf("%s: patient %d: %w", op, id, commonerr.ErrNotFound)
	}
	if err != nil {
		return entities.Patient{}, fmt.Errorf("%s: failed to select patient %d: %w", op, id, err)
	}

	return p, nil
}

func (s *PatientStore) Update(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	op := "database.PatientStore.Update()"

	res, err := s.repo.Db.ExecContext(ctx,
		`UPDATE patient SET name = $1, age = $2, gender = $3 WHERE id = $4`,
		p.Name, p.Age, p.Gender, p.ID,
	)
	if err != nil {
		return entities.Patient{}, fmt.Errorf("%s: failed to update patient %d: %w", op, p.ID, err)
	}

	if err := checkAffected(res, op, "patient", p.ID); err != nil {
		return entities.Patient{}, err
	}

	return p, nil
}

func (s *PatientStore) Delete(ctx context.Context, id int64) error {
	op := "database.PatientStore.Delete()"

	if _, err := s.repo.Db.ExecContext(ctx, `DELETE FROM patient WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: failed to delete patient %d: %w", op, id, err)
	}
	return nil
}
