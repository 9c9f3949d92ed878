package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clinic/internal/common/commonerr"
	"clinic/internal/entities"
)

const doctorTable = `
	CREATE TABLE IF NOT EXISTS doctor(
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		specialization TEXT NOT NULL DEFAULT '',
		available BOOLEAN NOT NULL DEFAULT FALSE);
	`

type DoctorStore struct {
	repo *Repository
}

// NewDoctorStore creates the doctor table if it does not exist yet.
func NewDoctorStore(ctx context.Context, repo *Repository) (*DoctorStore, error) {
	if err := repo.migrate(ctx, "doctor", doctorTable); err != nil {
		return nil, err
	}
	return &DoctorStore{repo: repo}, nil
}

func (s *DoctorStore) Create(ctx context.Context, d entities.Doctor) (entities.Doctor, error) {
	op := "database.DoctorStore.Create()"

	err := s.repo.Db.QueryRowContext(ctx,
		`INSERT INTO doctor (name, specialization, available) VALUES ($1, $2, $3) RETURNING id`,
		d.Name, d.Specialization, d.Available,
	).Scan(&d.ID)
	if err != nil {
		return entities.Doctor{}, fmt.Errorf("%s: failed to insert doctor: %w", op, err)
	}

	return d, nil
}

func (s *DoctorStore) List(ctx context.Context) ([]entities.Doctor, error) {
	op := "database.DoctorStore.List()"

	rows, err := s.repo.Db.QueryContext(ctx, `SELECT id, name, specialization, available FROM doctor`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to select doctors: %w", op, err)
	}
	defer rows.Close()

	doctors := make([]entities.Doctor, 0)
	for rows.Next() {
		var d entities.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.Available); err != nil {
			return nil, fmt.Errorf("%s: failed to scan doctor: %w", op, err)
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doctors, nil
}

func (s *DoctorStore) Get(ctx context.Context, id int64) (entities.Doctor, error) {
	op := "database.DoctorStore.Get()"

	var d entities.Doctor
	err := s.repo.Db.QueryRowContext(ctx,
		`SELECT id, name, specialization, available FROM doctor WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Specialization, &d.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Doctor{}, fmt.Errorf("%s: doctor %d: %w", op, id, commonerr.ErrNotFound)
	}
	if err != nil {
		return entities.Doctor{}, fmt.Errorf("%s: failed to select doctor %d: %w", op, id, err)
	}

	return d, nil
}

func (s *DoctorStore) Update(ctx context.Context, d entities.Doctor) (entities.Doctor, error) {
	op := "database.DoctorStore.Update()"

	res, err := s.repo.Db.ExecContext(ctx,
		`UPDATE doctor SET name = $1, specialization = $2, available = $3 WHERE id = $4`,
		d.Name, d.Specialization, d.Available, d.ID,
	)
	if err != nil {
		return entities.Doctor{}, fmt.Errorf("%s: failed to update doctor %d: %w", op, d.ID, err)
	}

	if err := checkAffected(res, op, "doctor", d.ID); err != nil {
		return entities.Doctor{}, err
	}

	return d, nil
}

func (s *DoctorStore) Delete(ctx context.Context, id int64) error {
	op := "database.DoctorStore.Delete()"

	if _, err := s.repo.Db.ExecContext(ctx, `DELETE FROM doctor WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: failed to delete doctor %d: %w", op, id, err)
	}
	return nil
}

func checkAffected(res sql.Result, op, table string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %s %d: %w", op, table, id, commonerr.ErrNotFound)
	}
	return nil
}
