package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"shelter-registry/internal/domain/shelters"
)

type SheltersRepo struct {
	db *sql.DB
}

func NewSheltersRepo(db *sql.DB) *SheltersRepo {
	return &SheltersRepo{db: db}
}

const shelterColumns = `
	id, name, address,
	sheltered_people, capacity,
	verified, pet_friendly, contact, pix,
	created_by_user_id, created_at, updated_at`

func (r *SheltersRepo) Create(ctx context.Context, s shelters.Shelter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shelters (`+shelterColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		s.ID,
		s.Name,
		s.Address,
		toNullInt(s.ShelteredPeople),
		toNullInt(s.Capacity),
		s.Verified,
		toNullBool(s.PetFriendly),
		toNullString(s.Contact),
		toNullString(s.Pix),
		s.CreatedByUserID,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *SheltersRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return shelters.Shelter{}, shelters.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+shelterColumns+` FROM shelters WHERE id = $1`, id)

	s, err := scanShelter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shelters.Shelter{}, shelters.ErrNotFound
		}
		return shelters.Shelter{}, err
	}
	return s, nil
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+shelterColumns+`
		FROM shelters
		ORDER BY name ASC, created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shelters.Shelter, 0)
	for rows.Next() {
		s, err := scanShelter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShelter(sc scanner) (shelters.Shelter, error) {
	var (
		s               shelters.Shelter
		shelteredPeople sql.NullInt64
		capacity        sql.NullInt64
		petFriendly     sql.NullBool
		contact         sql.NullString
		pix             sql.NullString
	)
	if err := sc.Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&shelteredPeople,
		&capacity,
		&s.Verified,
		&petFriendly,
		&contact,
		&pix,
		&s.CreatedByUserID,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return shelters.Shelter{}, err
	}

	s.ShelteredPeople = fromNullInt(shelteredPeople)
	s.Capacity = fromNullInt(capacity)
	if petFriendly.Valid {
		v := petFriendly.Bool
		s.PetFriendly = &v
	}
	if contact.Valid {
		v := contact.String
		s.Contact = &v
	}
	if pix.Valid {
		v := pix.String
		s.Pix = &v
	}
	return s, nil
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func toNullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

func toNullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
