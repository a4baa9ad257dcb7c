package repository

import (
	"context"
	"database/sql"
)

// SectionRepo handles sections.
type SectionRepo struct {
	db *sql.DB
}

func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

func (r *SectionRepo) Upsert(ctx context.Context, s Section) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sections(id, name, sort_order)
	VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 sort_order=excluded.sort_order;
	`, s.ID, s.Name, s.SortOrder)
	return err
}

func (r *SectionRepo) List(ctx context.Context) ([]Section, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, sort_order FROM sections ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Section
	for rows.Next() {
		var s Section
		if err := rows.Scan(&s.ID, &s.Name, &s.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SectionRepo) Get(ctx context.Context, id string) (*Section, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, sort_order FROM sections WHERE id = ?`, id)
	var s Section
	if err := row.Scan(&s.ID, &s.Name, &s.SortOrder); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
