package repository

import (
	"context"
	"database/sql"
)

// ItemRepo handles catalog items.
type ItemRepo struct {
	db *sql.DB
}

func NewItemRepo(db *sql.DB) *ItemRepo { return &ItemRepo{db: db} }

const itemColumns = `id, section_id, title, summary, favorite, created_at`

func (r *ItemRepo) Upsert(ctx context.Context, it Item) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO items(id, section_id, title, summary, favorite, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 section_id=excluded.section_id,
	 title=excluded.title,
	 summary=excluded.summary,
	 favorite=excluded.favorite;
	`, it.ID, it.SectionID, it.Title, it.Summary, it.Favorite, it.CreatedAt)
	return err
}

func (r *ItemRepo) ListBySection(ctx context.Context, sectionID string) ([]Item, error) {
	return r.query(ctx, `SELECT `+itemColumns+` FROM items WHERE section_id = ? ORDER BY title`, sectionID)
}

func (r *ItemRepo) ListFavorites(ctx context.Context) ([]Item, error) {
	return r.query(ctx, `SELECT `+itemColumns+` FROM items WHERE favorite = 1 ORDER BY title`)
}

func (r *ItemRepo) SetFavorite(ctx context.Context, id string, favorite bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE items SET favorite = ? WHERE id = ?`, favorite, id)
	return err
}

func (r *ItemRepo) Get(ctx context.Context, id string) (*Item, error) {
	items, err := r.query(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func (r *ItemRepo) query(ctx context.Context, q string, args ...any) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.SectionID, &it.Title, &it.Summary, &it.Favorite, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
