package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/reactornav/internal/database/repository"
)

var defaultCatalog = []struct {
	section string
	items   []string
}{
	{"Books", []string{"The Go Programming Language", "Structure and Interpretation", "A Philosophy of Software Design"}},
	{"Music", []string{"Kind of Blue", "In Rainbows", "Blue Train"}},
	{"Films", []string{"Stalker", "Playtime", "Tampopo"}},
}

// SeedDefaults fills an empty catalog. Ids are derived from names so reseeding
// is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	sections := repository.NewSectionRepo(db)
	existing, err := sections.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	items := repository.NewItemRepo(db)
	now := Now()
	for idx, group := range defaultCatalog {
		sec := repository.Section{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("section:"+group.section)).String(),
			Name:      group.section,
			SortOrder: idx,
		}
		if err := sections.Upsert(ctx, sec); err != nil {
			return err
		}
		for _, title := range group.items {
			it := repository.Item{
				ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("item:"+group.section+":"+title)).String(),
				SectionID: sec.ID,
				Title:     title,
				Summary:   group.section + " / " + title,
				CreatedAt: now,
			}
			if err := items.Upsert(ctx, it); err != nil {
				return err
			}
		}
	}
	return nil
}
