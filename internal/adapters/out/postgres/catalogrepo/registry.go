package catalogrepo

import (
	"context"
	"sync"

	"storefront/internal/core/domain/model/category"

	"gorm.io/gorm"
)

// partitionRegistry resolves canonical category names to physical partition
// tables and creates partitions lazily on first use.
//
// The known-partition cache only ever grows: partitions are never dropped,
// so a positive cache entry cannot go stale. Negative lookups always hit
// the database. The mutex serializes in-process creation; a creator in
// another process racing the same first insert is tolerated by re-checking
// the schema when the DDL fails.
type partitionRegistry struct {
	db *gorm.DB

	mu    sync.Mutex
	known map[string]bool
}

func newPartitionRegistry(db *gorm.DB) *partitionRegistry {
	return &partitionRegistry{
		db:    db,
		known: make(map[string]bool),
	}
}

func (r *partitionRegistry) isKnown(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.known[name]
}

func (r *partitionRegistry) remember(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.known[name] = true
}

// exists reports whether the partition table is present, consulting the
// cache first.
func (r *partitionRegistry) exists(ctx context.Context, name string) (bool, error) {
	if !category.IsPartitionName(name) {
		return false, nil
	}
	if r.isKnown(name) {
		return true, nil
	}

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT count(*)
		FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name = ?
	`, name).Scan(&count).Error
	if err != nil {
		return false, err
	}

	if count > 0 {
		r.remember(name)
		return true, nil
	}
	return false, nil
}

// ensure creates the partition table if it does not exist yet.
func (r *partitionRegistry) ensure(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.known[name] {
		return nil
	}

	if err := r.db.WithContext(ctx).Table(name).AutoMigrate(&ProductDTO{}); err != nil {
		// AutoMigrate checks for the table before issuing the CREATE, so
		// a concurrent first insert through another registry can slip in
		// between and make the DDL fail with "relation already exists".
		// If the table is present now, ensure got what it wanted.
		var count int64
		checkErr := r.db.WithContext(ctx).Raw(`
			SELECT count(*)
			FROM information_schema.tables
			WHERE table_schema = current_schema() AND table_name = ?
		`, name).Scan(&count).Error
		if checkErr != nil || count == 0 {
			return err
		}
	}

	r.known[name] = true
	return nil
}

// list discovers every physical partition by scanning the schema for the
// canonical name shape. Partition tables are the only upper-case tables in
// the schema; the fixed tables all use lower-case names.
func (r *partitionRegistry) list(ctx context.Context) ([]string, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name ~ '^[A-Z][A-Z0-9_]*$'
		ORDER BY table_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partitions := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		if !category.IsPartitionName(name) {
			continue
		}
		r.remember(name)
		partitions = append(partitions, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partitions, nil
}
