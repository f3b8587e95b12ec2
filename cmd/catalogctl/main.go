// Command catalogctl prints an operator report of the catalog partitions:
// which physical partitions exist, how many products each holds, and how
// each relates to the category directory. Orphan partitions (no directory
// entry) and pending categories (no partition yet) show up side by side, so
// drift found by the reconciliation job can be inspected directly.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"sort"

	"storefront/internal/core/domain/model/category"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/olekukonko/tablewriter"
)

func main() {
	db, err := sql.Open("postgres", dsnFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalogctl: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := printReport(db); err != nil {
		fmt.Fprintf(os.Stderr, "catalogctl: %v\n", err)
		os.Exit(1)
	}
}

func dsnFromEnv() string {
	_ = godotenv.Load(".env")
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_SSLMODE"))
}

type directoryEntry struct {
	displayName string
	active      bool
}

func printReport(db *sql.DB) error {
	partitions, err := listPartitions(db)
	if err != nil {
		return err
	}
	directory, err := loadDirectory(db)
	if err != nil {
		return err
	}

	// One row per name known on either side.
	names := make(map[string]bool, len(partitions)+len(directory))
	for _, name := range partitions {
		names[name] = true
	}
	for name := range directory {
		names[name] = true
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	hasPartition := make(map[string]bool, len(partitions))
	for _, name := range partitions {
		hasPartition[name] = true
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("Partition", "Products", "Directory", "Status")
	for _, name := range ordered {
		products := "-"
		if hasPartition[name] {
			count, err := countRows(db, name)
			if err != nil {
				return err
			}
			products = fmt.Sprintf("%d", count)
		}

		entry, listed := directory[name]
		directoryCol := "-"
		status := "orphan partition"
		switch {
		case listed && hasPartition[name]:
			directoryCol = entry.displayName
			status = "ok"
			if !entry.active {
				status = "deactivated"
			}
		case listed:
			directoryCol = entry.displayName
			status = "pending partition"
		}

		if err := table.Append(name, products, directoryCol, status); err != nil {
			return err
		}
	}
	return table.Render()
}

func listPartitions(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_name ~ '^[A-Z][A-Z0-9_]*$'
		ORDER BY table_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partitions []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if category.IsPartitionName(name) {
			partitions = append(partitions, name)
		}
	}
	return partitions, rows.Err()
}

func loadDirectory(db *sql.DB) (map[string]directoryEntry, error) {
	rows, err := db.Query(`SELECT name, display_name, active FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	directory := make(map[string]directoryEntry)
	for rows.Next() {
		var name string
		var entry directoryEntry
		if err := rows.Scan(&name, &entry.displayName, &entry.active); err != nil {
			return nil, err
		}
		directory[name] = entry
	}
	return directory, rows.Err()
}

func countRows(db *sql.DB, partition string) (int64, error) {
	// Partition names come from information_schema, but quote anyway since
	// they are interpolated as identifiers.
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pq.QuoteIdentifier(partition))
	err := db.QueryRow(query).Scan(&count)
	return count, err
}
