package store

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/sqlite"

	"github.com/young1lin/tableview/internal/model"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode so the watcher and the UI can read while seeding
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS units (
		id INTEGER PRIMARY KEY,
		ten TEXT NOT NULL,
		cap TEXT NOT NULL,
		parent_id INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_units_parent ON units(parent_id, ten);
	`

	_, err := db.Exec(query)
	return err
}

// SaveUnit saves or updates an administrative unit
func (db *DB) SaveUnit(u model.AdminUnit) error {
	query := `
	INSERT INTO units (id, ten, cap, parent_id)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		ten = excluded.ten,
		cap = excluded.cap,
		parent_id = excluded.parent_id
	`

	_, err := db.Exec(query, u.ID, u.Name, u.Level, u.ParentID)
	return err
}

// Seed stores units in one transaction
func (db *DB) Seed(units []model.AdminUnit) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO units (id, ten, cap, parent_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, u := range units {
		if _, err := stmt.Exec(u.ID, u.Name, u.Level, u.ParentID); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed unit %d: %w", u.ID, err)
		}
	}
	return tx.Commit()
}

// Units returns the children of parentID ordered by name. parentID 0 lists
// the top-level units.
func (db *DB) Units(parentID int64) ([]model.AdminUnit, error) {
	return db.queryUnits(`
	SELECT id, ten, cap, parent_id
	FROM units
	WHERE parent_id = ?
	ORDER BY ten
	`, parentID)
}

// UnitsByLevel returns every unit of the given level ordered by name
func (db *DB) UnitsByLevel(level string) ([]model.AdminUnit, error) {
	return db.queryUnits(`
	SELECT id, ten, cap, parent_id
	FROM units
	WHERE cap = ?
	ORDER BY ten
	`, level)
}

func (db *DB) queryUnits(query string, args ...any) ([]model.AdminUnit, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []model.AdminUnit
	for rows.Next() {
		var u model.AdminUnit
		if err := rows.Scan(&u.ID, &u.Name, &u.Level, &u.ParentID); err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}

// GetUnit retrieves a unit by ID; a missing unit is nil without error
func (db *DB) GetUnit(id int64) (*model.AdminUnit, error) {
	query := `
	SELECT id, ten, cap, parent_id
	FROM units
	WHERE id = ?
	`

	var u model.AdminUnit
	err := db.QueryRow(query, id).Scan(&u.ID, &u.Name, &u.Level, &u.ParentID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// DeleteUnit deletes a unit record. Its children are left in place.
func (db *DB) DeleteUnit(id int64) error {
	_, err := db.Exec("DELETE FROM units WHERE id = ?", id)
	return err
}

// Count returns the number of stored units
func (db *DB) Count() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM units").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
