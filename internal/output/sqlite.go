// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

const createPapersTable = `CREATE TABLE papers (
	position INTEGER PRIMARY KEY,
	pubmed_id TEXT NOT NULL,
	title TEXT,
	publication_date TEXT,
	non_academic_authors TEXT,
	company_affiliations TEXT,
	corresponding_email TEXT
)`

// writeSQLiteFile writes papers into a fresh SQLite database at path. Any
// existing file is removed first, so the database holds only this run.
func writeSQLiteFile(path string, papers []types.Paper) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createPapersTable); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO papers
		(position, pubmed_id, title, publication_date, non_academic_authors, company_affiliations, corresponding_email)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range papers {
		row := p.Row()
		if _, err := stmt.Exec(i+1, row[0], row[1], row[2], row[3], row[4], row[5]); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting %s: %w", p.PubmedID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
