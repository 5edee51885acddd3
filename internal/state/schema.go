package state

import "database/sql"

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			folder TEXT,
			current_index INTEGER NOT NULL DEFAULT -1,
			volume INTEGER NOT NULL DEFAULT 80
		);

		CREATE TABLE IF NOT EXISTS queue_tracks (
			position INTEGER PRIMARY KEY,
			path TEXT NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}
