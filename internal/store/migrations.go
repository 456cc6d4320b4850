package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Snapshots table - stores captured tracking states
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			taken_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			handedness TEXT NOT NULL DEFAULT 'Unknown',
			fingers TEXT NOT NULL DEFAULT '00000',
			finger_count INTEGER NOT NULL DEFAULT 0,
			pinch REAL NOT NULL DEFAULT 0
		)`,

		// Snapshot landmarks table - stores the 21 pixel-space positions per snapshot
		`CREATE TABLE IF NOT EXISTS snapshot_landmarks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			landmark_index INTEGER NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_snapshot_landmarks_snapshot_id ON snapshot_landmarks(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
