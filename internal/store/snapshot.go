package store

import (
	"database/sql"
	"errors"
	"time"
)

// Snapshot is one captured tracking state: which hand was seen, which
// fingers were up, and the thumb-index pinch distance at that moment.
type Snapshot struct {
	ID          string
	TakenAt     time.Time
	Handedness  string
	Fingers     string // five '0'/'1' characters, thumb first
	FingerCount int
	Pinch       float64
}

// Landmark is a single stored landmark position in pixel coordinates.
type Landmark struct {
	Index int
	X     int
	Y     int
}

// SnapshotRepository provides CRUD operations for tracking snapshots.
type SnapshotRepository struct {
	db *sql.DB
}

// Snapshots returns the snapshot repository for this store.
func (s *Store) Snapshots() *SnapshotRepository {
	return &SnapshotRepository{db: s.db}
}

// Create inserts a snapshot and its landmarks in a single transaction.
func (r *SnapshotRepository) Create(snap *Snapshot, landmarks []Landmark) error {
	snap.TakenAt = time.Now()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO snapshots (id, taken_at, handedness, fingers, finger_count, pinch)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.TakenAt, snap.Handedness, snap.Fingers, snap.FingerCount, snap.Pinch,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO snapshot_landmarks (snapshot_id, landmark_index, x, y) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, lm := range landmarks {
		if _, err := stmt.Exec(snap.ID, lm.Index, lm.X, lm.Y); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a snapshot by its ID.
func (r *SnapshotRepository) GetByID(id string) (*Snapshot, error) {
	snap := &Snapshot{}

	err := r.db.QueryRow(
		`SELECT id, taken_at, handedness, fingers, finger_count, pinch
		 FROM snapshots WHERE id = ?`,
		id,
	).Scan(&snap.ID, &snap.TakenAt, &snap.Handedness, &snap.Fingers, &snap.FingerCount, &snap.Pinch)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return snap, nil
}

// GetLandmarks retrieves the stored landmarks of a snapshot in index order.
func (r *SnapshotRepository) GetLandmarks(id string) ([]Landmark, error) {
	rows, err := r.db.Query(
		`SELECT landmark_index, x, y
		 FROM snapshot_landmarks
		 WHERE snapshot_id = ?
		 ORDER BY landmark_index`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var landmarks []Landmark
	for rows.Next() {
		var lm Landmark
		if err := rows.Scan(&lm.Index, &lm.X, &lm.Y); err != nil {
			return nil, err
		}
		landmarks = append(landmarks, lm)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return landmarks, nil
}

// List retrieves all snapshots, newest first.
func (r *SnapshotRepository) List() ([]*Snapshot, error) {
	rows, err := r.db.Query(
		`SELECT id, taken_at, handedness, fingers, finger_count, pinch
		 FROM snapshots ORDER BY taken_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		snap := &Snapshot{}
		err := rows.Scan(&snap.ID, &snap.TakenAt, &snap.Handedness, &snap.Fingers, &snap.FingerCount, &snap.Pinch)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// Delete removes a snapshot and its landmarks by ID.
func (r *SnapshotRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Landmarks go explicitly; the FK cascade only fires on connections
	// with the foreign_keys pragma applied, and the pool hands out both.
	if _, err := tx.Exec(`DELETE FROM snapshot_landmarks WHERE snapshot_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
