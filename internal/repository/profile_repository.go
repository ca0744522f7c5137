package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"truthline/internal/models"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password_hash, full_name, role, trust_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(query,
		profile.ID,
		profile.Email,
		profile.PasswordHash,
		profile.FullName,
		profile.Role,
		profile.TrustScore,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	query := `
		SELECT id, email, password_hash, full_name, role, trust_score, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	err := r.db.QueryRow(query, id).Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.FullName,
		&profile.Role,
		&profile.TrustScore,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	query := `
		SELECT id, email, password_hash, full_name, role, trust_score, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`
	err := r.db.QueryRow(query, email).Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.FullName,
		&profile.Role,
		&profile.TrustScore,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return &profile, nil
}

// ApplyTrustDelta adjusts a profile's trust score by delta in a single
// statement, flooring the score at zero and deriving the role from the
// moderator threshold. Running score and role through one UPDATE keeps
// concurrent recalculations from losing each other's increments.
func (r *ProfileRepository) ApplyTrustDelta(id uuid.UUID, delta, moderatorThreshold int) (*models.Profile, error) {
	var profile models.Profile
	query := `
		UPDATE profiles
		SET trust_score = GREATEST(0, trust_score + $2),
			role = CASE WHEN GREATEST(0, trust_score + $2) >= $3 THEN 'moderator' ELSE 'user' END,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, email, password_hash, full_name, role, trust_score, created_at, updated_at
	`
	err := r.db.QueryRow(query, id, delta, moderatorThreshold).Scan(
		&profile.ID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.FullName,
		&profile.Role,
		&profile.TrustScore,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply trust delta: %w", err)
	}
	return &profile, nil
}

// Leaderboard returns the top profiles by trust score
func (r *ProfileRepository) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	entries := []models.LeaderboardEntry{}
	query := `
		SELECT full_name, trust_score
		FROM profiles
		ORDER BY trust_score DESC, full_name ASC
		LIMIT $1
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.FullName, &entry.TrustScore); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard: %w", err)
	}

	return entries, nil
}
