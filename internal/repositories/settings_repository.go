package repositories

import (
	"database/sql"

	"prdash/internal/models"

	"github.com/google/uuid"
)

type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

// Get retrieves the settings row, or nil when none exists yet
func (r *SettingsRepository) Get() (*models.Settings, error) {
	query := `SELECT id, github_token, poll_interval_ms, updated_at FROM settings LIMIT 1`

	var settings models.Settings
	var id string
	err := r.db.QueryRow(query).Scan(
		&id,
		&settings.GitHubToken,
		&settings.PollIntervalMS,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	settings.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

// Create inserts a new settings row
func (r *SettingsRepository) Create(settings *models.Settings) error {
	query := `
		INSERT INTO settings (id, github_token, poll_interval_ms, updated_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		settings.ID.String(),
		settings.GitHubToken,
		settings.PollIntervalMS,
		settings.UpdatedAt,
	)
	return err
}

// Update updates an existing settings row
func (r *SettingsRepository) Update(settings *models.Settings) error {
	query := `
		UPDATE settings
		SET github_token = ?, poll_interval_ms = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		settings.GitHubToken,
		settings.PollIntervalMS,
		settings.UpdatedAt,
		settings.ID.String(),
	)
	return err
}
