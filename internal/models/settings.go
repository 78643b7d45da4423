package models

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the single persisted application settings row.
type Settings struct {
	ID             uuid.UUID `json:"id"`
	GitHubToken    string    `json:"-"`
	PollIntervalMS int64     `json:"pollIntervalMs"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewSettings creates settings with default values.
func NewSettings(defaultPollInterval int64) *Settings {
	return &Settings{
		ID:             uuid.New(),
		PollIntervalMS: defaultPollInterval,
		UpdatedAt:      time.Now(),
	}
}
