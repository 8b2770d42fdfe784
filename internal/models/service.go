package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name                   string `gorm:"size:100;not null" json:"name"`
	Description            string `gorm:"type:text;not null" json:"description"`
	DefaultDurationMinutes int    `gorm:"not null" json:"default_duration_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Duration is the booked slot length derived from the default duration.
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DefaultDurationMinutes) * time.Minute
}
