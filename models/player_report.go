package models

import "time"

// PlayerReport представляет документ о игроке в рамках чемпионата
// (техническая карта, медицинский отчёт и т.д.).
type PlayerReport struct {
	ID             int       `json:"id" db:"id"`
	PlayerID       int       `json:"player_id" db:"player_id"`
	ChampionshipID int       `json:"championship_id" db:"championship_id"`
	Title          string    `json:"title" db:"title"`
	Description    *string   `json:"description,omitempty" db:"description"`
	FileURL        *string   `json:"file_url,omitempty" db:"file_url"`
	ReportType     *string   `json:"report_type,omitempty" db:"report_type"`
	ReportDate     time.Time `json:"report_date" db:"report_date"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Опциональные связанные сущности (не мапятся напрямую)
	Player       *User         `json:"player,omitempty" db:"-"`
	Championship *Championship `json:"championship,omitempty" db:"-"`
}
