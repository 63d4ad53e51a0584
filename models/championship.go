package models

import "time"

// ChampionshipStatus представляет статусы чемпионата, соответствующие ENUM в БД.
type ChampionshipStatus string

const (
	ChampionshipActive    ChampionshipStatus = "active"
	ChampionshipSuspended ChampionshipStatus = "suspended"
	ChampionshipFinished  ChampionshipStatus = "finished"
)

// ValidChampionshipStatus reports whether status is a member of the enumerated set.
func ValidChampionshipStatus(status ChampionshipStatus) bool {
	switch status {
	case ChampionshipActive, ChampionshipSuspended, ChampionshipFinished:
		return true
	}
	return false
}

// Championship представляет чемпионат (турнир/сезон).
type Championship struct {
	ID          int                `json:"id" db:"id"`
	Name        string             `json:"name" db:"name"`
	Description *string            `json:"description,omitempty" db:"description"`
	StartDate   *time.Time         `json:"start_date,omitempty" db:"start_date"`
	EndDate     *time.Time         `json:"end_date,omitempty" db:"end_date"`
	Canton      *string            `json:"canton,omitempty" db:"canton"`
	Parish      *string            `json:"parish,omitempty" db:"parish"`
	Status      ChampionshipStatus `json:"status" db:"status"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" db:"updated_at"`
}
