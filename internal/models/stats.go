package models

import (
	"strings"
)

// Column keys of the stats file.
const (
	ColName         = "name"
	ColNumber       = "number"
	ColRole         = "role"
	ColApps         = "apps"
	ColGoals        = "goals"
	ColAssists      = "assists"
	ColYellowCards  = "yellow_cards"
	ColRedCards     = "red_cards"
	ColTotalApps    = "total_apps"
	ColTotalGoals   = "total_goals"
	ColTotalAssists = "total_assists"
)

// CareerKey is the season key holding aggregate career records.
const CareerKey = "all_time"

// Record is one row of a season table. Field returns a placeholder for
// columns the record does not carry.
type Record interface {
	Field(column string) StatValue
}

// PlayerSeasonRecord is one player's line for a single season.
type PlayerSeasonRecord struct {
	Name        string    `json:"name"`
	Number      StatValue `json:"number"`
	Apps        StatValue `json:"apps"`
	Goals       StatValue `json:"goals"`
	Assists     StatValue `json:"assists"`
	YellowCards StatValue `json:"yellow_cards"`
	RedCards    StatValue `json:"red_cards"`
}

func (r PlayerSeasonRecord) Field(column string) StatValue {
	switch column {
	case ColName:
		return ParseStatValue(r.Name)
	case ColNumber:
		return r.Number
	case ColApps:
		return r.Apps
	case ColGoals:
		return r.Goals
	case ColAssists:
		return r.Assists
	case ColYellowCards:
		return r.YellowCards
	case ColRedCards:
		return r.RedCards
	}
	return Placeholder("")
}

// PlayerCareerRecord aggregates a player across every season.
type PlayerCareerRecord struct {
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	TotalApps    StatValue `json:"total_apps"`
	TotalGoals   StatValue `json:"total_goals"`
	TotalAssists StatValue `json:"total_assists"`
}

func (r PlayerCareerRecord) Field(column string) StatValue {
	switch column {
	case ColName:
		return ParseStatValue(r.Name)
	case ColRole:
		return ParseStatValue(r.Role)
	case ColTotalApps:
		return r.TotalApps
	case ColTotalGoals:
		return r.TotalGoals
	case ColTotalAssists:
		return r.TotalAssists
	}
	return Placeholder("")
}

// SeasonTable maps a season key ("season_25_26", "all_time") to its records.
type SeasonTable map[string][]Record

// IsCareerKey reports whether key names the aggregate view.
func IsCareerKey(key string) bool {
	return key == CareerKey
}

// SeasonLabel turns "season_25_26" into "Season 25/26" and "all_time" into
// "All Time". Unknown shapes are returned unchanged.
func SeasonLabel(key string) string {
	if IsCareerKey(key) {
		return "All Time"
	}
	rest, ok := strings.CutPrefix(key, "season_")
	if !ok || rest == "" {
		return key
	}
	return "Season " + strings.ReplaceAll(rest, "_", "/")
}

// SeasonOption is one entry of the season selector.
type SeasonOption struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Career  bool   `json:"career"`
	Players int    `json:"players"`
}
