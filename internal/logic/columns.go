package logic

import (
	"github.com/tamarindi/team-stats/internal/models"
)

var seasonColumns = []models.Column{
	{Key: models.ColName, Label: "Player", Identity: true},
	{Key: models.ColNumber, Label: "No.", Identity: true, Numeric: true},
	{Key: models.ColApps, Label: "Apps"},
	{Key: models.ColGoals, Label: "Goals"},
	{Key: models.ColAssists, Label: "Assists"},
	{Key: models.ColYellowCards, Label: "Yellow"},
	{Key: models.ColRedCards, Label: "Red"},
}

var careerColumns = []models.Column{
	{Key: models.ColName, Label: "Player", Identity: true},
	{Key: models.ColRole, Label: "Role", Identity: true},
	{Key: models.ColTotalApps, Label: "Apps"},
	{Key: models.ColTotalGoals, Label: "Goals"},
	{Key: models.ColTotalAssists, Label: "Assists"},
}

// ColumnsFor returns the schema of the view a season key denotes.
func ColumnsFor(seasonKey string) []models.Column {
	if models.IsCareerKey(seasonKey) {
		return careerColumns
	}
	return seasonColumns
}

func lookupColumn(seasonKey, key string) (models.Column, bool) {
	for _, c := range ColumnsFor(seasonKey) {
		if c.Key == key {
			return c, true
		}
	}
	return models.Column{}, false
}
