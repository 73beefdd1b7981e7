package logic

import (
	"cmp"
	"path"
	"slices"
	"strings"

	"github.com/tamarindi/team-stats/internal/models"
)

const (
	noGoalsLine     = "No goals scored"
	youtubeEmbedURL = "https://www.youtube.com/embed/"
	// GalleryDir is where gallery images are served from.
	GalleryDir = "images/gallery"
	// EmptyGalleryMessage is shown when the archive has no photos.
	EmptyGalleryMessage = "No photos found in the archive."
)

// MatchCards filters matches by season ("" keeps all), orders them newest
// first and shapes them for display. limit <= 0 returns every match.
func MatchCards(matches []models.Match, clubName, season string, limit int) []models.MatchCard {
	selected := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if season == "" || m.Season == season {
			selected = append(selected, m)
		}
	}
	slices.SortStableFunc(selected, func(a, b models.Match) int {
		return cmp.Compare(matchDateKey(b.Date), matchDateKey(a.Date))
	})
	if limit > 0 && len(selected) > limit {
		selected = selected[:limit]
	}

	cards := make([]models.MatchCard, 0, len(selected))
	for _, m := range selected {
		cards = append(cards, matchCard(m, clubName))
	}
	return cards
}

func matchCard(m models.Match, clubName string) models.MatchCard {
	card := models.MatchCard{
		Date:         m.Date,
		Title:        clubName + " vs " + m.Opponent,
		Opponent:     m.Opponent,
		Score:        m.Score,
		Result:       m.Result,
		ResultClass:  resultClass(m.Result),
		Home:         m.HomeStatus == "Home",
		ScorersLine:  ScorersLine(m.Scorers),
		YellowCards:  m.YellowCardsRecipients,
		RedCards:     m.RedCardsRecipients,
		SavedPenalty: m.SavedPenaltyGoalkeepers,
		Season:       m.Season,
	}
	if m.ShootoutScore != nil {
		card.ShootoutScore = *m.ShootoutScore
	}
	if id := strings.TrimSpace(m.VideoID); id != "" {
		card.VideoEmbedURL = youtubeEmbedURL + id
	}
	return card
}

// ScorersLine joins scorer names behind a ball, or reports a goalless game.
func ScorersLine(scorers []string) string {
	if len(scorers) == 0 {
		return noGoalsLine
	}
	return "⚽ " + strings.Join(scorers, ", ")
}

func resultClass(result string) string {
	switch {
	case strings.HasPrefix(result, "W"):
		return "win"
	case strings.HasPrefix(result, "L"):
		return "loss"
	case result == "D":
		return "draw"
	default:
		return "unknown"
	}
}

// matchDateKey makes "2024/03/09" and "2024-03-09" compare alike.
func matchDateKey(date string) string {
	return strings.ReplaceAll(strings.TrimSpace(date), "/", "-")
}

// GalleryPhotos maps gallery file names to their served paths, dropping
// blanks and anything trying to leave the gallery directory.
func GalleryPhotos(files []string) []models.Photo {
	photos := make([]models.Photo, 0, len(files))
	for _, f := range files {
		name := strings.TrimSpace(f)
		if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
			continue
		}
		photos = append(photos, models.Photo{File: name, Path: path.Join(GalleryDir, name)})
	}
	return photos
}
