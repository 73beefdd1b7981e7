package models

// Match is one entry of the "matches" list produced by the data build.
type Match struct {
	Date                    string   `json:"date"`
	Opponent                string   `json:"opponent"`
	Score                   string   `json:"score"`
	Result                  string   `json:"result"`
	Scorers                 []string `json:"scorers"`
	YellowCardsRecipients   []string `json:"yellow_cards_recipients"`
	RedCardsRecipients      []string `json:"red_cards_recipients"`
	SavedPenaltyGoalkeepers []string `json:"saved_penalty_goalkeepers"`
	ShootoutScore           *string  `json:"shootout_score"`
	Season                  string   `json:"season"`
	HomeStatus              string   `json:"home_status"`
	VideoID                 string   `json:"videoId,omitempty"`
}

// MatchCard is a match shaped for display.
type MatchCard struct {
	Date          string   `json:"date"`
	Title         string   `json:"title"`
	Opponent      string   `json:"opponent"`
	Score         string   `json:"score"`
	Result        string   `json:"result"`
	ResultClass   string   `json:"result_class"`
	Home          bool     `json:"home"`
	ScorersLine   string   `json:"scorers_line"`
	YellowCards   []string `json:"yellow_cards,omitempty"`
	RedCards      []string `json:"red_cards,omitempty"`
	SavedPenalty  []string `json:"saved_penalty,omitempty"`
	ShootoutScore string   `json:"shootout_score,omitempty"`
	Season        string   `json:"season"`
	VideoEmbedURL string   `json:"video_embed_url,omitempty"`
}

// Photo is one gallery thumbnail.
type Photo struct {
	File string `json:"file"`
	Path string `json:"path"`
}
