package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/tamarindi/team-stats/internal/logic"
	"github.com/tamarindi/team-stats/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFuncs = template.FuncMap{
	"sortHref": sortHref,
	"join":     strings.Join,
}

var (
	statsPage   = parsePage("templates/stats.html")
	matchesPage = parsePage("templates/matches.html")
	galleryPage = parsePage("templates/gallery.html")
)

func parsePage(page string) *template.Template {
	return template.Must(template.New("layout.html").Funcs(pageFuncs).ParseFS(templateFS, "templates/layout.html", page))
}

// sortHref is the link behind a header: the SortSpec one click produces.
func sortHref(season string, next models.SortSpec) string {
	v := url.Values{}
	v.Set("season", season)
	v.Set("sort", next.Column)
	v.Set("dir", string(next.Direction))
	return "/stats?" + v.Encode()
}

type statsPageData struct {
	ClubName string
	Seasons  []models.SeasonOption
	View     models.TableView
}

type matchesPageData struct {
	ClubName string
	Season   string
	Matches  []models.MatchCard
}

type galleryPageData struct {
	ClubName string
	Photos   []models.Photo
	Message  string
}

// Index redirects to the stats page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/stats", http.StatusFound)
}

// StatsPage renders the sortable table. An invalid sort or direction falls
// back to the season's default view instead of an error page.
func (h *Handler) StatsPage(w http.ResponseWriter, r *http.Request) {
	tq, err := h.tableQuery(r, "")
	if err != nil {
		h.logger.Debugw("Ignoring invalid table parameters", "query", r.URL.RawQuery, "error", err)
		tq = h.seasonOnlyQuery(r)
	}

	h.renderPage(w, statsPage, statsPageData{
		ClubName: h.clubName,
		Seasons:  h.stats.Seasons(),
		View:     h.renderView(tq),
	})
}

// MatchesPage renders the match history cards.
func (h *Handler) MatchesPage(w http.ResponseWriter, r *http.Request) {
	mq, err := h.matchQuery(r)
	if err != nil {
		mq = models.MatchQuery{}
	}

	h.renderPage(w, matchesPage, matchesPageData{
		ClubName: h.clubName,
		Season:   mq.Season,
		Matches:  logic.MatchCards(h.stats.Matches(), h.clubName, mq.Season, mq.Limit),
	})
}

// GalleryPage renders the photo grid. Each thumbnail opens a CSS lightbox.
func (h *Handler) GalleryPage(w http.ResponseWriter, r *http.Request) {
	data := galleryPageData{
		ClubName: h.clubName,
		Photos:   logic.GalleryPhotos(h.stats.Gallery()),
	}
	if len(data.Photos) == 0 {
		data.Message = logic.EmptyGalleryMessage
	}
	h.renderPage(w, galleryPage, data)
}

func (h *Handler) renderPage(w http.ResponseWriter, page *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		h.logger.Errorw("Failed to render page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
