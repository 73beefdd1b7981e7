package models

// Direction of a sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Indicator is the arrow shown next to the active header.
func (d Direction) Indicator() string {
	if d == Asc {
		return "▲"
	}
	return "▼"
}

// SortSpec is the (column, direction) pair governing table order.
type SortSpec struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// Column describes one column of a table schema. Identity columns (name,
// shirt number, role) sort ascending on first click.
type Column struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Identity bool   `json:"identity"`
	// Numeric forces numeric comparison; text is demoted to a placeholder.
	Numeric bool `json:"-"`
}

// HeaderCell is one rendered header. Next is the SortSpec a click produces.
type HeaderCell struct {
	Column    string   `json:"column"`
	Label     string   `json:"label"`
	Active    bool     `json:"active"`
	Indicator string   `json:"indicator,omitempty"`
	Next      SortSpec `json:"next"`
}

// Cell is one rendered body cell.
type Cell struct {
	Column    string `json:"column"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight,omitempty"`
}

// Row is either a player row or the single informational row of an empty
// table, in which case Message is set and Span covers every column.
type Row struct {
	Cells   []Cell `json:"cells,omitempty"`
	Message string `json:"message,omitempty"`
	Span    int    `json:"span,omitempty"`
}

// TableView is the adapter-independent output of a render.
type TableView struct {
	Season      string       `json:"season"`
	SeasonLabel string       `json:"season_label"`
	Career      bool         `json:"career"`
	Sort        SortSpec     `json:"sort"`
	Header      []HeaderCell `json:"header"`
	Rows        []Row        `json:"rows"`
	Empty       bool         `json:"empty"`
}
