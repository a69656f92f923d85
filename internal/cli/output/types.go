package output

import (
	"io"

	json "github.com/goccy/go-json"
)

// RenderOutput is one document rendered for one dialect.
type RenderOutput struct {
	Document string  `json:"document"`
	Kind     string  `json:"kind"`
	Dialect  string  `json:"dialect"`
	SQL      string  `json:"sql,omitempty"`
	Params   []Param `json:"params,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// Param is a bound value in marker order.
type Param struct {
	Index  int    `json:"index"`
	Marker string `json:"marker"`
	Kind   string `json:"kind"`
	Value  string `json:"value"`
}

// DialectInfo describes a registered dialect.
type DialectInfo struct {
	Name        string `json:"name"`
	Display     string `json:"display"`
	Quote       string `json:"quote"`
	Placeholder string `json:"placeholder"`
	Upsert      bool   `json:"upsert"`
	Returning   bool   `json:"returning"`
	Arrays      bool   `json:"arrays"`
	// Reserved lists the keywords that collide with identifiers.
	Reserved []string `json:"reserved,omitempty"`
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
