// Package stmtdoc decodes YAML statement documents into query and schema
// statements.
//
// A file holds one or more documents separated by "---". Each document names
// exactly one statement:
//
//	name: recent glyphs
//	select:
//	  columns: [id, name]
//	  from: glyph
//	  where:
//	    all:
//	      - {col: id, op: ">", value: 5}
//	      - any:
//	          - {col: name, op: like, value: "a%"}
//	          - {col: name, op: is_null}
//	  order_by:
//	    - {col: id, desc: true}
//	  limit: 10
package stmtdoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoStatement is returned for a document without a statement key.
	ErrNoStatement = errors.New("document has no statement")
	// ErrManyStatements is returned for a document with more than one
	// statement key.
	ErrManyStatements = errors.New("document has more than one statement")
)

// Document is one YAML document.
type Document struct {
	Name        string       `yaml:"name"`
	Select      *Select      `yaml:"select"`
	Insert      *Insert      `yaml:"insert"`
	Update      *Update      `yaml:"update"`
	Delete      *Delete      `yaml:"delete"`
	CreateTable *CreateTable `yaml:"create_table"`
	DropTable   *DropTable   `yaml:"drop_table"`
	CreateIndex *CreateIndex `yaml:"create_index"`
	CreateView  *CreateView  `yaml:"create_view"`
	DropView    *DropView    `yaml:"drop_view"`
	Explain     *Explain     `yaml:"explain"`

	// Source is the file the document came from, if any.
	Source string `yaml:"-"`
	// Index is the position of the document in its file, from 1.
	Index int `yaml:"-"`
}

// Label names the document for output: its name, or source and index.
func (d *Document) Label() string {
	if d.Name != "" {
		return d.Name
	}
	if d.Source != "" {
		return fmt.Sprintf("%s#%d", d.Source, d.Index)
	}
	return fmt.Sprintf("#%d", d.Index)
}

// Kind returns the statement key of the document, e.g. "select".
func (d *Document) Kind() string {
	switch {
	case d.Select != nil:
		return "select"
	case d.Insert != nil:
		return "insert"
	case d.Update != nil:
		return "update"
	case d.Delete != nil:
		return "delete"
	case d.CreateTable != nil:
		return "create_table"
	case d.DropTable != nil:
		return "drop_table"
	case d.CreateIndex != nil:
		return "create_index"
	case d.CreateView != nil:
		return "create_view"
	case d.DropView != nil:
		return "drop_view"
	case d.Explain != nil:
		return "explain"
	}
	return ""
}

func (d *Document) count() int {
	n := 0
	for _, set := range []bool{
		d.Select != nil, d.Insert != nil, d.Update != nil, d.Delete != nil,
		d.CreateTable != nil, d.DropTable != nil, d.CreateIndex != nil,
		d.CreateView != nil, d.DropView != nil, d.Explain != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Select is a SELECT statement.
type Select struct {
	Distinct bool      `yaml:"distinct"`
	Columns  []string  `yaml:"columns"`
	From     string    `yaml:"from"`
	Alias    string    `yaml:"alias"`
	Joins    []Join    `yaml:"joins"`
	Where    *Cond     `yaml:"where"`
	GroupBy  []string  `yaml:"group_by"`
	Having   *Cond     `yaml:"having"`
	OrderBy  []OrderBy `yaml:"order_by"`
	Limit    *uint64   `yaml:"limit"`
	Offset   *uint64   `yaml:"offset"`
}

// Join joins a table on a condition.
type Join struct {
	Kind  string `yaml:"kind"` // inner, left, right, full
	Table string `yaml:"table"`
	On    *Cond  `yaml:"on"`
}

// OrderBy orders by one column.
type OrderBy struct {
	Col  string `yaml:"col"`
	Desc bool   `yaml:"desc"`
}

// Insert is an INSERT statement.
type Insert struct {
	Into       string      `yaml:"into"`
	Columns    []string    `yaml:"columns"`
	Values     [][]any     `yaml:"values"`
	Select     *Select     `yaml:"select"`
	Replace    bool        `yaml:"replace"`
	OnConflict *OnConflict `yaml:"on_conflict"`
	Returning  []string    `yaml:"returning"`
}

// OnConflict is the conflict clause of an INSERT.
type OnConflict struct {
	Columns   []string `yaml:"columns"`
	Update    []string `yaml:"update"`
	DoNothing bool     `yaml:"do_nothing"`
}

// Update is an UPDATE statement.
type Update struct {
	Table     string   `yaml:"table"`
	Set       []Assign `yaml:"set"`
	Where     *Cond    `yaml:"where"`
	Returning []string `yaml:"returning"`
}

// Assign sets one column.
type Assign struct {
	Col   string `yaml:"col"`
	Value any    `yaml:"value"`
}

// Delete is a DELETE statement.
type Delete struct {
	From      string   `yaml:"from"`
	Where     *Cond    `yaml:"where"`
	Returning []string `yaml:"returning"`
}

// CreateTable is a CREATE TABLE statement.
type CreateTable struct {
	Table       string   `yaml:"table"`
	IfNotExists bool     `yaml:"if_not_exists"`
	Columns     []Column `yaml:"columns"`
	PrimaryKey  []string `yaml:"primary_key"`
}

// Column is a column definition.
type Column struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Length        uint32 `yaml:"length"`
	Precision     uint32 `yaml:"precision"`
	Scale         uint32 `yaml:"scale"`
	NotNull       bool   `yaml:"not_null"`
	PrimaryKey    bool   `yaml:"primary_key"`
	AutoIncrement bool   `yaml:"auto_increment"`
	Unique        bool   `yaml:"unique"`
	Default       any    `yaml:"default"`
	Comment       string `yaml:"comment"`
}

// DropTable is a DROP TABLE statement.
type DropTable struct {
	Tables   []string `yaml:"tables"`
	IfExists bool     `yaml:"if_exists"`
	Cascade  bool     `yaml:"cascade"`
}

// CreateIndex is a CREATE INDEX statement.
type CreateIndex struct {
	Name        string   `yaml:"name"`
	Table       string   `yaml:"table"`
	Columns     []string `yaml:"columns"`
	Unique      bool     `yaml:"unique"`
	IfNotExists bool     `yaml:"if_not_exists"`
	Where       *Cond    `yaml:"where"`
}

// CreateView is a CREATE VIEW statement.
type CreateView struct {
	View        string   `yaml:"view"`
	Columns     []string `yaml:"columns"`
	OrReplace   bool     `yaml:"or_replace"`
	IfNotExists bool     `yaml:"if_not_exists"`
	Temporary   bool     `yaml:"temporary"`
	Select      *Select  `yaml:"select"`
}

// DropView is a DROP VIEW statement.
type DropView struct {
	Views    []string `yaml:"views"`
	IfExists bool     `yaml:"if_exists"`
	Cascade  bool     `yaml:"cascade"`
}

// Explain wraps one DML statement in EXPLAIN.
type Explain struct {
	Analyze   bool    `yaml:"analyze"`
	Format    string  `yaml:"format"`
	QueryPlan bool    `yaml:"query_plan"`
	Select    *Select `yaml:"select"`
	Insert    *Insert `yaml:"insert"`
	Update    *Update `yaml:"update"`
	Delete    *Delete `yaml:"delete"`
}

// Parse decodes every document in r. Empty documents are skipped.
func Parse(r io.Reader) ([]*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []*Document
	for n := 1; ; n++ {
		var d Document
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", n, err)
		}
		switch d.count() {
		case 0:
			if d.Name == "" {
				continue
			}
			return nil, fmt.Errorf("document %d: %w", n, ErrNoStatement)
		case 1:
		default:
			return nil, fmt.Errorf("document %d: %w", n, ErrManyStatements)
		}
		d.Index = n
		docs = append(docs, &d)
	}
	return docs, nil
}

// ParseFile decodes every document in the file at path.
func ParseFile(path string) ([]*Document, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	docs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, d := range docs {
		d.Source = path
	}
	return docs, nil
}
