package schema

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
)

// TriggerTiming is BEFORE, AFTER or INSTEAD OF.
type TriggerTiming string

// Trigger timings.
const (
	Before    TriggerTiming = "BEFORE"
	After     TriggerTiming = "AFTER"
	InsteadOf TriggerTiming = "INSTEAD OF"
)

// TriggerEvent is the statement kind that fires the trigger.
type TriggerEvent string

// Trigger events.
const (
	OnInsert TriggerEvent = "INSERT"
	OnUpdate TriggerEvent = "UPDATE"
	OnDelete TriggerEvent = "DELETE"
)

// TriggerCreate is CREATE TRIGGER. Postgres triggers call Function;
// MySQL and SQLite triggers run Body.
type TriggerCreate struct {
	TriggerName iden.Dyn
	TableName   iden.TableName
	Timing      TriggerTiming
	Event       TriggerEvent
	Function    iden.Dyn
	Body        []query.Statement
}

// CreateTrigger starts CREATE TRIGGER name.
func CreateTrigger(name string) *TriggerCreate {
	return &TriggerCreate{TriggerName: iden.Name(name), Timing: After, Event: OnInsert}
}

func (*TriggerCreate) schemaStatement() {}

// On sets the table and firing condition.
func (t *TriggerCreate) On(table any, timing TriggerTiming, event TriggerEvent) *TriggerCreate {
	t.TableName = tableName(table)
	t.Timing = timing
	t.Event = event
	return t
}

// Execute sets the trigger function (Postgres).
func (t *TriggerCreate) Execute(fn iden.Iden) *TriggerCreate {
	t.Function = iden.Of(fn)
	return t
}

// Do appends a body statement (MySQL, SQLite).
func (t *TriggerCreate) Do(stmt query.Statement) *TriggerCreate {
	t.Body = append(t.Body, stmt)
	return t
}

// Build renders the statement.
func (t *TriggerCreate) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TriggerCreate) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// TriggerDrop is DROP TRIGGER.
type TriggerDrop struct {
	TriggerName iden.Dyn
	TableName   *iden.TableName
	IsIfExists  bool
}

// DropTrigger starts DROP TRIGGER name.
func DropTrigger(name string) *TriggerDrop {
	return &TriggerDrop{TriggerName: iden.Name(name)}
}

func (*TriggerDrop) schemaStatement() {}

// Table sets the table; Postgres requires it.
func (t *TriggerDrop) Table(name any) *TriggerDrop {
	tn := tableName(name)
	t.TableName = &tn
	return t
}

// IfExists adds IF EXISTS.
func (t *TriggerDrop) IfExists() *TriggerDrop {
	t.IsIfExists = true
	return t
}

// Build renders the statement.
func (t *TriggerDrop) Build(sb SchemaBuilder) (string, error) { return Build(t, sb) }

// ToString renders the statement.
func (t *TriggerDrop) ToString(sb SchemaBuilder) (string, error) { return Build(t, sb) }
