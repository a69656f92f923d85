package dialect

import "github.com/leapstack-labs/querykit/pkg/schema"

func (r *renderer) typeCreate(t *schema.TypeCreate) {
	if !r.cfg.SupportsUserTypes {
		r.unsupported("CREATE TYPE")
		return
	}
	r.write("CREATE TYPE ")
	r.typeName(t.TypeName)
	r.write(" AS ENUM (")
	r.w.List(len(t.Variants), ", ", func(i int) { r.write(r.d.QuoteString(t.Variants[i])) })
	r.write(")")
}

func (r *renderer) typeDrop(t *schema.TypeDrop) {
	if !r.cfg.SupportsUserTypes {
		r.unsupported("DROP TYPE")
		return
	}
	if len(t.Names) == 0 {
		r.failf("drop type without names")
		return
	}
	r.write("DROP TYPE ")
	if t.IsIfExists {
		r.write("IF EXISTS ")
	}
	r.w.List(len(t.Names), ", ", func(i int) { r.typeName(t.Names[i]) })
	r.dropBehavior(t.Behavior)
}

func (r *renderer) typeAlter(t *schema.TypeAlter) {
	if !r.cfg.SupportsUserTypes {
		r.unsupported("ALTER TYPE")
		return
	}
	r.write("ALTER TYPE ")
	r.typeName(t.TypeName)
	switch o := t.Option.(type) {
	case schema.AddValueOption:
		r.write(" ADD VALUE ")
		if o.IsIfNotExists {
			r.write("IF NOT EXISTS ")
		}
		r.write(r.d.QuoteString(o.Value))
		switch {
		case o.Before != "":
			r.write(" BEFORE ")
			r.write(r.d.QuoteString(o.Before))
		case o.After != "":
			r.write(" AFTER ")
			r.write(r.d.QuoteString(o.After))
		}
	case schema.RenameTypeOption:
		r.write(" RENAME TO ")
		r.iden(o.To)
	case schema.RenameValueOption:
		r.write(" RENAME VALUE ")
		r.write(r.d.QuoteString(o.From))
		r.write(" TO ")
		r.write(r.d.QuoteString(o.To))
	case nil:
		r.failf("alter type without an operation")
	default:
		r.failf("unknown alter type option %T", o)
	}
}

// Extension names are written unquoted.
func (r *renderer) extensionCreate(e *schema.ExtensionCreate) {
	if !r.cfg.SupportsExtensions {
		r.unsupported("CREATE EXTENSION")
		return
	}
	r.write("CREATE EXTENSION ")
	if e.IsIfNotExists {
		r.write("IF NOT EXISTS ")
	}
	r.write(e.ExtName.Unquoted())
	if !e.SchemaName.IsZero() {
		r.write(" WITH SCHEMA ")
		r.write(e.SchemaName.Unquoted())
	}
	if e.VersionName != "" {
		r.write(" VERSION ")
		r.write(e.VersionName)
	}
	if e.IsCascade {
		r.write(" CASCADE")
	}
}

func (r *renderer) extensionDrop(e *schema.ExtensionDrop) {
	if !r.cfg.SupportsExtensions {
		r.unsupported("DROP EXTENSION")
		return
	}
	if len(e.Names) == 0 {
		r.failf("drop extension without names")
		return
	}
	r.write("DROP EXTENSION ")
	if e.IsIfExists {
		r.write("IF EXISTS ")
	}
	r.w.List(len(e.Names), ", ", func(i int) { r.write(e.Names[i].Unquoted()) })
	r.dropBehavior(e.Behavior)
}

func (r *renderer) triggerCreate(t *schema.TriggerCreate) {
	if r.cfg.Triggers == TriggerUnsupported {
		r.unsupported("CREATE TRIGGER")
		return
	}
	r.write("CREATE TRIGGER ")
	r.iden(t.TriggerName)
	r.write(" ")
	r.write(string(t.Timing))
	r.write(" ")
	r.write(string(t.Event))
	r.write(" ON ")
	r.tableName(t.TableName)
	r.write(" FOR EACH ROW ")

	if r.cfg.Triggers == TriggerFunction {
		if t.Function.IsZero() {
			r.failf("trigger %s without function", t.TriggerName.Unquoted())
			return
		}
		r.write("EXECUTE FUNCTION ")
		r.iden(t.Function)
		r.write("()")
		return
	}
	if len(t.Body) == 0 {
		r.failf("trigger %s without body", t.TriggerName.Unquoted())
		return
	}
	if len(t.Body) == 1 && r.cfg.Triggers == TriggerBody {
		r.statement(t.Body[0])
		return
	}
	r.write("BEGIN ")
	for _, s := range t.Body {
		r.statement(s)
		r.write("; ")
	}
	r.write("END")
}

func (r *renderer) triggerDrop(t *schema.TriggerDrop) {
	if r.cfg.Triggers == TriggerUnsupported {
		r.unsupported("DROP TRIGGER")
		return
	}
	r.write("DROP TRIGGER ")
	if t.IsIfExists {
		r.write("IF EXISTS ")
	}
	r.iden(t.TriggerName)
	if r.cfg.Triggers != TriggerFunction {
		return
	}
	if t.TableName == nil {
		r.failf("drop trigger %s without table", t.TriggerName.Unquoted())
		return
	}
	r.write(" ON ")
	r.tableName(*t.TableName)
}
