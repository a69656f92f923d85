package dialect

import "github.com/leapstack-labs/querykit/pkg/schema"

func (r *renderer) viewCreate(v *schema.ViewCreate) {
	vc := r.cfg.Views
	if !vc.Supported {
		r.unsupported("CREATE VIEW")
		return
	}
	if v.ViewName.Name.IsZero() {
		r.failf("create view without name")
		return
	}
	if v.Select == nil {
		r.failf("create view without query")
		return
	}
	if v.IsOrReplace && v.IsIfNotExists {
		r.failf("create view with both OR REPLACE and IF NOT EXISTS")
		return
	}
	r.write("CREATE ")
	if v.IsOrReplace {
		if !vc.OrReplace {
			r.unsupported("CREATE OR REPLACE VIEW")
			return
		}
		r.write("OR REPLACE ")
	}
	if v.IsTemporary {
		if !vc.Temporary {
			r.unsupported("temporary views")
			return
		}
		r.write("TEMPORARY ")
	}
	if v.IsRecursive {
		if !vc.Recursive {
			r.unsupported("recursive views")
			return
		}
		if len(v.ColumnNames) == 0 {
			r.failf("recursive view without columns")
			return
		}
		r.write("RECURSIVE ")
	}
	r.write("VIEW ")
	if v.IsIfNotExists {
		if !vc.IfNotExists {
			r.unsupported("CREATE VIEW IF NOT EXISTS")
			return
		}
		r.write("IF NOT EXISTS ")
	}
	r.tableName(v.ViewName)
	if len(v.ColumnNames) > 0 {
		r.write(" (")
		r.idens(v.ColumnNames)
		r.write(")")
	}
	r.write(" AS ")
	r.selectStatement(v.Select)
	if v.Check != "" {
		if !vc.CheckOption {
			r.unsupported("WITH CHECK OPTION")
			return
		}
		r.write(" WITH ")
		r.write(string(v.Check))
		r.write(" CHECK OPTION")
	}
}

func (r *renderer) viewDrop(v *schema.ViewDrop) {
	vc := r.cfg.Views
	if !vc.Supported {
		r.unsupported("DROP VIEW")
		return
	}
	if len(v.Views) == 0 {
		r.failf("drop view without views")
		return
	}
	if len(v.Views) > 1 && !vc.DropMany {
		r.unsupported("dropping several views at once")
		return
	}
	if v.Behavior != "" && !r.cfg.DropBehavior {
		r.unsupported("DROP VIEW " + string(v.Behavior))
		return
	}
	r.write("DROP VIEW ")
	if v.IsIfExists {
		r.write("IF EXISTS ")
	}
	r.w.List(len(v.Views), ", ", func(i int) { r.tableName(v.Views[i]) })
	r.dropBehavior(v.Behavior)
}

func (r *renderer) viewRename(v *schema.ViewRename) {
	if !r.cfg.Views.Supported {
		r.unsupported("RENAME VIEW")
		return
	}
	r.rename("VIEW", r.cfg.Views.Rename, v.From, v.To)
}

// constraintCreate writes ALTER TABLE ... ADD for a key or check
// constraint. Foreign keys have their own statement.
func (r *renderer) constraintCreate(c *schema.ConstraintCreate) {
	if !r.cfg.AlterConstraints {
		r.unsupported("adding constraints to existing tables")
		return
	}
	if c.TableName == nil {
		r.failf("constraint without table")
		return
	}
	keyed := c.Key != nil && (c.Key.IsPrimary || c.Key.IsUnique)
	if keyed == (c.CheckExpr != nil) {
		r.failf("constraint needs exactly one of PRIMARY KEY, UNIQUE or CHECK")
		return
	}
	r.write("ALTER TABLE ")
	r.tableName(*c.TableName)
	r.write(" ADD ")
	switch {
	case c.CheckExpr != nil:
		r.constraintName(c)
		r.write("CHECK (")
		r.expr(c.CheckExpr)
		r.write(")")
	case !c.Using.IsZero():
		if !r.cfg.ConstraintUsingIndex {
			r.unsupported("USING INDEX constraints")
			return
		}
		if len(c.Key.Columns) > 0 {
			r.failf("USING INDEX constraint with columns")
			return
		}
		r.constraintName(c)
		if c.Key.IsPrimary {
			r.write("PRIMARY KEY")
		} else {
			r.write("UNIQUE")
		}
		r.write(" USING INDEX ")
		r.iden(c.Using)
	case r.cfg.TableKeys:
		r.constraintName(c)
		r.tableIndex(c.Key)
	default:
		key := *c.Key
		key.IndexName = c.ConstraintName
		r.tableIndex(&key)
	}
}

func (r *renderer) constraintName(c *schema.ConstraintCreate) {
	if c.ConstraintName.IsZero() {
		return
	}
	r.write("CONSTRAINT ")
	r.iden(c.ConstraintName)
	r.write(" ")
}
