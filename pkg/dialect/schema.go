package dialect

import "github.com/leapstack-labs/querykit/pkg/schema"

func (r *renderer) schemaStatement(s schema.Statement) {
	switch t := s.(type) {
	case *schema.TableCreate:
		r.tableCreate(t)
	case *schema.TableAlter:
		r.tableAlter(t)
	case *schema.TableRename:
		r.tableRename(t)
	case *schema.TableDrop:
		r.tableDrop(t)
	case *schema.TableTruncate:
		r.tableTruncate(t)
	case *schema.IndexCreate:
		r.indexCreate(t)
	case *schema.IndexDrop:
		r.indexDrop(t)
	case *schema.ForeignKeyCreate:
		r.foreignKeyCreate(t)
	case *schema.ForeignKeyDrop:
		r.foreignKeyDrop(t)
	case *schema.TypeCreate:
		r.typeCreate(t)
	case *schema.TypeDrop:
		r.typeDrop(t)
	case *schema.TypeAlter:
		r.typeAlter(t)
	case *schema.ExtensionCreate:
		r.extensionCreate(t)
	case *schema.ExtensionDrop:
		r.extensionDrop(t)
	case *schema.TriggerCreate:
		r.triggerCreate(t)
	case *schema.TriggerDrop:
		r.triggerDrop(t)
	case *schema.ViewCreate:
		r.viewCreate(t)
	case *schema.ViewDrop:
		r.viewDrop(t)
	case *schema.ViewRename:
		r.viewRename(t)
	case *schema.ConstraintCreate:
		r.constraintCreate(t)
	default:
		r.failf("unknown schema statement %T", s)
	}
}

// dropBehavior writes CASCADE or RESTRICT when set.
func (r *renderer) dropBehavior(b schema.DropBehavior) {
	if b == "" {
		return
	}
	r.write(" ")
	r.write(string(b))
}
