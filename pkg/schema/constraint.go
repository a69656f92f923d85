package schema

import (
	"github.com/leapstack-labs/querykit/pkg/iden"
	"github.com/leapstack-labs/querykit/pkg/query"
)

// ConstraintCreate is ALTER TABLE ... ADD [CONSTRAINT name] followed by a
// PRIMARY KEY, UNIQUE or CHECK constraint.
type ConstraintCreate struct {
	TableName      *iden.TableName
	ConstraintName iden.Dyn
	// Key holds the columns of a PRIMARY KEY or UNIQUE constraint. Its
	// name is the MySQL index name.
	Key        *IndexCreate
	CheckExpr  query.Expr
	Using      iden.Dyn
}

// AddConstraint starts a constraint definition.
func AddConstraint() *ConstraintCreate { return &ConstraintCreate{} }

func (*ConstraintCreate) schemaStatement() {}

// Table sets the constrained table.
func (c *ConstraintCreate) Table(t any) *ConstraintCreate {
	tn := tableName(t)
	c.TableName = &tn
	return c
}

// Name sets the constraint name.
func (c *ConstraintCreate) Name(name string) *ConstraintCreate {
	c.ConstraintName = iden.Name(name)
	return c
}

func (c *ConstraintCreate) key() *IndexCreate {
	if c.Key == nil {
		c.Key = Index()
	}
	return c.Key
}

// Primary makes it a PRIMARY KEY constraint.
func (c *ConstraintCreate) Primary() *ConstraintCreate {
	c.key().IsPrimary = true
	return c
}

// Unique makes it a UNIQUE constraint.
func (c *ConstraintCreate) Unique() *ConstraintCreate {
	c.key().IsUnique = true
	return c
}

// Col appends a key column.
func (c *ConstraintCreate) Col(col iden.Iden) *ConstraintCreate {
	c.key().Col(col)
	return c
}

// IndexName names the backing index (MySQL UNIQUE KEY name).
func (c *ConstraintCreate) IndexName(name string) *ConstraintCreate {
	c.key().Name(name)
	return c
}

// IndexType sets the backing index method (MySQL).
func (c *ConstraintCreate) IndexType(t IndexType) *ConstraintCreate {
	c.key().IndexType(t)
	return c
}

// NullsNotDistinct adds NULLS NOT DISTINCT to a UNIQUE constraint.
func (c *ConstraintCreate) NullsNotDistinct() *ConstraintCreate {
	c.key().NullsNotDistinct()
	return c
}

// Include appends INCLUDE columns (Postgres).
func (c *ConstraintCreate) Include(cols ...iden.Iden) *ConstraintCreate {
	c.key().Include(cols...)
	return c
}

// UsingIndex promotes an existing unique index (Postgres). The constraint
// then takes no columns.
func (c *ConstraintCreate) UsingIndex(name string) *ConstraintCreate {
	c.Using = iden.Name(name)
	return c
}

// Check makes it a CHECK constraint.
func (c *ConstraintCreate) Check(x any) *ConstraintCreate {
	c.CheckExpr = query.IntoExpr(x)
	return c
}

// Build renders the statement.
func (c *ConstraintCreate) Build(sb SchemaBuilder) (string, error) { return Build(c, sb) }

// ToString renders the statement.
func (c *ConstraintCreate) ToString(sb SchemaBuilder) (string, error) { return Build(c, sb) }
