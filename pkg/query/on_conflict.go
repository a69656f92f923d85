package query

import "github.com/leapstack-labs/querykit/pkg/iden"

// ConflictAction is what ON CONFLICT does.
type ConflictAction interface {
	conflictAction()
}

// DoNothingAction is DO NOTHING. On lists the columns MySQL uses to
// emulate it with col = col.
type DoNothingAction struct {
	On []iden.Dyn
}

// UpdateAction is DO UPDATE SET ...
type UpdateAction struct {
	Items []ConflictUpdate
}

// ConflictUpdate is one SET item. A nil Expr copies the proposed row's
// value (excluded.col or VALUES(col)).
type ConflictUpdate struct {
	Column iden.Dyn
	Expr   Expr
}

func (DoNothingAction) conflictAction() {}
func (*UpdateAction) conflictAction()   {}

// OnConflict describes INSERT ... ON CONFLICT. Targets and Constraint
// are exclusive.
type OnConflict struct {
	Targets     []Expr
	Constraint  iden.Dyn
	TargetWhere ConditionHolder
	Action      ConflictAction
	ActionWhere ConditionHolder
}

// NewOnConflict starts a conflict clause without target.
func NewOnConflict() *OnConflict { return &OnConflict{} }

// OnConflictColumn targets a single column.
func OnConflictColumn(col iden.Iden) *OnConflict {
	return OnConflictColumns(col)
}

// OnConflictColumns targets several columns.
func OnConflictColumns(cols ...iden.Iden) *OnConflict {
	oc := &OnConflict{}
	for _, c := range cols {
		oc.Targets = append(oc.Targets, ColumnExpr{Ref: iden.Col(c)})
	}
	return oc
}

// OnConflictExprs targets expressions, e.g. LOWER(col) for expression
// indexes.
func OnConflictExprs(xs ...any) *OnConflict {
	return &OnConflict{Targets: intoExprs(xs)}
}

// OnConflictConstraint targets a named constraint.
func OnConflictConstraint(name string) *OnConflict {
	return &OnConflict{Constraint: iden.Name(name)}
}

// Clone returns an independent copy.
func (oc *OnConflict) Clone() *OnConflict {
	if oc == nil {
		return nil
	}
	out := *oc
	out.Targets = append([]Expr(nil), oc.Targets...)
	out.TargetWhere = oc.TargetWhere.clone()
	out.ActionWhere = oc.ActionWhere.clone()
	switch a := oc.Action.(type) {
	case DoNothingAction:
		out.Action = DoNothingAction{On: append([]iden.Dyn(nil), a.On...)}
	case *UpdateAction:
		out.Action = &UpdateAction{Items: append([]ConflictUpdate(nil), a.Items...)}
	}
	return &out
}

// DoNothing sets DO NOTHING.
func (oc *OnConflict) DoNothing() *OnConflict {
	oc.Action = DoNothingAction{}
	return oc
}

// DoNothingOn sets DO NOTHING and names the columns MySQL rewrites to
// col = col.
func (oc *OnConflict) DoNothingOn(cols ...iden.Iden) *OnConflict {
	oc.Action = DoNothingAction{On: iden.All(cols...)}
	return oc
}

func (oc *OnConflict) update() *UpdateAction {
	if a, ok := oc.Action.(*UpdateAction); ok {
		return a
	}
	a := &UpdateAction{}
	oc.Action = a
	return a
}

// UpdateColumn copies the proposed value of col.
func (oc *OnConflict) UpdateColumn(col iden.Iden) *OnConflict {
	a := oc.update()
	a.Items = append(a.Items, ConflictUpdate{Column: iden.Of(col)})
	return oc
}

// UpdateColumns copies the proposed values of cols.
func (oc *OnConflict) UpdateColumns(cols ...iden.Iden) *OnConflict {
	for _, c := range cols {
		oc.UpdateColumn(c)
	}
	return oc
}

// Value sets col to an explicit expression.
func (oc *OnConflict) Value(col iden.Iden, x any) *OnConflict {
	a := oc.update()
	a.Items = append(a.Items, ConflictUpdate{Column: iden.Of(col), Expr: IntoExpr(x)})
	return oc
}

// TargetAndWhere adds to the target WHERE, used for partial indexes.
func (oc *OnConflict) TargetAndWhere(x any) *OnConflict {
	oc.TargetWhere.And(x)
	return oc
}

// ActionAndWhere adds to the DO UPDATE WHERE.
func (oc *OnConflict) ActionAndWhere(x any) *OnConflict {
	oc.ActionWhere.And(x)
	return oc
}
