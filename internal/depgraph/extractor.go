package depgraph

import (
	"strings"

	"github.com/robfromboulder/viewmapper/internal/sqlast"
)

// ExtractReferences walks a parsed query and returns the deduped table
// references it depends on, in first-seen order. CTE names bound by an
// enclosing WITH clause are masked: a bare reference to a CTE name never
// becomes a TableReference. UNNEST and VALUES table positions never
// contribute a reference either, and literals, comments, and column
// references are not table-bearing positions at all.
func ExtractReferences(q *sqlast.Query) []TableReference {
	ex := &extractor{
		seen: make(map[string]bool),
	}
	ex.walkQuery(q)
	return ex.refs
}

type extractor struct {
	cteScopes [][]string
	seen      map[string]bool
	refs      []TableReference
}

func (ex *extractor) pushCTEScope(names []string) {
	ex.cteScopes = append(ex.cteScopes, names)
}

func (ex *extractor) popCTEScope() {
	ex.cteScopes = ex.cteScopes[:len(ex.cteScopes)-1]
}

func (ex *extractor) isMaskedCTE(name string) bool {
	for _, scope := range ex.cteScopes {
		for _, cte := range scope {
			if cte == name {
				return true
			}
		}
	}
	return false
}

func (ex *extractor) addReference(parts []string) {
	ref := NewTableReference(parts)
	label := ref.Label()
	if ex.seen[label] {
		return
	}
	ex.seen[label] = true
	ex.refs = append(ex.refs, ref)
}

func (ex *extractor) walkQuery(q *sqlast.Query) {
	if q.With != nil {
		names := make([]string, len(q.With.CTEs))
		for i, cte := range q.With.CTEs {
			names[i] = strings.ToLower(cte.Name)
		}
		ex.pushCTEScope(names)
		defer ex.popCTEScope()

		for _, cte := range q.With.CTEs {
			ex.walkQuery(&cte.Query)
		}
	}

	ex.walkSetOperation(&q.Body)
	for _, ob := range q.OrderBy {
		ex.walkExpression(&ob.Expr)
	}
}

func (ex *extractor) walkSetOperation(op *sqlast.SetOperation) {
	ex.walkQueryPrimary(&op.Left)
	for _, rest := range op.Rest {
		ex.walkQueryPrimary(&rest.Right)
	}
}

func (ex *extractor) walkQueryPrimary(qp *sqlast.QueryPrimary) {
	switch {
	case qp.Paren != nil:
		ex.walkQuery(qp.Paren)
	case qp.Select != nil:
		ex.walkQuerySpecification(qp.Select)
	case qp.Values != nil:
		ex.walkValuesClause(qp.Values)
	}
}

func (ex *extractor) walkQuerySpecification(qs *sqlast.QuerySpecification) {
	for _, item := range qs.Items {
		ex.walkSelectItem(&item)
	}
	if qs.From != nil {
		ex.walkFromClause(qs.From)
	}
	if qs.Where != nil {
		ex.walkExpression(qs.Where)
	}
	for _, g := range qs.GroupBy {
		ex.walkExpression(&g)
	}
	if qs.Having != nil {
		ex.walkExpression(qs.Having)
	}
}

func (ex *extractor) walkSelectItem(item *sqlast.SelectItem) {
	if item.Expr != nil {
		ex.walkExpression(&item.Expr.Value)
	}
}

func (ex *extractor) walkFromClause(fc *sqlast.FromClause) {
	for _, te := range fc.Tables {
		ex.walkTableExpr(&te)
	}
}

func (ex *extractor) walkTableExpr(te *sqlast.TableExpr) {
	ex.walkTablePrimary(&te.Primary)
	for _, j := range te.Joins {
		ex.walkJoinClause(&j)
	}
}

func (ex *extractor) walkJoinClause(j *sqlast.JoinClause) {
	ex.walkTablePrimary(&j.Table)
	if j.Condition != nil && j.Condition.On != nil {
		ex.walkExpression(j.Condition.On)
	}
}

// walkTablePrimary is where rule 7 is enforced: only the Name branch ever
// emits a TableReference. Unnest's arguments and a paren-wrapped VALUES
// body are still walked for nested scalar subqueries, but neither ever
// yields a reference of their own.
func (ex *extractor) walkTablePrimary(tp *sqlast.TablePrimary) {
	switch {
	case tp.Unnest != nil:
		for _, a := range tp.Unnest.Args {
			ex.walkExpression(&a)
		}
	case tp.Paren != nil:
		ex.walkQuery(&tp.Paren.Query)
	case tp.Name != nil:
		parts := tp.Name.Name.Strings()
		simple := tp.Name.Name.Last()
		if len(parts) == 1 && ex.isMaskedCTE(simple) {
			return
		}
		ex.addReference(parts)
	}
}

func (ex *extractor) walkValuesClause(vc *sqlast.ValuesClause) {
	for _, row := range vc.Rows {
		for _, e := range row.Exprs {
			ex.walkExpression(&e)
		}
	}
}

func (ex *extractor) walkExpression(e *sqlast.Expression) {
	ex.walkOr(&e.Or)
}

func (ex *extractor) walkOr(o *sqlast.OrExpr) {
	ex.walkAnd(&o.Left)
	for _, a := range o.Rest {
		ex.walkAnd(&a)
	}
}

func (ex *extractor) walkAnd(a *sqlast.AndExpr) {
	ex.walkNot(&a.Left)
	for _, n := range a.Rest {
		ex.walkNot(&n)
	}
}

func (ex *extractor) walkNot(n *sqlast.Notexpr) {
	ex.walkComparison(&n.Comparison)
}

func (ex *extractor) walkComparison(c *sqlast.Comparison) {
	ex.walkAddition(&c.Left)
	if c.Rest == nil {
		return
	}
	switch {
	case c.Rest.Simple != nil:
		ex.walkAddition(&c.Rest.Simple.Right)
	case c.Rest.In != nil:
		ex.walkInPredicate(c.Rest.In)
	case c.Rest.Between != nil:
		ex.walkAddition(&c.Rest.Between.Low)
		ex.walkAddition(&c.Rest.Between.High)
	}
}

// walkInPredicate covers the IN predicate node kind: when its right side
// is a subquery, that subquery's references flow into the enclosing
// query's dependency set exactly like any other nested subquery.
func (ex *extractor) walkInPredicate(p *sqlast.InPredicate) {
	if p.Expr.RHS.Subquery != nil {
		ex.walkQuery(p.Expr.RHS.Subquery)
		return
	}
	for _, e := range p.Expr.RHS.List {
		ex.walkExpression(&e)
	}
}

func (ex *extractor) walkAddition(a *sqlast.Addition) {
	ex.walkMultiplication(&a.Left)
	for _, r := range a.Rest {
		ex.walkMultiplication(&r.Right)
	}
}

func (ex *extractor) walkMultiplication(m *sqlast.Multiplication) {
	ex.walkUnary(&m.Left)
	for _, r := range m.Rest {
		ex.walkUnary(&r.Right)
	}
}

func (ex *extractor) walkUnary(u *sqlast.Unary) {
	ex.walkPrimary(&u.Primary)
}

func (ex *extractor) walkPrimary(p *sqlast.Primary) {
	switch {
	case p.Paren != nil:
		if p.Paren.Subquery != nil {
			ex.walkQuery(p.Paren.Subquery)
		} else if p.Paren.Inner != nil {
			ex.walkExpression(p.Paren.Inner)
		}
	case p.Exists != nil:
		ex.walkQuery(&p.Exists.Query)
	case p.Case != nil:
		ex.walkCaseExpr(p.Case)
	case p.Cast != nil:
		ex.walkExpression(&p.Cast.Value)
	case p.Column != nil:
		ex.walkColumnOrCall(p.Column)
	}
	// p.Literal contributes nothing: a string or number that happens to
	// look like a table name is never extracted as a reference.
}

func (ex *extractor) walkCaseExpr(c *sqlast.CaseExpr) {
	if c.Operand != nil {
		ex.walkExpression(c.Operand)
	}
	for _, w := range c.Whens {
		ex.walkExpression(&w.Cond)
		ex.walkExpression(&w.Result)
	}
	if c.Else != nil {
		ex.walkExpression(c.Else)
	}
}

func (ex *extractor) walkColumnOrCall(c *sqlast.ColumnOrCall) {
	if c.Call == nil {
		return
	}
	for _, a := range c.Call.Args {
		ex.walkExpression(&a)
	}
	if c.Call.Over != nil {
		ex.walkWindowSpec(c.Call.Over)
	}
}

func (ex *extractor) walkWindowSpec(w *sqlast.WindowSpec) {
	for _, p := range w.Partition {
		ex.walkExpression(&p)
	}
	for _, o := range w.OrderBy {
		ex.walkExpression(&o.Expr)
	}
}
