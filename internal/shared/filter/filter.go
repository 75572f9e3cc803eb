// Package filter translates the optional query parameters of list
// endpoints into a single parameterized WHERE clause. Absent filters
// contribute nothing; provided filters are combined conjunctively. Values
// are always bound as placeholders, never interpolated into SQL.
package filter

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

const dialectPostgres = "postgres"

// Dialect returns the goqu dialect shared by all repositories.
func Dialect() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}

// Asc returns an ascending order term for column, used by repositories to
// keep list output deterministic.
func Asc(column string) exp.OrderedExpression {
	return goqu.I(column).Asc()
}

// Params accumulates exact-match predicates for the filters a request
// actually provided.
type Params struct {
	expressions []exp.Expression
}

// Eq adds an exact-match predicate on column.
func (p *Params) Eq(column string, value interface{}) *Params {
	p.expressions = append(p.expressions, goqu.I(column).Eq(value))
	return p
}

// EqString adds an exact-match predicate when the filter was provided.
func (p *Params) EqString(column string, value *string) *Params {
	if value != nil {
		p.Eq(column, *value)
	}
	return p
}

// EqInt adds an exact-match predicate when the filter was provided.
func (p *Params) EqInt(column string, value *int) *Params {
	if value != nil {
		p.Eq(column, *value)
	}
	return p
}

// Empty reports whether no filters were provided. An empty Params leaves
// the query unfiltered, returning the full set.
func (p *Params) Empty() bool {
	return len(p.expressions) == 0
}

// Apply attaches the collected predicates to ds as one conjunctive WHERE.
func (p *Params) Apply(ds *goqu.SelectDataset) *goqu.SelectDataset {
	if p.Empty() {
		return ds
	}
	return ds.Where(goqu.And(p.expressions...))
}
