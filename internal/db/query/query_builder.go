package query

import (
	"fmt"
	"strings"
)

// QueryBuilder assembles simple parameterized select statements for the
// raw-row paths that bypass the GORM model layer.
type QueryBuilder struct {
	table      string
	conditions []string
	columns    []string
	orderBy    string
	limit      int
	values     []interface{}
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (qb *QueryBuilder) Select(columns ...string) *QueryBuilder {
	qb.columns = append(qb.columns, columns...)
	return qb
}

func (qb *QueryBuilder) From(table string) *QueryBuilder {
	qb.table = table
	return qb
}

func (qb *QueryBuilder) Where(condition string, args ...interface{}) *QueryBuilder {
	qb.conditions = append(qb.conditions, condition)
	qb.values = append(qb.values, args...)
	return qb
}

func (qb *QueryBuilder) OrderBy(clause string) *QueryBuilder {
	qb.orderBy = clause
	return qb
}

func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

func (qb *QueryBuilder) Build() (string, []interface{}) {
	var query strings.Builder

	if len(qb.columns) > 0 {
		query.WriteString(fmt.Sprintf("SELECT %s FROM %s", strings.Join(qb.columns, ", "), qb.table))
	} else {
		query.WriteString(fmt.Sprintf("SELECT * FROM %s", qb.table))
	}

	if len(qb.conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(qb.conditions, " AND "))
	}
	if qb.orderBy != "" {
		query.WriteString(" ORDER BY " + qb.orderBy)
	}
	if qb.limit > 0 {
		query.WriteString(fmt.Sprintf(" LIMIT %d", qb.limit))
	}

	return query.String(), qb.values
}
