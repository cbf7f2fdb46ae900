package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorLess      = "less"
	FilterOperatorGreater   = "greater"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
	FilterOperatorLess:      "<",
	FilterOperatorGreater:   ">",
}

// Filter is one predicate of a WHERE clause. Values are always bound as named
// arguments; ArgName overrides the argument name when the same column appears
// twice in one statement.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq less greater is_null is_not_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column := f.column()
	argName := f.argName()

	if op, ok := comparisons[f.Operator]; ok {
		args[argName] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, argName), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[argName] = fmt.Sprintf("%%%s%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, argName), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
			args[argName] = f.Value

			return fmt.Sprintf("%s = :%s", column, argName), args
		}

		if val.Len() == 0 {
			return "FALSE", args
		}

		named := make([]string, val.Len())
		for idx := range val.Len() {
			name := fmt.Sprintf("%s_%d", argName, idx)
			args[name] = val.Index(idx).Interface()
			named[idx] = ":" + name
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// FilterGroup joins filters and nested groups with Operator. Members producing
// no clause are skipped.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := []string{}

	for _, member := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch m := member.(type) {
		case Filter:
			where, arg = m.GetWhereClause()
		case FilterGroup:
			where, arg = m.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+f.Operator+" ")), args
}
