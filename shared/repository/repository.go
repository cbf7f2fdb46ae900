package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"roombook/infras/otel"
	"roombook/infras/postgres"
	"roombook/shared/constant"
	"roombook/shared/dto"
	"roombook/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	table string
	alias string
}

// expr renders the column for a SELECT list.
func (c column) expr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return fmt.Sprintf("%s.%s", c.table, c.name)
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// preparer is satisfied by both *sqlx.DB and *sqlx.Tx.
type preparer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository implements the common queries of a table whose rows map to T.
// Columns come from the db tags of T; fields tagged with table and column are
// read from joined tables and never written. T may expose GetJoinQuery to add
// those joins to every read.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

type joiner interface {
	GetJoinQuery() string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation))
}

// fail records err on the span and the log, and wraps it with the failed action.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entitas, err)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	ctx, scope := repo.scope(ctx, "InsertTx")
	defer scope.End()

	return repo.insert(ctx, scope, sqltx, model)
}

func (repo *Repository[T]) insert(ctx context.Context, scope otel.Scope, exec execer, model T) error {
	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

// ExistTx runs the existence check on sqltx so it observes rows written by
// the same transaction.
func (repo *Repository[T]) ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "ExistTx")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)

	var exist bool
	if err := repo.getOne(ctx, scope, sqltx, query, args, &exist); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the first row matching filter, or the zero T when none does.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.getSelectQuery(columns...), repo.table, repo.join, where)

	err := repo.getOne(ctx, scope, repo.db.Read, query, args, &model)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := []string{"SELECT", repo.getSelectQuery(columns...), "FROM", repo.table, repo.join, where}

	// SortBy is resolved through dto.Sortable before it gets here. The primary
	// key breaks ties so pages stay stable.
	if params.SortBy != "" && params.SortDir != "" {
		query = append(query, fmt.Sprintf("ORDER BY %s %s, %s.%s %s", params.SortBy, params.SortDir, repo.table, repo.primaryColumn, params.SortDir))
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()

		query = append(query, "LIMIT :limit OFFSET :offset")
	}

	statement := strings.Join(query, " ")
	scope.SetAttribute(constant.OtelQueryAttributeKey, statement)

	models := []T{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, statement)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	var count int
	if err := repo.getOne(ctx, scope, repo.db.Read, query, args, &count); err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

// Update sets the columns in mod on every row matching filter and returns the
// number of rows changed. Filter arguments win over mod on a name clash, so
// filters on an updated column need their own ArgName.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	fields := slices.Collect(maps.Keys(mod))
	slices.Sort(fields)

	assignments := make([]string, len(fields))
	for i, col := range fields {
		assignments[i] = fmt.Sprintf("%s = :%s", col, col)
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	params := maps.Clone(mod)
	maps.Copy(params, args)

	result, err := repo.db.Write.NamedExecContext(ctx, query, params)
	if err != nil {
		return 0, repo.fail(scope, "update data", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "read affected rows", err)
	}

	return affected, nil
}

// getOne prepares query on prep and scans its single row into dest.
func (repo *Repository[T]) getOne(ctx context.Context, scope otel.Scope, prep preparer, query string, args map[string]any, dest any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := prep.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer prepare.Close()

	return prepare.GetContext(ctx, dest, args) //nolint:wrapcheck
}

func (repo *Repository[T]) getSelectQuery(only ...string) string {
	columns := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		columns = append(columns, col.expr())
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.scope(ctx, "BuildWhereClause")
	defer scope.End()

	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		tableField := field.Tag.Get("table")
		if tableField == "" {
			tableField = table
		}

		if tableField == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: tableField, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: tableField})
		}
	}

	return columns, insertColumns
}
