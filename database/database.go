package database

import (
	sq "github.com/Masterminds/squirrel"
)

// StatementBuilder returns a squirrel builder using the placeholder style of the given dialect.
func StatementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// quoteTable wraps a table name in double quotes. The schema uses capitalised table
// names, which Postgres would fold to lower case unquoted.
func quoteTable(name string) string {
	return `"` + name + `"`
}
