/*
 * RePraxis
 *
 * Copyright 2024 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package query

import (
	"strings"

	"github.com/krotik/common/stringutil"
	"github.com/krotik/repraxis/db"
	"github.com/krotik/repraxis/internal/rlog"
)

/*
comparatorKeywords lists the recognized three-part clause operators.
Membership is checked with stringutil.IndexOf, the same helper the
teacher's cli/tool/interpret.go uses to dispatch on a fixed keyword set.
*/
var comparatorKeywords = []string{"eq", "neq", "lt", "lte", "gt", "gte"}

/*
DBQuery is an immutable list of raw clause strings. Adding a clause with
Where returns a new query; the receiver is left untouched.
*/
type DBQuery struct {
	clauses []string
	logger  rlog.Logger
}

/*
New creates an empty query, optionally seeded with clauses.
*/
func New(clauses ...string) *DBQuery {
	return &DBQuery{clauses: append([]string(nil), clauses...), logger: rlog.NewNullLogger()}
}

/*
WithLogger returns a copy of the query that logs an Info message
whenever clause dispatch fails to recognize an expression shape.
*/
func (q *DBQuery) WithLogger(logger rlog.Logger) *DBQuery {
	return &DBQuery{clauses: q.clauses, logger: logger}
}

/*
Where returns a new query with clause appended.
*/
func (q *DBQuery) Where(clause string) *DBQuery {
	return &DBQuery{clauses: append(append([]string(nil), q.clauses...), clause), logger: q.logger}
}

/*
Run executes the query's clauses in order against database, starting
from the given seed bindings (may be nil), and returns the resulting
QueryResult.
*/
func (q *DBQuery) Run(database *db.Database, seedBindings []map[string]interface{}) (*QueryResult, error) {
	state, err := SeedState(seedBindings)
	if err != nil {
		return nil, err
	}

	for _, clauseStr := range q.clauses {
		expr, err := parseClause(clauseStr)
		if err != nil {
			q.logger.LogInfo("query clause rejected: ", err)
			return nil, err
		}

		state, err = expr.Evaluate(database, state)
		if err != nil {
			return nil, err
		}

		if !state.Success {
			break
		}
	}

	return state.ToResult(), nil
}

/*
parseClause splits a raw clause on whitespace and dispatches it to the
matching Expression constructor, by part count exactly as spec.md §4.6
describes: one part is an Assert, two parts starting with "not" is a
Not, three parts whose first word is a comparator keyword is the
matching comparator. Anything else is ErrUnrecognizedExpression.
*/
func parseClause(clauseStr string) (Expression, error) {
	parts := strings.Fields(clauseStr)

	switch len(parts) {
	case 1:
		return &AssertExpr{Statement: parts[0]}, nil

	case 2:
		if parts[0] == "not" {
			return &NotExpr{Statement: parts[1]}, nil
		}

	case 3:
		if stringutil.IndexOf(parts[0], comparatorKeywords) != -1 {
			switch parts[0] {
			case "eq":
				return NewEqualsExpr(parts[1], parts[2]), nil
			case "neq":
				return NewNotEqualExpr(parts[1], parts[2]), nil
			case "lt":
				return NewLessThanExpr(parts[1], parts[2]), nil
			case "lte":
				return NewLessThanEqualToExpr(parts[1], parts[2]), nil
			case "gt":
				return NewGreaterThanExpr(parts[1], parts[2]), nil
			case "gte":
				return NewGreaterThanEqualToExpr(parts[1], parts[2]), nil
			}
		}
	}

	return nil, &ExpressionError{Clause: clauseStr, Err: ErrUnrecognizedExpression}
}
