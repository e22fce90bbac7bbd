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
	"errors"
	"fmt"
)

/*
Sentinel error kinds for query expression evaluation. These are
structural failures (see package db's OperationError for the parallel on
the storage side) as opposed to a QueryResult with Success == false,
which is a logical failure.
*/
var (
	ErrMalformedComparand     = errors.New("comparator operand must be a single token")
	ErrUnrecognizedExpression = errors.New("clause does not match any recognized expression shape")
)

/*
ExpressionError wraps a sentinel error kind with the clause text that
triggered it.
*/
type ExpressionError struct {
	Clause string
	Err    error
}

/*
Error returns a human readable description of the error.
*/
func (e *ExpressionError) Error() string {
	return fmt.Sprintf("repraxis: query clause %q: %v", e.Clause, e.Err)
}

/*
Unwrap allows errors.Is/errors.As to see through to the sentinel error.
*/
func (e *ExpressionError) Unwrap() error {
	return e.Err
}
