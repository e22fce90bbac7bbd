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
	"github.com/krotik/repraxis/db"
	"github.com/krotik/repraxis/sentence"
)

/*
Expression is a single clause of a DBQuery: it consumes a QueryState and
produces the next one. Grounded on devt.de/krotik/ecal/interpreter's
per-operator runtime types (greaterOpRuntime, lessOpRuntime, ...), each
expression kind here is its own concrete type rather than a single
capability interface with a discriminant field, since dispatch already
happens once, at parse time, in DBQuery.Run.
*/
type Expression interface {
	Evaluate(database *db.Database, state *QueryState) (*QueryState, error)
}

// Assert
// ======

/*
AssertExpr asserts that a sentence holds in the database, optionally
narrowing the current bindings to those under which it does.
*/
type AssertExpr struct {
	Statement string
}

/*
Evaluate implements Expression.
*/
func (e *AssertExpr) Evaluate(database *db.Database, state *QueryState) (*QueryState, error) {
	hasVars, err := sentence.HasVariables(e.Statement)
	if err != nil {
		return nil, err
	}

	if !hasVars {
		ok, err := database.AssertStatement(e.Statement)
		if err != nil {
			return nil, err
		}
		if !ok {
			return Failed(), nil
		}
		return state, nil
	}

	bindings, err := UnifyAll(database, state, []string{e.Statement})
	if err != nil {
		return nil, err
	}

	if len(bindings) == 0 {
		return Failed(), nil
	}

	var valid []Binding
	for _, b := range bindings {
		bound, err := sentence.Bind(e.Statement, toNodeMap(b))
		if err != nil {
			return nil, err
		}
		ok, err := database.AssertStatement(bound)
		if err != nil {
			return nil, err
		}
		if ok {
			valid = append(valid, b)
		}
	}

	if len(valid) == 0 {
		return Failed(), nil
	}

	return &QueryState{Success: true, Bindings: valid}, nil
}

// Not
// ===

/*
NotExpr succeeds when a sentence does NOT hold, implementing
negation-as-failure rather than logical negation.
*/
type NotExpr struct {
	Statement string
}

/*
Evaluate implements Expression.
*/
func (e *NotExpr) Evaluate(database *db.Database, state *QueryState) (*QueryState, error) {
	hasVars, err := sentence.HasVariables(e.Statement)
	if err != nil {
		return nil, err
	}

	if !hasVars {
		ok, err := database.AssertStatement(e.Statement)
		if err != nil {
			return nil, err
		}
		if ok {
			return Failed(), nil
		}
		return state, nil
	}

	if len(state.Bindings) == 0 {
		bindings, err := UnifyAll(database, state, []string{e.Statement})
		if err != nil {
			return nil, err
		}
		if len(bindings) > 0 {
			return Failed(), nil
		}
		return state, nil
	}

	var valid []Binding
	for _, b := range state.Bindings {
		ok, err := e.evaluateBinding(database, b)
		if err != nil {
			return nil, err
		}
		if ok {
			valid = append(valid, b)
		}
	}

	if len(valid) == 0 {
		return Failed(), nil
	}

	return &QueryState{Success: true, Bindings: valid}, nil
}

/*
evaluateBinding decides whether a single prior binding survives the not
clause. If substituting the binding into the statement still leaves
variables (a partial binding - only some tokens were bound by this
clause's variables), an isolated sub-unification against an empty
binding scope decides the outcome; otherwise the substituted sentence is
asserted directly.
*/
func (e *NotExpr) evaluateBinding(database *db.Database, binding Binding) (bool, error) {
	bound, err := sentence.Bind(e.Statement, toNodeMap(binding))
	if err != nil {
		return false, err
	}

	stillHasVars, err := sentence.HasVariables(bound)
	if err != nil {
		return false, err
	}

	if stillHasVars {
		scoped, err := UnifyAll(database, NewQueryState(true), []string{bound})
		if err != nil {
			return false, err
		}
		return len(scoped) == 0, nil
	}

	ok, err := database.AssertStatement(bound)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// Comparators
// ===========

/*
comparatorOp is the signature shared by the six node-level comparison
operators in package sentence.
*/
type comparatorOp func(l, r *sentence.Node) (bool, error)

/*
comparatorExpr implements eq/neq/lt/lte/gt/gte. Each comparator keyword
in DBQuery.Run constructs one of these with its own op, mirroring how the
teacher instantiates a distinct *OpRuntime per operator keyword while
sharing a common evaluation skeleton.
*/
type comparatorExpr struct {
	Left  string
	Right string
	Op    comparatorOp
}

/*
Evaluate implements Expression.
*/
func (e *comparatorExpr) Evaluate(database *db.Database, state *QueryState) (*QueryState, error) {
	leftTokens, err := sentence.Parse(e.Left)
	if err != nil {
		return nil, err
	}
	if len(leftTokens) > 1 {
		return nil, &ExpressionError{Clause: e.Left, Err: ErrMalformedComparand}
	}

	rightTokens, err := sentence.Parse(e.Right)
	if err != nil {
		return nil, err
	}
	if len(rightTokens) > 1 {
		return nil, &ExpressionError{Clause: e.Right, Err: ErrMalformedComparand}
	}

	leftHasVar, err := sentence.HasVariables(e.Left)
	if err != nil {
		return nil, err
	}
	rightHasVar, err := sentence.HasVariables(e.Right)
	if err != nil {
		return nil, err
	}

	if len(state.Bindings) == 0 {
		if leftHasVar || rightHasVar {
			return Failed(), nil
		}

		leftNode := sentence.NewNode(leftTokens[0])
		rightNode := sentence.NewNode(rightTokens[0])

		ok, err := e.Op(leftNode, rightNode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return Failed(), nil
		}
		return state, nil
	}

	var valid []Binding

	for _, b := range state.Bindings {
		leftStr, err := sentence.Bind(e.Left, toNodeMap(b))
		if err != nil {
			return nil, err
		}
		rightStr, err := sentence.Bind(e.Right, toNodeMap(b))
		if err != nil {
			return nil, err
		}

		leftTok, err := sentence.Parse(leftStr)
		if err != nil {
			return nil, err
		}
		rightTok, err := sentence.Parse(rightStr)
		if err != nil {
			return nil, err
		}

		leftNode := sentence.NewNode(leftTok[0])
		rightNode := sentence.NewNode(rightTok[0])

		ok, err := e.Op(leftNode, rightNode)
		if err != nil {
			return nil, err
		}

		if ok {
			valid = append(valid, b)
		}
	}

	if len(valid) == 0 {
		return Failed(), nil
	}

	return &QueryState{Success: true, Bindings: valid}, nil
}

/*
NewEqualsExpr builds an "eq" comparator expression.
*/
func NewEqualsExpr(left, right string) Expression {
	return &comparatorExpr{Left: left, Right: right, Op: func(l, r *sentence.Node) (bool, error) {
		return l.EqualTo(r), nil
	}}
}

/*
NewNotEqualExpr builds a "neq" comparator expression.
*/
func NewNotEqualExpr(left, right string) Expression {
	return &comparatorExpr{Left: left, Right: right, Op: func(l, r *sentence.Node) (bool, error) {
		return l.NotEqualTo(r), nil
	}}
}

/*
NewLessThanExpr builds a "lt" comparator expression.
*/
func NewLessThanExpr(left, right string) Expression {
	return &comparatorExpr{Left: left, Right: right, Op: (*sentence.Node).Less}
}

/*
NewLessThanEqualToExpr builds a "lte" comparator expression.
*/
func NewLessThanEqualToExpr(left, right string) Expression {
	return &comparatorExpr{Left: left, Right: right, Op: (*sentence.Node).LessOrEqual}
}

/*
NewGreaterThanExpr builds a "gt" comparator expression.
*/
func NewGreaterThanExpr(left, right string) Expression {
	return &comparatorExpr{Left: left, Right: right, Op: (*sentence.Node).Greater}
}

/*
NewGreaterThanEqualToExpr builds a "gte" comparator expression.
*/
func NewGreaterThanEqualToExpr(left, right string) Expression {
	return &comparatorExpr{Left: left, Right: right, Op: (*sentence.Node).GreaterOrEqual}
}

/*
toNodeMap adapts a Binding (map[string]interface{}) into the
map[string]*sentence.Node shape sentence.Bind expects.
*/
func toNodeMap(b Binding) map[string]*sentence.Node {
	out := make(map[string]*sentence.Node, len(b))
	for k, v := range b {
		if n, ok := v.(*sentence.Node); ok {
			out[k] = n
		}
	}
	return out
}
