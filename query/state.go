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

import "github.com/krotik/repraxis/sentence"

/*
QueryState is the intermediate state threaded through a query's
expressions as they are folded left to right: whether the query is still
viable, and the binding maps that currently survive.
*/
type QueryState struct {
	Success  bool
	Bindings []Binding
}

/*
NewQueryState builds a QueryState from success and an optional set of
bindings.
*/
func NewQueryState(success bool, bindings ...Binding) *QueryState {
	return &QueryState{Success: success, Bindings: bindings}
}

/*
Failed is a convenience constructor for a failed QueryState.
*/
func Failed() *QueryState {
	return &QueryState{Success: false}
}

/*
ToResult converts the state into the caller-facing QueryResult, lifting
each binding's nodes into their raw Go values.
*/
func (s *QueryState) ToResult() *QueryResult {
	if !s.Success {
		return &QueryResult{Success: false}
	}

	results := make([]map[string]interface{}, len(s.Bindings))

	for i, entry := range s.Bindings {
		row := make(map[string]interface{}, len(entry))
		for k, v := range entry {
			if n, ok := v.(*sentence.Node); ok {
				row[k] = n.Value
			}
		}
		results[i] = row
	}

	return &QueryResult{Success: true, Bindings: results}
}

/*
SeedState builds the initial QueryState for a query run, converting
caller-supplied seed bindings (plain Go values keyed by variable name)
into detached, cardinality-None nodes.
*/
func SeedState(seedBindings []map[string]interface{}) (*QueryState, error) {
	bindings := make([]Binding, len(seedBindings))

	for i, entry := range seedBindings {
		b := make(Binding, len(entry))
		for k, v := range entry {
			n, err := sentence.NodeFromObject(v)
			if err != nil {
				return nil, err
			}
			b[k] = n
		}
		bindings[i] = b
	}

	return &QueryState{Success: true, Bindings: bindings}, nil
}
