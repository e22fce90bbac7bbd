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
	"fmt"
	"strings"

	"github.com/krotik/common/sortutil"
)

/*
QueryResult is the public outcome of running a DBQuery: whether it
passed, and the raw-valued bindings (one map per surviving binding set)
it produced.
*/
type QueryResult struct {
	Success  bool
	Bindings []map[string]interface{}
}

/*
Passed reports whether the query succeeded. The idiomatic Go equivalent
of the source implementation's QueryResult.__bool__ override.
*/
func (r *QueryResult) Passed() bool {
	return r.Success
}

/*
LimitToVars restricts each binding map to the given variable names. A
failed result stays failed. Given zero names, a successful result is
returned with no bindings at all. Filtering does not deduplicate rows
that become identical once non-listed keys are dropped.
*/
func (r *QueryResult) LimitToVars(names ...string) *QueryResult {
	if !r.Success {
		return &QueryResult{Success: false}
	}

	if len(names) == 0 {
		return &QueryResult{Success: true}
	}

	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}

	filtered := make([]map[string]interface{}, len(r.Bindings))

	for i, row := range r.Bindings {
		out := make(map[string]interface{})
		for k, v := range row {
			if keep[k] {
				out[k] = v
			}
		}
		filtered[i] = out
	}

	return &QueryResult{Success: true, Bindings: filtered}
}

/*
String renders the result for debugging, sorting each row's variable
names for a deterministic rendering (map iteration order is otherwise
undefined in Go). Grounded on the teacher's use of
sortutil.InterfaceStrings to sort keys before pretty-printing.
*/
func (r *QueryResult) String() string {
	if !r.Success {
		return "QueryResult(failed)"
	}

	var sb strings.Builder
	sb.WriteString("QueryResult(success")

	for _, row := range r.Bindings {
		keys := make([]string, 0, len(row))
		for k := range row {
			keys = append(keys, k)
		}

		keysIface := make([]interface{}, len(keys))
		for i, k := range keys {
			keysIface[i] = k
		}
		sortutil.InterfaceStrings(keysIface)

		sb.WriteString(", {")
		for i, ki := range keysIface {
			k := ki.(string)
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s: %v", k, row[k])
		}
		sb.WriteString("}")
	}

	sb.WriteString(")")

	return sb.String()
}
