/*
 * RePraxis
 *
 * Copyright 2024 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package query implements the RePraxis query engine: unification of
sentences against a db.Database, and the Assert/Not/comparator
expressions that fold a sequence of clauses into a QueryResult.
*/
package query

import (
	"github.com/krotik/common/datautil"
	"github.com/krotik/repraxis/sentence"
)

/*
Binding is a partial function from variable name to the concrete node
matched at that position. It is stored as map[string]interface{} (rather
than map[string]*sentence.Node) so that it can be merged with
datautil.MergeMaps, the same helper devt.de/krotik/ecal/interpreter uses
to combine parent/child variable scopes.
*/
type Binding map[string]interface{}

/*
node extracts the *sentence.Node bound to name, if any.
*/
func (b Binding) node(name string) (*sentence.Node, bool) {
	v, ok := b[name]
	if !ok {
		return nil, false
	}
	n, ok := v.(*sentence.Node)
	return n, ok
}

/*
copy returns a shallow copy of the binding map.
*/
func (b Binding) copy() Binding {
	out := make(Binding, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

/*
mergeBindings returns the union of old and the keys of fresh that are not
already present in old. Grounded on datautil.MergeMaps, which
interpreter/debug.go uses to combine a scope's own values with its
parent's when rendering a variable dump.
*/
func mergeBindings(old, fresh Binding, freshOnlyKeys []string) Binding {
	addition := make(Binding, len(freshOnlyKeys))
	for _, k := range freshOnlyKeys {
		addition[k] = fresh[k]
	}

	merged := datautil.MergeMaps(map[string]interface{}(old), map[string]interface{}(addition))

	return Binding(merged)
}
