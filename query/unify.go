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
unifyContext is an internal working-set entry used while enumerating
bindings for a single sentence: a subtree of the database trie paired
with the bindings accumulated to reach it. Grounded on the
QueryBindingContext type of the source implementation.
*/
type unifyContext struct {
	subtree  *sentence.Node
	bindings Binding
}

/*
Unify enumerates every binding map that makes sentenceStr a legal path in
database's trie. Cardinality is not checked during unification - it only
matters once a sentence is later inserted or asserted. Sentences with no
variables always produce an empty result, which callers use as the
signal to fall back to plain assertion.
*/
func Unify(database *db.Database, sentenceStr string) ([]Binding, error) {
	tokens, err := sentence.Parse(sentenceStr)
	if err != nil {
		return nil, err
	}

	contexts := []unifyContext{{subtree: database.Root(), bindings: Binding{}}}

	for _, tok := range tokens {
		var next []unifyContext

		for _, ctx := range contexts {
			for _, child := range ctx.subtree.Children() {
				if tok.NodeType == sentence.Variable {
					bound := ctx.bindings.copy()
					bound[tok.Symbol] = child
					next = append(next, unifyContext{subtree: child, bindings: bound})
				} else if tok.Symbol == child.Symbol {
					next = append(next, unifyContext{subtree: child, bindings: ctx.bindings})
				}
			}
		}

		contexts = next
	}

	var result []Binding
	for _, ctx := range contexts {
		if len(ctx.bindings) > 0 {
			result = append(result, ctx.bindings)
		}
	}

	return result, nil
}

/*
UnifyAll folds Unify across a list of sentences, starting from state's
existing bindings. It is an inner join on shared variables and a
cross product on disjoint ones: for every pair of an existing binding and
a freshly unified one, shared keys must agree under Node.EqualTo or the
pair is dropped; keys unique to the fresh binding are added to the
result.
*/
func UnifyAll(database *db.Database, state *QueryState, sentences []string) ([]Binding, error) {
	possible := make([]Binding, len(state.Bindings))
	for i, b := range state.Bindings {
		possible[i] = b.copy()
	}

	for _, s := range sentences {
		fresh, err := Unify(database, s)
		if err != nil {
			return nil, err
		}

		var iterative []Binding

		if len(possible) == 0 {
			for _, b := range fresh {
				iterative = append(iterative, b.copy())
			}
		} else {
			for _, old := range possible {
				for _, b := range fresh {
					var newKeys []string
					compatible := true

					for k, v := range b {
						if oldVal, ok := old.node(k); ok {
							newNode, _ := v.(*sentence.Node)
							if !oldVal.EqualTo(newNode) {
								compatible = false
								break
							}
						} else {
							newKeys = append(newKeys, k)
						}
					}

					if !compatible {
						continue
					}

					iterative = append(iterative, mergeBindings(old, b, newKeys))
				}
			}
		}

		possible = iterative
	}

	var result []Binding
	for _, b := range possible {
		if len(b) > 0 {
			result = append(result, b)
		}
	}

	return result, nil
}
