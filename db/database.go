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
Package db implements the RePraxis fact store: an in-memory trie of
sentence.Node values rooted at a single "root" symbol node, with
cardinality-enforcing mutation.

The tree-shaped storage and its dotted-path addressing are grounded on
devt.de/krotik/ecal's scope package, which stores ECAL variables in
nested maps addressed by dotted names; this package generalizes that
idea into a cardinality-aware trie of typed nodes addressed by full
sentence.Parse-d sentences.

The package performs no locking of its own: per the single-threaded
cooperative model, callers must serialize their own access to a
Database.
*/
package db

import (
	"github.com/krotik/repraxis/internal/rlog"
	"github.com/krotik/repraxis/sentence"
)

/*
Database owns a root node and exposes the mutation and query primitives
of the fact trie.
*/
type Database struct {
	root   *sentence.Node
	logger rlog.Logger
}

/*
Option configures a Database at construction time.
*/
type Option func(*Database)

/*
WithLogger attaches a logger which receives a Debug message on every
successful mutation (Insert/Delete/Clear).
*/
func WithLogger(logger rlog.Logger) Option {
	return func(d *Database) {
		d.logger = logger
	}
}

/*
New creates an empty database.
*/
func New(opts ...Option) *Database {
	root := sentence.NewNode(sentence.Token{
		Symbol:      "root",
		Value:       "root",
		NodeType:    sentence.Symbol,
		Cardinality: sentence.Many,
	})

	d := &Database{root: root, logger: rlog.NewNullLogger()}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

/*
Root returns the database's root node. Exposed for the query engine,
which walks the trie directly during unification.
*/
func (d *Database) Root() *sentence.Node {
	return d.root
}

/*
Insert parses sentenceStr and attaches it to the trie, reusing any
existing child whose cardinality matches the corresponding token and
failing otherwise. A node newly introduced under a cardinality-One parent
clears that parent's existing children first.
*/
func (d *Database) Insert(sentenceStr string) error {
	tokens, err := sentence.Parse(sentenceStr)
	if err != nil {
		return err
	}

	current := d.root

	for _, tok := range tokens {
		if tok.NodeType == sentence.Variable {
			return &OperationError{Op: "Insert", Sentence: sentenceStr, Err: ErrVariableInInsert}
		}

		if !current.HasChild(tok.Symbol) {
			if current.Cardinality == sentence.One {
				current.ClearChildren()
			}

			child := sentence.NewNode(tok)
			current.AddChild(child)
			current = child

			continue
		}

		existing := current.GetChild(tok.Symbol)

		if existing.Cardinality != tok.Cardinality {
			return &OperationError{Op: "Insert", Sentence: sentenceStr, Err: ErrCardinalityMismatch}
		}

		current = existing
	}

	d.logger.LogDebug("insert ", sentenceStr)

	return nil
}

/*
AssertStatement reports whether sentenceStr names an existing path in the
trie. The terminal token's cardinality is never checked against the
existing child - only cardinalities of intermediate steps are verified,
matching the source implementation's asymmetry (see the package's design
notes for why this is intentional rather than an oversight).
*/
func (d *Database) AssertStatement(sentenceStr string) (bool, error) {
	tokens, err := sentence.Parse(sentenceStr)
	if err != nil {
		return false, err
	}

	current := d.root

	for i, tok := range tokens {
		if tok.NodeType == sentence.Variable {
			return false, &OperationError{Op: "AssertStatement", Sentence: sentenceStr, Err: ErrVariableInAssert}
		}

		if !current.HasChild(tok.Symbol) {
			return false, nil
		}

		if i == len(tokens)-1 {
			return true, nil
		}

		current = current.GetChild(tok.Symbol)

		if current.Cardinality != tok.Cardinality {
			return false, nil
		}
	}

	return true, nil
}

/*
Contains is an alias of AssertStatement.
*/
func (d *Database) Contains(sentenceStr string) (bool, error) {
	return d.AssertStatement(sentenceStr)
}

/*
Delete removes the final token's child from the node reached by the
penultimate token, returning whether a removal occurred. Cardinality is
not checked. An empty sentence, or a sentence whose intermediate path is
missing, returns false without mutating anything.
*/
func (d *Database) Delete(sentenceStr string) (bool, error) {
	if sentenceStr == "" {
		return false, nil
	}

	tokens, err := sentence.Parse(sentenceStr)
	if err != nil {
		return false, err
	}

	current := d.root

	for i := 0; i < len(tokens)-1; i++ {
		tok := tokens[i]

		if !current.HasChild(tok.Symbol) {
			return false, nil
		}

		current = current.GetChild(tok.Symbol)
	}

	removed := current.RemoveChild(tokens[len(tokens)-1].Symbol)

	if removed {
		d.logger.LogDebug("delete ", sentenceStr)
	}

	return removed, nil
}

/*
Clear removes every child of the root, recursively.
*/
func (d *Database) Clear() {
	d.root.ClearChildren()
	d.logger.LogDebug("clear")
}
