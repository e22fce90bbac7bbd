/*
 * RePraxis
 *
 * Copyright 2024 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package sentence

import (
	"errors"
	"fmt"
)

/*
ErrUndefinedOrdering is returned by the ordering comparisons (Less,
LessOrEqual, Greater, GreaterOrEqual) when the pair of node types has no
defined ordering - e.g. a SYMBOL against an INT, or any VARIABLE operand
after binding.
*/
var ErrUndefinedOrdering = errors.New("comparison not defined between these node types")

/*
Node is a single node of the fact trie (or of a query binding). Rather
than a class hierarchy of four node kinds, a single tagged struct carries
all four variants - the idiomatic Go rendering of the source's abstract
base class plus four concrete subclasses.

Nodes form a strictly owning parent-to-children tree; Parent is a
non-owning back reference maintained by attach/detach, never by the node
itself.
*/
type Node struct {
	Symbol      string
	Value       interface{}
	NodeType    NodeType
	Cardinality Cardinality

	children map[string]*Node
	parent   *Node
}

/*
NewNode creates a detached node from an already-classified token.
*/
func NewNode(tok Token) *Node {
	return &Node{
		Symbol:      tok.Symbol,
		Value:       tok.Value,
		NodeType:    tok.NodeType,
		Cardinality: tok.Cardinality,
		children:    make(map[string]*Node),
	}
}

/*
NodeFromObject converts a caller-supplied Go value into a detached node
with cardinality None, the way query seed bindings are constructed. Only
int64 (and int), float64 and string are accepted.
*/
func NodeFromObject(obj interface{}) (*Node, error) {
	switch v := obj.(type) {
	case int:
		return &Node{Symbol: fmt.Sprintf("%d", v), Value: int64(v), NodeType: Int, Cardinality: None, children: make(map[string]*Node)}, nil
	case int64:
		return &Node{Symbol: fmt.Sprintf("%d", v), Value: v, NodeType: Int, Cardinality: None, children: make(map[string]*Node)}, nil
	case float64:
		return &Node{Symbol: formatFloat(v), Value: v, NodeType: Float, Cardinality: None, children: make(map[string]*Node)}, nil
	case string:
		return &Node{Symbol: v, Value: v, NodeType: Symbol, Cardinality: None, children: make(map[string]*Node)}, nil
	}

	return nil, fmt.Errorf("cannot convert object of type %T into a node", obj)
}

/*
Parent returns the node's parent, or nil for the root.
*/
func (n *Node) Parent() *Node {
	return n.parent
}

/*
Children returns the node's child map. Callers must not mutate the
returned map directly; use AddChild/RemoveChild/ClearChildren.
*/
func (n *Node) Children() map[string]*Node {
	return n.children
}

/*
HasChild reports whether the node has a child with the given symbol.
*/
func (n *Node) HasChild(symbol string) bool {
	_, ok := n.children[symbol]
	return ok
}

/*
GetChild returns the child with the given symbol, or nil if none exists.
*/
func (n *Node) GetChild(symbol string) *Node {
	return n.children[symbol]
}

/*
AddChild attaches a child node under this node and sets its parent back
reference. Callers are responsible for enforcing cardinality (see
db.Database.Insert); AddChild itself does not check it.
*/
func (n *Node) AddChild(child *Node) {
	n.children[child.Symbol] = child
	child.parent = n
}

/*
RemoveChild detaches the child with the given symbol, clearing its
parent back reference and recursively clearing its own children. Reports
whether a child was actually removed.
*/
func (n *Node) RemoveChild(symbol string) bool {
	child, ok := n.children[symbol]
	if !ok {
		return false
	}

	child.parent = nil
	child.ClearChildren()
	delete(n.children, symbol)

	return true
}

/*
ClearChildren detaches and clears every child of this node, recursively.
*/
func (n *Node) ClearChildren() {
	for _, child := range n.children {
		child.ClearChildren()
		child.parent = nil
	}

	n.children = make(map[string]*Node)
}

/*
Path reconstructs the dotted/bang sentence that leads from the root to
this node, by walking parent back references.
*/
func (n *Node) Path() string {
	if n.parent == nil || n.parent.parent == nil {
		return n.Symbol
	}

	op := "."
	if n.parent.Cardinality == One {
		op = "!"
	}

	return n.parent.Path() + op + n.Symbol
}

/*
Clone returns a detached, childless copy of this node. Query bindings
do not go through Clone: they hold the trie nodes themselves, and
QueryState.ToResult hands callers only the nodes' raw values.
*/
func (n *Node) Clone() *Node {
	return &Node{
		Symbol:      n.Symbol,
		Value:       n.Value,
		NodeType:    n.NodeType,
		Cardinality: n.Cardinality,
		children:    make(map[string]*Node),
	}
}

/*
String renders the node for debugging purposes.
*/
func (n *Node) String() string {
	return fmt.Sprintf("%s(%v)", n.NodeType, n.Value)
}

// Comparisons
// ===========

/*
EqualTo reports whether two nodes hold the same value. Nodes of
different types are never equal to one another, including two kinds
that would otherwise be orderable (INT vs FLOAT); no error is returned.
Float equality is bitwise; there is no epsilon.
*/
func (n *Node) EqualTo(other *Node) bool {
	if n.NodeType != other.NodeType {
		return false
	}
	return n.Value == other.Value
}

/*
NotEqualTo is the negation of EqualTo (nodes of different type are
always "not equal", without error).
*/
func (n *Node) NotEqualTo(other *Node) bool {
	return !n.EqualTo(other)
}

/*
numeric widens an INT or FLOAT node's value to a float64. ok is false for
any other node type.
*/
func (n *Node) numeric() (float64, bool) {
	switch n.NodeType {
	case Int:
		return float64(n.Value.(int64)), true
	case Float:
		return n.Value.(float64), true
	}
	return 0, false
}

/*
compareNumericOrSymbol implements the ordering semantics shared by Less,
LessOrEqual, Greater and GreaterOrEqual: numeric widening between
INT/FLOAT, lexicographic between SYMBOL/SYMBOL, and ErrUndefinedOrdering
for any other pairing (in particular any VARIABLE operand).
*/
func (n *Node) compareNumericOrSymbol(other *Node) (int, error) {
	if lv, ok := n.numeric(); ok {
		if rv, ok := other.numeric(); ok {
			switch {
			case lv < rv:
				return -1, nil
			case lv > rv:
				return 1, nil
			default:
				return 0, nil
			}
		}
		return 0, fmt.Errorf("%w: %s and %s", ErrUndefinedOrdering, n.NodeType, other.NodeType)
	}

	if n.NodeType == Symbol && other.NodeType == Symbol {
		ls, rs := n.Value.(string), other.Value.(string)
		switch {
		case ls < rs:
			return -1, nil
		case ls > rs:
			return 1, nil
		default:
			return 0, nil
		}
	}

	return 0, fmt.Errorf("%w: %s and %s", ErrUndefinedOrdering, n.NodeType, other.NodeType)
}

/*
Less reports whether n is ordered before other.
*/
func (n *Node) Less(other *Node) (bool, error) {
	c, err := n.compareNumericOrSymbol(other)
	return c < 0, err
}

/*
LessOrEqual reports whether n is ordered before or equal to other.
*/
func (n *Node) LessOrEqual(other *Node) (bool, error) {
	c, err := n.compareNumericOrSymbol(other)
	return c <= 0, err
}

/*
Greater reports whether n is ordered after other.
*/
func (n *Node) Greater(other *Node) (bool, error) {
	c, err := n.compareNumericOrSymbol(other)
	return c > 0, err
}

/*
GreaterOrEqual reports whether n is ordered after or equal to other.
*/
func (n *Node) GreaterOrEqual(other *Node) (bool, error) {
	c, err := n.compareNumericOrSymbol(other)
	return c >= 0, err
}
