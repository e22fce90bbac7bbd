/*
 * RePraxis
 *
 * Copyright 2024 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package db

import (
	"errors"
	"testing"
)

func TestInsertThenAssertRoundTrip(t *testing.T) {
	cases := []string{
		"astrid.relationships.britt.reputation!-10",
		"player.relationships.jordan.reputation!-20",
		"britt.relationships.player.tags.spouse",
	}

	for _, s := range cases {
		database := New()

		if err := database.Insert(s); err != nil {
			t.Fatalf("Insert(%q): %v", s, err)
		}

		ok, err := database.AssertStatement(s)
		if err != nil {
			t.Fatalf("AssertStatement(%q): %v", s, err)
		}
		if !ok {
			t.Errorf("expected AssertStatement(%q) to be true after insert", s)
		}
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	database := New()

	for i := 0; i < 3; i++ {
		if err := database.Insert("a.b.c!5"); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}

	ok, err := database.AssertStatement("a.b.c!5")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected a.b.c!5 to still be asserted")
	}

	if len(database.Root().GetChild("a").GetChild("b").Children()) != 1 {
		t.Error("expected repeated inserts not to create duplicate children")
	}
}

func TestCardinalityOneOverride(t *testing.T) {
	database := New()

	if err := database.Insert("a.b!x"); err != nil {
		t.Fatal(err)
	}
	if err := database.Insert("a.b!y"); err != nil {
		t.Fatal(err)
	}

	okX, err := database.AssertStatement("a.b!x")
	if err != nil {
		t.Fatal(err)
	}
	if okX {
		t.Error("expected a.b!x to have been evicted by the cardinality-ONE override")
	}

	okY, err := database.AssertStatement("a.b!y")
	if err != nil {
		t.Fatal(err)
	}
	if !okY {
		t.Error("expected a.b!y to be asserted")
	}
}

func TestCardinalityMismatchRejected(t *testing.T) {
	database := New()

	if err := database.Insert("a.b.x"); err != nil {
		t.Fatal(err)
	}

	err := database.Insert("a.b!y")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrCardinalityMismatch) {
		t.Errorf("expected ErrCardinalityMismatch, got %v", err)
	}
}

func TestVariableInInsertRejected(t *testing.T) {
	database := New()

	err := database.Insert("a.?b.c")
	if !errors.Is(err, ErrVariableInInsert) {
		t.Errorf("expected ErrVariableInInsert, got %v", err)
	}
}

func TestVariableInAssertRejected(t *testing.T) {
	database := New()
	database.Insert("a.b.c")

	_, err := database.AssertStatement("a.?b.c")
	if !errors.Is(err, ErrVariableInAssert) {
		t.Errorf("expected ErrVariableInAssert, got %v", err)
	}
}

func TestDeleteMissingPathReturnsFalse(t *testing.T) {
	database := New()
	database.Insert("a.b.c")

	ok, err := database.Delete("a.x.c")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected delete of a missing path to return false")
	}

	present, err := database.AssertStatement("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if !present {
		t.Error("expected existing data to be untouched by a failed delete")
	}
}

func TestDeleteRemovesSubtree(t *testing.T) {
	database := New()
	database.Insert("a.b.c")
	database.Insert("a.b.d")

	ok, err := database.Delete("a.b")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected delete to succeed")
	}

	present, err := database.AssertStatement("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if present {
		t.Error("expected a.b.c to be gone along with its parent a.b")
	}
}

func TestDeleteEmptySentenceReturnsFalse(t *testing.T) {
	database := New()

	ok, err := database.Delete("")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected delete of an empty sentence to return false")
	}
}

func TestClearRemovesEverything(t *testing.T) {
	database := New()
	database.Insert("a.b.c")
	database.Insert("x.y.z")

	database.Clear()

	okA, _ := database.AssertStatement("a.b.c")
	okX, _ := database.AssertStatement("x.y.z")

	if okA || okX {
		t.Error("expected Clear to remove all inserted facts")
	}
}

func TestContainsIsAssertStatementAlias(t *testing.T) {
	database := New()
	database.Insert("a.b.c")

	a, err := database.AssertStatement("a.b.c")
	if err != nil {
		t.Fatal(err)
	}

	c, err := database.Contains("a.b.c")
	if err != nil {
		t.Fatal(err)
	}

	if a != c {
		t.Error("expected Contains to agree with AssertStatement")
	}
}

func TestAssertMissingChildReturnsFalse(t *testing.T) {
	database := New()
	database.Insert("astrid.relationships.britt.reputation!-10")

	ok, err := database.AssertStatement("astrid.relationships.haley")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected assert of a missing path to return false")
	}
}
