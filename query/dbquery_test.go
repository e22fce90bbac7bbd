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
	"testing"

	"github.com/krotik/repraxis/db"
)

// S1 - Assert with no variables, positive.
func TestScenarioS1(t *testing.T) {
	database := newTestDatabase(t, "astrid.relationships.britt.reputation!-10")

	result, err := New("astrid.relationships.britt").Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Success {
		t.Fatal("expected query to succeed")
	}
	if len(result.Bindings) != 0 {
		t.Errorf("expected no bindings, got %v", result.Bindings)
	}
}

// S2 - Assert with no variables, missing.
func TestScenarioS2(t *testing.T) {
	database := newTestDatabase(t, "astrid.relationships.britt.reputation!-10")

	result, err := New("astrid.relationships.haley").Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.Success {
		t.Fatal("expected query to fail")
	}
}

// S3 - Comparator with variable and seed bindings.
func TestScenarioS3(t *testing.T) {
	database := newTestDatabase(t,
		"astrid.relationships.jordan.reputation!30",
		"astrid.relationships.britt.reputation!-10",
		"astrid.relationships.lee.reputation!20",
	)

	q := New(
		"astrid.relationships.?other.reputation!?r",
		"gte ?r 10",
	)

	result, err := q.Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Success {
		t.Fatal("expected query to succeed")
	}
	if len(result.Bindings) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(result.Bindings))
	}

	seen := map[string]bool{}
	for _, b := range result.Bindings {
		seen[b["?other"].(string)] = true
	}
	if !seen["jordan"] || !seen["lee"] {
		t.Errorf("expected ?other in {jordan, lee}, got %v", result.Bindings)
	}

	seeded, err := q.Run(database, []map[string]interface{}{{"?other": "lee"}})
	if err != nil {
		t.Fatal(err)
	}
	if !seeded.Success || len(seeded.Bindings) != 1 {
		t.Fatalf("expected exactly one binding when seeding ?other=lee, got %v", seeded.Bindings)
	}
}

// S4 - Compound query with not and a shared variable.
func TestScenarioS4(t *testing.T) {
	database := newTestDatabase(t,
		"astrid.relationships.jordan.reputation!30",
		"astrid.relationships.britt.reputation!-10",
		"astrid.relationships.lee.reputation!20",
		"britt.relationships.player.tags.spouse",
	)

	q := New(
		"astrid.relationships.?other",
		"not astrid.relationships.?other.reputation!30",
		"not ?other.relationships.?others_spouse.tags.spouse",
	)

	result, err := q.Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Success {
		t.Fatal("expected query to succeed")
	}
	if len(result.Bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d: %v", len(result.Bindings), result.Bindings)
	}
	if result.Bindings[0]["?other"].(string) != "lee" {
		t.Errorf("expected ?other = lee, got %v", result.Bindings[0]["?other"])
	}
}

// S5 - Mixed-type compound join.
func TestScenarioS5(t *testing.T) {
	database := newTestDatabase(t,
		"astrid.relationships.jordan.reputation!30",
		"player.relationships.jordan.reputation!-20",
	)

	q := New(
		"?speaker.relationships.?other.reputation!?r0",
		"gt ?r0 10",
		"player.relationships.?other.reputation!?r1",
		"lt ?r1 0",
		"neq ?speaker player",
	)

	result, err := q.Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Success {
		t.Fatal("expected query to succeed")
	}
	if len(result.Bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d: %v", len(result.Bindings), result.Bindings)
	}

	b := result.Bindings[0]
	if b["?speaker"] != "astrid" || b["?other"] != "jordan" {
		t.Errorf("unexpected binding: %v", b)
	}
	if b["?r0"].(int64) != 30 || b["?r1"].(int64) != -20 {
		t.Errorf("unexpected numeric bindings: %v", b)
	}
}

// S6 - Not with no prior bindings.
func TestScenarioS6(t *testing.T) {
	database := newTestDatabase(t, "astrid.relationships.jordan.reputation!30")

	result, err := New("not player.relationships.jordan.reputation!30").Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Success {
		t.Fatal("expected query to succeed")
	}
}

// Property: query monotonicity - appending clauses never grows bindings.
func TestQueryMonotonicity(t *testing.T) {
	database := newTestDatabase(t,
		"astrid.relationships.jordan.reputation!30",
		"astrid.relationships.britt.reputation!-10",
	)

	first, err := New("astrid.relationships.?other.reputation!?r").Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	second, err := New(
		"astrid.relationships.?other.reputation!?r",
		"gt ?r 0",
	).Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(second.Bindings) > len(first.Bindings) {
		t.Errorf("expected appending a clause to never grow the binding set: %d -> %d", len(first.Bindings), len(second.Bindings))
	}
}

func TestNegationAsFailureWithoutBindings(t *testing.T) {
	database := newTestDatabase(t, "astrid.relationships.jordan.reputation!30")

	result, err := New("not astrid.relationships.jordan.reputation!30").Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Error("expected not-clause on an asserted fact to fail the query")
	}
}

func TestLimitToVars(t *testing.T) {
	database := newTestDatabase(t,
		"astrid.relationships.jordan.reputation!30",
		"astrid.relationships.britt.reputation!-10",
	)

	result, err := New("astrid.relationships.?other.reputation!?r").Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}

	limited := result.LimitToVars("?other")
	if !limited.Success {
		t.Fatal("expected limited result to still succeed")
	}

	for _, row := range limited.Bindings {
		if len(row) != 1 {
			t.Fatalf("expected each row to have exactly 1 key, got %v", row)
		}
		if _, ok := row["?other"]; !ok {
			t.Errorf("expected ?other key to survive limiting, got %v", row)
		}
	}

	zero := result.LimitToVars()
	if !zero.Success || len(zero.Bindings) != 0 {
		t.Errorf("expected zero-name limit to succeed with no bindings, got %+v", zero)
	}

	failed := (&QueryResult{Success: false}).LimitToVars("?other")
	if failed.Success {
		t.Error("expected limiting a failed result to stay failed")
	}
}

func TestUnrecognizedExpressionIsAStructuralError(t *testing.T) {
	database := newTestDatabase(t, "a.b.c")

	_, err := New("this is not valid").Run(database, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !isUnrecognizedExpression(err) {
		t.Errorf("expected ErrUnrecognizedExpression, got %v", err)
	}
}

func isUnrecognizedExpression(err error) bool {
	ee, ok := err.(*ExpressionError)
	return ok && ee.Err == ErrUnrecognizedExpression
}

func TestComparatorWidensIntAndFloat(t *testing.T) {
	database := db.New()

	result1, err := New("gt 1 0.5").Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !result1.Success {
		t.Error("expected gt 1 0.5 to hold")
	}
	if len(result1.Bindings) != 0 {
		t.Errorf("expected no bindings for a literal-vs-literal comparison, got %v", result1.Bindings)
	}

	result2, err := New("gt 0.5 1").Run(database, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result2.Success {
		t.Error("expected gt 0.5 1 to not hold")
	}
}

func TestMalformedComparand(t *testing.T) {
	database := db.New()

	_, err := New("eq a.b 1").Run(database, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	ee, ok := err.(*ExpressionError)
	if !ok || ee.Err != ErrMalformedComparand {
		t.Errorf("expected ErrMalformedComparand, got %v", err)
	}
}
