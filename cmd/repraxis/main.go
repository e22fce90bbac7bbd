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
Command repraxis is a small demo harness over an in-process
db.Database: it exercises the public insert/assert/delete/query
operations of package db and package query and nothing else. It is an
external collaborator of the core per spec.md §1 and holds no fact-store
semantics of its own.

Since the database is entirely in-memory and this process is a single
invocation, each run starts from an empty database seeded by --fact
flags; there is no persistence to load or save (see SPEC_FULL.md §8 and
§9 for why).
*/
package main

import (
	"fmt"
	"os"

	"github.com/krotik/repraxis/db"
	"github.com/krotik/repraxis/internal/rlog"
	"github.com/krotik/repraxis/query"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var facts []string
	logger := rlog.NewConsoleLogger()

	root := &cobra.Command{
		Use:   "repraxis",
		Short: "Inspect an in-memory RePraxis fact database from the command line",
	}

	newDatabase := func() (*db.Database, error) {
		database := db.New(db.WithLogger(logger))
		for _, f := range facts {
			if err := database.Insert(f); err != nil {
				return nil, err
			}
		}
		return database, nil
	}

	root.PersistentFlags().StringArrayVar(&facts, "fact", nil, "sentence to insert before running the command (repeatable)")

	root.AddCommand(newInsertCmd(newDatabase))
	root.AddCommand(newAssertCmd(newDatabase))
	root.AddCommand(newDeleteCmd(newDatabase))
	root.AddCommand(newQueryCmd(newDatabase))

	return root
}

func newInsertCmd(newDatabase func() (*db.Database, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <sentence>",
		Short: "Insert a sentence into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := newDatabase()
			if err != nil {
				return err
			}

			if err := database.Insert(args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newAssertCmd(newDatabase func() (*db.Database, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "assert <sentence>",
		Short: "Assert that a sentence holds in the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := newDatabase()
			if err != nil {
				return err
			}

			ok, err := database.AssertStatement(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func newDeleteCmd(newDatabase func() (*db.Database, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <sentence>",
		Short: "Delete a sentence from the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := newDatabase()
			if err != nil {
				return err
			}

			ok, err := database.Delete(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func newQueryCmd(newDatabase func() (*db.Database, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "query <clause>...",
		Short: "Run a query (one or more \"where\"-style clauses) against the database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := newDatabase()
			if err != nil {
				return err
			}

			q := query.New(args...).WithLogger(rlog.NewConsoleLogger())

			result, err := q.Run(database, nil)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
