// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command gremlin-cli submits ad-hoc traversals to a Gremlin server from
// the command line, either a handful of built-in canned traversals or an
// arbitrary bytecode step list read from a JSON file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/strattonite/gremlin-go/driver"
	"github.com/strattonite/gremlin-go/gson"
	"github.com/strattonite/gremlin-go/process"
)

func main() {
	root := &cobra.Command{Use: "gremlin-cli"}
	root.AddCommand(countCmd())
	root.AddCommand(submitCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func dialFlags(cmd *cobra.Command) {
	cmd.Flags().String("endpoint", "ws://localhost:8182/gremlin", "gremlin server websocket endpoint")
	cmd.Flags().Duration("timeout", 30*time.Second, "request timeout")
}

func dial(cmd *cobra.Command) (*driver.Client, error) {
	endpoint, _ := cmd.Flags().GetString("endpoint")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return driver.Dial(context.Background(), endpoint, timeout, nil, nil)
}

func countCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [label]",
		Short: "count vertices, optionally filtered by label",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dial(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			t := process.G.V()
			if len(args) > 0 {
				t = t.HasLabel(gson.Str(args[0]))
			}
			t = t.Count()

			resp, err := c.Execute(t)
			if err != nil {
				return err
			}
			vals, err := driver.Parse[gson.Value](resp)
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Println(v)
			}
			return nil
		},
	}
	dialFlags(cmd)
	return cmd
}

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit [bytecode.json]",
		Short: "submit a raw bytecode step list read from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var steps [][]string
			if err := json.Unmarshal(raw, &steps); err != nil {
				return fmt.Errorf("bytecode file must be a JSON array of [op, ...args] arrays: %w", err)
			}

			t := process.Underscore.Start()
			for _, step := range steps {
				if len(step) == 0 {
					continue
				}
				args := make([]gson.Value, 0, len(step)-1)
				for _, a := range step[1:] {
					args = append(args, gson.Str(a))
				}
				t.Bytecode.AddStep(step[0], args...)
			}

			c, err := dial(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			resp, err := c.Execute(t)
			if err != nil {
				return err
			}
			vals, err := driver.Parse[gson.Value](resp)
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Println(v)
			}
			return nil
		},
	}
	dialFlags(cmd)
	return cmd
}
