// Copyright 2026 Gestalt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	gestaltconfig "github.com/gestalt-labs/brain/pkg/config"
	"github.com/gestalt-labs/brain/pkg/statedb"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect the persistent state database",
}

var stateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all state keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStateStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		keys, err := store.Keys(cmd.Context())
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	},
}

var stateGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStateStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		var value json.RawMessage
		if err := store.Get(cmd.Context(), args[0], &value); err != nil {
			return err
		}
		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func openStateStore() (*statedb.Store, error) {
	path := gestaltconfig.ResolveStatePath("", config.State.Path)
	store, err := statedb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open state database %s: %w", path, err)
	}
	return store, nil
}

func init() {
	stateCmd.AddCommand(stateListCmd)
	stateCmd.AddCommand(stateGetCmd)
	rootCmd.AddCommand(stateCmd)
}
