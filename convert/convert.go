/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert serializes mode registries into the generated artifacts
// and reads the consolidated reference back.
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/sentaurus-syntax/mode"
)

// ReadReference parses a consolidated reference document into a Registry.
// Comments and trailing commas are tolerated, so hand-edited references load.
func ReadReference(data []byte) (mode.Registry, error) {
	var lists map[string]map[string][]string
	if err := json.Unmarshal(jsonc.ToJSON(data), &lists); err != nil {
		return nil, fmt.Errorf("failed to parse reference JSON: %w", err)
	}
	return mode.RegistryFromLists(lists), nil
}
