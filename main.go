/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command sentaurus-syntax generates TextMate grammars and a keyword
// reference from Sentaurus XML mode definitions.
package main

import (
	"os"

	"bennypowers.dev/sentaurus-syntax/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
