/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tokenwind generates Tailwind CSS v4 presets from design tokens.
package main

import (
	"os"

	"bennypowers.dev/tokenwind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
