// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "bfk-cli/cmd/bfk"
)

func main() {
	cmd.Execute()
}
