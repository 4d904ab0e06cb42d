// cmd/scorecard/main.go
package main

import (
	cmd "github.com/mwiater/scorecard/internal/cli"
)

// main starts the scorecard CLI application by delegating to the
// cobra root command defined in the scorecard package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
