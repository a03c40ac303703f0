// Command futurefunds projects retirement savings, lists Indian savings schemes and
// serves the planner API.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
