// Command papercheck compares an original document against a suspect copy
// and reports the duplication rate measured over the longest common
// subsequence of their tokens.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
