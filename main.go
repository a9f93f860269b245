// Package main is the entry point for the bonif grading CLI.
package main

import "github.com/tge-sherbrooke/bonif-grader/cmd"

func main() {
	cmd.Execute()
}
