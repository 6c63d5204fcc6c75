// Package main provides the entry point for the finstatement CLI application.
package main

import (
	"fmt"
	"os"

	"fjacquet/finstatement/cmd/batch"
	"fjacquet/finstatement/cmd/parse"
	"fjacquet/finstatement/cmd/root"
	"fjacquet/finstatement/cmd/sample"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(sample.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
