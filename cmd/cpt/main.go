// Package main is the entry point for the cpt CLI.
package main

import "github.com/dimedrop/card-price-tracker/cmd/cpt/cmd"

func main() {
	cmd.Execute()
}
