package main

import (
	"os"

	"github.com/andynikk/counterfile/internal/constants"
	"github.com/andynikk/counterfile/internal/incrementer"
)

func main() {
	os.Exit(incrementer.Run(constants.BuildNumber, os.Args[1:], os.Stdout, os.Stderr))
}
