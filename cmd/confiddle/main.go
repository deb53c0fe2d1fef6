package main

import (
	"fmt"
	"os"

	"github.com/0xalexb/confiddle/internal/cli"
)

func main() {
	command := cli.NewDefaultCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "confiddle: Error: %s\n", err)
		os.Exit(1)
	}
}
