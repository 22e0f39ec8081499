package main

import (
	"fmt"
	"os"

	"github.com/terraincognita07/moodlog/internal/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		if !commands.IsReported(err) {
			fmt.Fprintf(os.Stderr, "moodlog: %v\n", err)
		}
		os.Exit(1)
	}
}
