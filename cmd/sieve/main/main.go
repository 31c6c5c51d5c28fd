package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/sieve/cmd/sieve"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func main() {
	rootCmd := sieve.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, sieve.ErrNothingExcluded) {
			// check found nothing; exit status carries the answer
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
