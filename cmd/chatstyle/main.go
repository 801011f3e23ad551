package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/chatstyle/internal/cli"
	"github.com/arthur-debert/chatstyle/pkg/ui/styles"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; variables already set win
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", "Error: "+err.Error()))
		os.Exit(1)
	}
}
