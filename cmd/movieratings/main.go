package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	_ = godotenv.Overload()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "movieratings:", err)
		os.Exit(1)
	}
}
