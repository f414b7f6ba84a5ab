// Command wortgen is the content generation and dictionary toolbox.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/wortschatz-backend/cmd/wortgen/cmd"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
