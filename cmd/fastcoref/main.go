package main

import (
	"github.com/joho/godotenv"

	"github.com/vikibrezinova/fast-coref/internal/cli"
)

func main() {
	// Cluster deployments keep credentials and cache paths in a local
	// .env; a missing file is fine.
	_ = godotenv.Load()

	cli.Execute()
}
