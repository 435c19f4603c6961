package main

import (
	"github.com/joho/godotenv"

	"github.com/pawpaw2022/siggraph2025/internal/cli"
)

func main() {
	// Optional .env for local overrides (e.g. HTTPS_PROXY); missing file is fine
	_ = godotenv.Load()

	cli.Execute()
}
