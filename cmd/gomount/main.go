package main

import (
	"os"

	"github.com/heathj/gomount/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
