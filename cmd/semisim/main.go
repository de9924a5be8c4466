package main

import (
	"os"

	"github.com/edp1096/semisim/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
