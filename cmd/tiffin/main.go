// Command tiffin is the customer and admin client for Gurukrupa Mess.
package main

import (
	"log"
	"os"

	"github.com/bhushansable/Gurukrupa-Mess/internal/cli"
	"github.com/bhushansable/Gurukrupa-Mess/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Unable to load config: %v", err)
	}
	os.Exit(cli.Execute(cfg))
}
