package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/osse101/IdleMiner_Go/internal/item"
	"github.com/osse101/IdleMiner_Go/internal/mining"
	"github.com/osse101/IdleMiner_Go/internal/validation"
)

type ValidateConfigCommand struct{}

func (c *ValidateConfigCommand) Name() string { return "validate-config" }

func (c *ValidateConfigCommand) Description() string {
	return "Validate the mine catalog against its schema and the item seed"
}

func (c *ValidateConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	path := fs.String("mines", mining.ConfigPathMines, "mine catalog file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	PrintHeader("Validating " + *path)
	return validateMines(os.Stdout, *path)
}

// validateMines loads the catalog strictly and reports drops that name no
// seeded item. Unknown drops are warnings, not failures.
func validateMines(w io.Writer, path string) error {
	dataPath, err := validation.ResolvePath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dataPath); err != nil {
		return fmt.Errorf("mine catalog not found: %w", err)
	}
	schemaPath, err := validation.ResolvePath(mining.SchemaPathMines)
	if err != nil {
		return err
	}

	catalog, err := mining.LoadCatalog(dataPath, schemaPath, validation.NewSchemaValidator())
	if err != nil {
		return err
	}

	known := make(map[string]bool)
	for _, it := range item.DefaultItems() {
		known[it.InternalName] = true
	}

	mines := catalog.ListMines()
	unknown := 0
	for _, mine := range mines {
		for _, entry := range mine.Loot {
			if !known[entry.Item] {
				unknown++
				fmt.Fprintf(w, "warning: mine %s drops unknown item %s\n", mine.ID, entry.Item)
			}
		}
	}
	fmt.Fprintf(w, "%d mines valid, %d unknown drop items\n", len(mines), unknown)
	return nil
}
