// Command schema-generator regenerates the embedded configuration
// schema from the Go types. Run through go:generate in the config
// package.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/hooks/config"
)

func main() {
	outputPath := "schema/hooks.generated.schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	if err := os.WriteFile(outputPath, schemaBytes, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Generated schema at %s", outputPath)
}
