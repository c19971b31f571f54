package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pacispopuli/radio-backend/n8n"
)

var importDir string

var rootCmd = &cobra.Command{
	Use:   "n8n-import",
	Short: "Bulk-import workflow definitions into an n8n server",
	Long: `Walks a directory of exported n8n workflow JSON files, sanitizes each
document (strips ids, regenerates version and webhook ids, deactivates) and
imports it via the n8n REST API when N8N_API_KEY is set, or via the n8n CLI in
the local compose container otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		runImport()
	},
}

func init() {
	rootCmd.Flags().StringVar(&importDir, "dir", "", "Directory of workflow JSON files (default: workflows)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func resolveDir() string {
	if importDir != "" {
		return importDir
	}
	// The scripts historically ran from either the scripts directory or the
	// repository root; probe both.
	for _, dir := range []string{"../workflows", "workflows"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "workflows"
}

func runImport() {
	dir := resolveDir()
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		fmt.Printf("Error: Workflows directory '%s' not found.\n", dir)
		os.Exit(1)
	}

	var importer n8n.Importer
	if apiKey := os.Getenv("N8N_API_KEY"); apiKey != "" {
		apiURL := os.Getenv("N8N_API_URL")
		if apiURL == "" {
			apiURL = n8n.DefaultAPIURL
		}
		importer = &n8n.APIImporter{Client: n8n.NewClient(apiURL, apiKey)}
		fmt.Printf("Importing via API at %s\n", apiURL)
	} else {
		importer = &n8n.CLIImporter{WorkflowsDir: dir}
		fmt.Println("N8N_API_KEY not set, importing via n8n CLI")
	}

	fmt.Printf("Processing workflows from %s...\n", dir)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if !d.IsDir() && strings.HasSuffix(name, ".json") && !strings.HasPrefix(name, "_import_") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		fmt.Printf("Error walking %s: %v\n", dir, err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Println("No workflow files found.")
		return
	}

	ctx := context.Background()
	imported := 0
	for _, path := range files {
		if err := importOne(ctx, importer, path); err != nil {
			fmt.Printf("  Failed to import %s: %v\n", filepath.Base(path), err)
			continue
		}
		fmt.Printf("  Successfully imported %s (Cleaned)\n", filepath.Base(path))
		imported++
	}

	fmt.Printf("\nCompleted. Imported %d workflows.\n", imported)
}

func importOne(ctx context.Context, importer n8n.Importer, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if stripped := n8n.Sanitize(doc); stripped != "" {
		fmt.Printf("  Stripping ID %s from %s\n", stripped, filepath.Base(path))
	}

	return importer.Import(ctx, doc, path)
}
