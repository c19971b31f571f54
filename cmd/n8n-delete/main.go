package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pacispopuli/radio-backend/n8n"
)

var rootCmd = &cobra.Command{
	Use:   "n8n-delete",
	Short: "Delete every workflow on an n8n server",
	Long: `Lists all workflows through the n8n REST API and deletes each one by id,
after an interactive confirmation. Requires N8N_API_KEY; N8N_API_URL defaults
to ` + n8n.DefaultAPIURL + `.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(os.Stdin) {
			fmt.Println("Operation cancelled.")
			return
		}
		deleteAllWorkflows()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func confirm(in *os.File) bool {
	fmt.Print("Are you sure you want to DELETE ALL workflows? This cannot be undone. (y/N): ")
	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func deleteAllWorkflows() {
	apiKey := os.Getenv("N8N_API_KEY")
	if apiKey == "" {
		fmt.Println("Error: N8N_API_KEY environment variable is not set.")
		os.Exit(1)
	}
	apiURL := os.Getenv("N8N_API_URL")
	if apiURL == "" {
		apiURL = n8n.DefaultAPIURL
	}

	client := n8n.NewClient(apiURL, apiKey)
	ctx := context.Background()

	fmt.Println("Fetching workflows...")
	workflows, err := client.ListWorkflows(ctx)
	if err != nil {
		fmt.Printf("Error communicating with n8n API: %v\n", err)
		os.Exit(1)
	}

	if len(workflows) == 0 {
		fmt.Println("No workflows found to delete.")
		return
	}

	fmt.Printf("Found %d workflows. Deleting...\n", len(workflows))
	for _, workflow := range workflows {
		fmt.Printf("Deleting workflow: %s (%s)...", workflow.Name, workflow.ID)
		if err := client.DeleteWorkflow(ctx, workflow.ID); err != nil {
			fmt.Printf(" Failed! %v\n", err)
			continue
		}
		fmt.Println(" Done.")
	}

	fmt.Println("\nAll workflows verified cleared.")
}
