package n8n

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Importer submits one sanitized workflow document to the destination server.
// The backend is picked once at startup: the API when a key is configured,
// otherwise the n8n CLI inside the local container.
type Importer interface {
	Import(ctx context.Context, doc map[string]any, filename string) error
}

// APIImporter imports workflows through the n8n REST API.
type APIImporter struct {
	Client *Client
}

func (a *APIImporter) Import(ctx context.Context, doc map[string]any, filename string) error {
	return a.Client.CreateWorkflow(ctx, doc)
}

// CLIImporter imports workflows by writing a temp file into the mounted
// workflows directory and running `n8n import:workflow` inside the compose
// container, which sees the directory as /workflows.
type CLIImporter struct {
	// WorkflowsDir is the host-side directory mounted into the container.
	WorkflowsDir string
}

func (c *CLIImporter) Import(ctx context.Context, doc map[string]any, filename string) error {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tempName := "_import_" + filepath.Base(filename)
	hostPath := filepath.Join(c.WorkflowsDir, tempName)
	containerPath := "/workflows/" + tempName

	if err := os.WriteFile(hostPath, encoded, 0o644); err != nil {
		return fmt.Errorf("write temp workflow: %w", err)
	}
	defer os.Remove(hostPath)

	cmd := exec.CommandContext(ctx, "docker", "compose", "exec", "-T", "n8n",
		"n8n", "import:workflow", "--input="+containerPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("n8n import:workflow failed: %w: %s", err, output)
	}
	return nil
}
