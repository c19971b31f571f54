package n8n

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workflowDoc() map[string]any {
	return map[string]any{
		"id":        "42",
		"name":      "Morning digest",
		"active":    true,
		"versionId": "stale-version",
		"nodes": []any{
			map[string]any{"name": "Webhook", "webhookId": "old-hook"},
			map[string]any{"name": "Set fields"},
		},
	}
}

func TestSanitize(t *testing.T) {
	doc := workflowDoc()

	stripped := Sanitize(doc)
	assert.Equal(t, "42", stripped)

	_, hasID := doc["id"]
	assert.False(t, hasID, "top-level id must be removed")
	assert.Equal(t, false, doc["active"])

	versionID, ok := doc["versionId"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(versionID)
	assert.NoError(t, err, "versionId must be a fresh uuid")

	nodes := doc["nodes"].([]any)
	webhook := nodes[0].(map[string]any)
	hookID, ok := webhook["webhookId"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "old-hook", hookID)
	_, err = uuid.Parse(hookID)
	assert.NoError(t, err)

	// Nodes without a webhookId stay untouched.
	plain := nodes[1].(map[string]any)
	_, hasHook := plain["webhookId"]
	assert.False(t, hasHook)
}

func TestSanitizeIsCollisionFreeAcrossRuns(t *testing.T) {
	first := workflowDoc()
	second := workflowDoc()

	Sanitize(first)
	Sanitize(second)

	assert.NotEqual(t, first["versionId"], second["versionId"],
		"re-importing the same file must regenerate the version id")

	firstHook := first["nodes"].([]any)[0].(map[string]any)["webhookId"]
	secondHook := second["nodes"].([]any)[0].(map[string]any)["webhookId"]
	assert.NotEqual(t, firstHook, secondHook)
}

func TestSanitizeWithoutID(t *testing.T) {
	doc := map[string]any{"name": "No id yet"}
	assert.Equal(t, "", Sanitize(doc))
	assert.Equal(t, false, doc["active"])
}
