// Package n8n moves workflow definitions in and out of an n8n server: a
// sanitizer that makes exported documents safe to re-import, a thin API
// client, and an Importer capability with API and local-CLI backends.
package n8n

import "github.com/google/uuid"

// Sanitize rewrites an exported workflow document in place so it can be
// imported into a server that may already hold a copy:
//   - the top-level id is stripped, letting the destination assign its own
//   - versionId is regenerated to dodge database uniqueness constraints
//   - active is forced false so nothing starts running on import
//   - every node's webhookId is regenerated; duplicate webhook ids across
//     workflows block activation
//
// It returns the stripped top-level id, "" if the document had none.
func Sanitize(doc map[string]any) string {
	strippedID := ""
	if id, ok := doc["id"]; ok {
		strippedID, _ = id.(string)
		delete(doc, "id")
	}

	doc["versionId"] = uuid.New().String()
	doc["active"] = false

	if nodes, ok := doc["nodes"].([]any); ok {
		for _, n := range nodes {
			node, ok := n.(map[string]any)
			if !ok {
				continue
			}
			if _, ok := node["webhookId"]; ok {
				node["webhookId"] = uuid.New().String()
			}
		}
	}

	return strippedID
}
