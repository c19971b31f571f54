// Package data bundles the seed definitions shipped with the service.
package data

import _ "embed"

// AgentsJSON is the bundled persona roster used by the agent seed endpoint.
//
//go:embed agents.json
var AgentsJSON []byte
