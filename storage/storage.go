// Package storage is the gateway to the external row/blob store. All domain
// entities live there; the service keeps no copy beyond a single request.
package storage

import (
	"context"
	"errors"

	"github.com/pacispopuli/radio-backend/core"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// Store is the set of row and blob operations the endpoints need.
type Store interface {
	// UpsertAgents inserts or updates agent rows keyed on name and returns
	// the resulting rows.
	UpsertAgents(ctx context.Context, seeds []core.AgentSeed) ([]core.Agent, error)
	ListAgents(ctx context.Context) ([]core.Agent, error)

	CreateTopic(ctx context.Context, title string) (core.Topic, error)
	GetTopic(ctx context.Context, id string) (core.Topic, error)
	ListTopics(ctx context.Context) ([]core.Topic, error)

	// InsertInterview appends one interview response; duplicate rounds for
	// the same topic add rows, they never overwrite.
	InsertInterview(ctx context.Context, response core.InterviewResponse) error
	// ListInterviews returns all responses for a topic with AgentName
	// populated from the agent join.
	ListInterviews(ctx context.Context, topicID string) ([]core.InterviewResponse, error)

	InsertReport(ctx context.Context, topicID, narrativeText string) (core.ConsensusReport, error)
	GetReport(ctx context.Context, id string) (core.ConsensusReport, error)
	SetReportAudioURL(ctx context.Context, id, audioURL string) error

	// UploadAudio stores a blob at path, overwriting any existing object,
	// and returns its public URL.
	UploadAudio(ctx context.Context, path string, audio []byte) (string, error)
}
