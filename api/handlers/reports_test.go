package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacispopuli/radio-backend/core"
)

func TestGenerateReportStripsFencesAndPersists(t *testing.T) {
	store := newFakeStore()
	store.agents = []core.Agent{
		{ID: "a1", Name: "Captain Reyes", Provider: core.ProviderOpenAI},
	}
	store.topics["t1"] = core.Topic{ID: "t1", Title: "Airship commuting"}
	store.interviews = []core.InterviewResponse{
		{TopicID: "t1", AgentID: "a1", Text: "I would fly one tomorrow."},
	}

	llm := &fakeDispatcher{
		reply: func(core.Provider, string, string, string) string {
			return "```json\n[{\"speaker\":\"Reporter\",\"text\":\"Tonight: airships.\"}]\n```"
		},
	}
	router := newRouter(store, llm, nil)

	w := doJSON(t, router, http.MethodPost, "/reports/generate", map[string]string{"topic_id": "t1"})
	require.Equal(t, http.StatusOK, w.Code)

	reports := decodeBody[[]core.ConsensusReport](t, w)
	require.Len(t, reports, 1)
	assert.Equal(t, "t1", reports[0].TopicID)

	stored := store.reports[reports[0].ID]
	assert.Equal(t, `[{"speaker":"Reporter","text":"Tonight: airships."}]`, stored.NarrativeText)

	// The stored script parses once the fences are gone.
	segments, err := core.ParseScript(stored.NarrativeText)
	require.NoError(t, err)
	assert.Equal(t, "Reporter", segments[0].Speaker)
}

func TestGenerateReportContext(t *testing.T) {
	store := newFakeStore()
	store.agents = []core.Agent{
		{ID: "a1", Name: "The Ferryman", Provider: core.ProviderClaude},
		{ID: "a2", Name: "Mirela the Archivist", Provider: core.ProviderGemini},
	}
	store.topics["t1"] = core.Topic{ID: "t1", Title: "River tolls"}
	store.interviews = []core.InterviewResponse{
		{TopicID: "t1", AgentID: "a1", Text: "Tolls feed the ferry."},
		{TopicID: "t1", AgentID: "a2", Text: "We tried this in 1893."},
	}

	llm := &fakeDispatcher{}
	router := newRouter(store, llm, nil)

	w := doJSON(t, router, http.MethodPost, "/reports/generate", map[string]string{"topic_id": "t1"})
	require.Equal(t, http.StatusOK, w.Code)

	// Report synthesis is pinned to one provider and model.
	require.Len(t, llm.calls, 1)
	call := llm.calls[0]
	assert.Equal(t, core.ProviderOpenAI, call.provider)
	assert.Equal(t, "gpt-4-turbo-preview", call.model)
	assert.Contains(t, call.system, "Radio Reporter")
	assert.Contains(t, call.system, "Return ONLY the raw JSON list.")

	assert.True(t, strings.HasPrefix(call.user, "Topic: River tolls\n\nInterviews:\n"), "context prefix, got %q", call.user)
	assert.Contains(t, call.user, "- The Ferryman: Tolls feed the ferry.\n")
	assert.Contains(t, call.user, "- Mirela the Archivist: We tried this in 1893.\n")
}

func TestGenerateReportTopicNotFound(t *testing.T) {
	router := newRouter(newFakeStore(), &fakeDispatcher{}, nil)

	w := doJSON(t, router, http.MethodPost, "/reports/generate", map[string]string{"topic_id": "missing"})
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody[map[string]string](t, w)
	assert.Equal(t, "Topic not found", body["error"])
}
