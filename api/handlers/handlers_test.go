package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pacispopuli/radio-backend/api"
	"github.com/pacispopuli/radio-backend/api/handlers"
	"github.com/pacispopuli/radio-backend/config"
	"github.com/pacispopuli/radio-backend/core"
	"github.com/pacispopuli/radio-backend/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore is a deterministic in-memory Store.
type fakeStore struct {
	agents     []core.Agent
	topics     map[string]core.Topic
	interviews []core.InterviewResponse
	reports    map[string]core.ConsensusReport
	uploads    map[string][]byte
	audioURLs  map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		topics:    map[string]core.Topic{},
		reports:   map[string]core.ConsensusReport{},
		uploads:   map[string][]byte{},
		audioURLs: map[string]string{},
	}
}

func (f *fakeStore) UpsertAgents(_ context.Context, seeds []core.AgentSeed) ([]core.Agent, error) {
	agents := make([]core.Agent, 0, len(seeds))
	for i, seed := range seeds {
		agents = append(agents, core.Agent{
			ID:       fmt.Sprintf("agent-%d", i+1),
			Name:     seed.Name,
			Bio:      seed.Bio,
			VoiceID:  seed.VoiceID,
			Provider: seed.Provider,
		})
	}
	f.agents = agents
	return agents, nil
}

func (f *fakeStore) ListAgents(context.Context) ([]core.Agent, error) {
	return f.agents, nil
}

func (f *fakeStore) CreateTopic(_ context.Context, title string) (core.Topic, error) {
	topic := core.Topic{ID: fmt.Sprintf("topic-%d", len(f.topics)+1), Title: title}
	f.topics[topic.ID] = topic
	return topic, nil
}

func (f *fakeStore) GetTopic(_ context.Context, id string) (core.Topic, error) {
	topic, ok := f.topics[id]
	if !ok {
		return core.Topic{}, storage.ErrNotFound
	}
	return topic, nil
}

func (f *fakeStore) ListTopics(context.Context) ([]core.Topic, error) {
	topics := make([]core.Topic, 0, len(f.topics))
	for _, topic := range f.topics {
		topics = append(topics, topic)
	}
	return topics, nil
}

func (f *fakeStore) InsertInterview(_ context.Context, response core.InterviewResponse) error {
	f.interviews = append(f.interviews, response)
	return nil
}

func (f *fakeStore) ListInterviews(_ context.Context, topicID string) ([]core.InterviewResponse, error) {
	var result []core.InterviewResponse
	names := map[string]string{}
	for _, agent := range f.agents {
		names[agent.ID] = agent.Name
	}
	for _, interview := range f.interviews {
		if interview.TopicID == topicID {
			interview.AgentName = names[interview.AgentID]
			result = append(result, interview)
		}
	}
	return result, nil
}

func (f *fakeStore) InsertReport(_ context.Context, topicID, narrativeText string) (core.ConsensusReport, error) {
	report := core.ConsensusReport{
		ID:            fmt.Sprintf("report-%d", len(f.reports)+1),
		TopicID:       topicID,
		NarrativeText: narrativeText,
	}
	f.reports[report.ID] = report
	return report, nil
}

func (f *fakeStore) GetReport(_ context.Context, id string) (core.ConsensusReport, error) {
	report, ok := f.reports[id]
	if !ok {
		return core.ConsensusReport{}, storage.ErrNotFound
	}
	return report, nil
}

func (f *fakeStore) SetReportAudioURL(_ context.Context, id, audioURL string) error {
	report := f.reports[id]
	report.AudioURL = audioURL
	f.reports[id] = report
	f.audioURLs[id] = audioURL
	return nil
}

func (f *fakeStore) UploadAudio(_ context.Context, path string, audio []byte) (string, error) {
	f.uploads[path] = audio
	return "https://cdn.test/" + path, nil
}

// generateCall records one dispatch invocation.
type generateCall struct {
	provider core.Provider
	model    string
	system   string
	user     string
}

// fakeDispatcher replies through a pluggable function and records every call.
type fakeDispatcher struct {
	calls []generateCall
	reply func(provider core.Provider, model, system, user string) string
}

func (f *fakeDispatcher) Generate(_ context.Context, provider core.Provider, model, system, user string) string {
	f.calls = append(f.calls, generateCall{provider, model, system, user})
	if f.reply == nil {
		return "generated"
	}
	return f.reply(provider, model, system, user)
}

// fakeSynthesizer emits "<voice>:<text>;" so concatenation order is visible in
// the stitched buffer. Entries in empty produce no audio; entries in fail
// return an error.
type fakeSynthesizer struct {
	empty map[string]bool
	fail  map[string]bool
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, text, voiceID string) ([]byte, error) {
	if f.fail[text] {
		return nil, fmt.Errorf("vendor rejected %q", text)
	}
	if f.empty[text] {
		return nil, nil
	}
	return []byte(voiceID + ":" + text + ";"), nil
}

func testConfig() config.Settings {
	return config.Settings{
		SupabaseURL:      "http://supabase.test",
		SupabaseKey:      "anon",
		OpenAIAPIKey:     "sk-test",
		ElevenLabsAPIKey: "el-test",
		NarratorVoiceID:  "narrator-voice",
	}
}

func newRouter(store *fakeStore, llm handlers.Dispatcher, synth *fakeSynthesizer) *gin.Engine {
	if synth == nil {
		synth = &fakeSynthesizer{}
	}
	router := gin.New()
	api.SetupRoutes(router, handlers.New(store, llm, synth, testConfig()))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
