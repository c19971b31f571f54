package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pacispopuli/radio-backend/core"
)

const audioBucket = "reports"

// Supabase implements Store against a Supabase project: PostgREST for rows,
// the storage API for blobs.
type Supabase struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewSupabase creates a store for the project at baseURL authenticated with
// apiKey.
func NewSupabase(baseURL, apiKey string) *Supabase {
	return &Supabase{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *Supabase) UpsertAgents(ctx context.Context, seeds []core.AgentSeed) ([]core.Agent, error) {
	var agents []core.Agent
	headers := map[string]string{
		"Prefer": "resolution=merge-duplicates,return=representation",
	}
	err := s.rest(ctx, http.MethodPost, "/rest/v1/agents", url.Values{"on_conflict": {"name"}}, headers, seeds, &agents)
	if err != nil {
		return nil, fmt.Errorf("upsert agents: %w", err)
	}
	return agents, nil
}

func (s *Supabase) ListAgents(ctx context.Context) ([]core.Agent, error) {
	var agents []core.Agent
	err := s.rest(ctx, http.MethodGet, "/rest/v1/agents", url.Values{"select": {"*"}}, nil, nil, &agents)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

func (s *Supabase) CreateTopic(ctx context.Context, title string) (core.Topic, error) {
	var topics []core.Topic
	headers := map[string]string{"Prefer": "return=representation"}
	body := map[string]string{"title": title}
	err := s.rest(ctx, http.MethodPost, "/rest/v1/topics", nil, headers, body, &topics)
	if err != nil {
		return core.Topic{}, fmt.Errorf("create topic: %w", err)
	}
	if len(topics) == 0 {
		return core.Topic{}, fmt.Errorf("create topic: no row returned")
	}
	return topics[0], nil
}

func (s *Supabase) GetTopic(ctx context.Context, id string) (core.Topic, error) {
	var topics []core.Topic
	query := url.Values{"select": {"*"}, "id": {"eq." + id}}
	if err := s.rest(ctx, http.MethodGet, "/rest/v1/topics", query, nil, nil, &topics); err != nil {
		return core.Topic{}, fmt.Errorf("get topic: %w", err)
	}
	if len(topics) == 0 {
		return core.Topic{}, ErrNotFound
	}
	return topics[0], nil
}

func (s *Supabase) ListTopics(ctx context.Context) ([]core.Topic, error) {
	var topics []core.Topic
	query := url.Values{"select": {"*"}, "order": {"created_at.desc"}}
	if err := s.rest(ctx, http.MethodGet, "/rest/v1/topics", query, nil, nil, &topics); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

func (s *Supabase) InsertInterview(ctx context.Context, response core.InterviewResponse) error {
	body := map[string]string{
		"topic_id": response.TopicID,
		"agent_id": response.AgentID,
		"text":     response.Text,
	}
	if err := s.rest(ctx, http.MethodPost, "/rest/v1/interviews", nil, nil, body, nil); err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

// interviewRow is an interview joined with its agent's name via PostgREST
// resource embedding.
type interviewRow struct {
	core.InterviewResponse
	Agents struct {
		Name string `json:"name"`
	} `json:"agents"`
}

func (s *Supabase) ListInterviews(ctx context.Context, topicID string) ([]core.InterviewResponse, error) {
	var rows []interviewRow
	query := url.Values{
		"select":   {"*,agents(name)"},
		"topic_id": {"eq." + topicID},
	}
	if err := s.rest(ctx, http.MethodGet, "/rest/v1/interviews", query, nil, nil, &rows); err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}

	responses := make([]core.InterviewResponse, 0, len(rows))
	for _, row := range rows {
		response := row.InterviewResponse
		response.AgentName = row.Agents.Name
		responses = append(responses, response)
	}
	return responses, nil
}

func (s *Supabase) InsertReport(ctx context.Context, topicID, narrativeText string) (core.ConsensusReport, error) {
	var reports []core.ConsensusReport
	headers := map[string]string{"Prefer": "return=representation"}
	body := map[string]string{
		"topic_id":       topicID,
		"narrative_text": narrativeText,
	}
	err := s.rest(ctx, http.MethodPost, "/rest/v1/consensus_reports", nil, headers, body, &reports)
	if err != nil {
		return core.ConsensusReport{}, fmt.Errorf("insert report: %w", err)
	}
	if len(reports) == 0 {
		return core.ConsensusReport{}, fmt.Errorf("insert report: no row returned")
	}
	return reports[0], nil
}

func (s *Supabase) GetReport(ctx context.Context, id string) (core.ConsensusReport, error) {
	var reports []core.ConsensusReport
	query := url.Values{"select": {"*"}, "id": {"eq." + id}}
	if err := s.rest(ctx, http.MethodGet, "/rest/v1/consensus_reports", query, nil, nil, &reports); err != nil {
		return core.ConsensusReport{}, fmt.Errorf("get report: %w", err)
	}
	if len(reports) == 0 {
		return core.ConsensusReport{}, ErrNotFound
	}
	return reports[0], nil
}

func (s *Supabase) SetReportAudioURL(ctx context.Context, id, audioURL string) error {
	query := url.Values{"id": {"eq." + id}}
	body := map[string]string{"audio_url": audioURL}
	if err := s.rest(ctx, http.MethodPatch, "/rest/v1/consensus_reports", query, nil, body, nil); err != nil {
		return fmt.Errorf("update report audio url: %w", err)
	}
	return nil
}

func (s *Supabase) UploadAudio(ctx context.Context, path string, audio []byte) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, audioBucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(audio))
	if err != nil {
		return "", err
	}
	s.authorize(req)
	req.Header.Set("Content-Type", "audio/mpeg")
	req.Header.Set("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload audio: status %d: %s", resp.StatusCode, msg)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, audioBucket, path), nil
}

// rest performs one PostgREST call. body is JSON-encoded when non-nil; the
// response is decoded into out when out is non-nil.
func (s *Supabase) rest(ctx context.Context, method, path string, query url.Values, headers map[string]string, body, out any) error {
	endpoint := s.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	s.authorize(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *Supabase) authorize(req *http.Request) {
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
}
