// Package fwcloud is the remote store adapter: a typed HTTP client for
// the multi-tenant document store. Each collection exposes upload and
// download keyed by owner, with an optional "modified since" filter for
// incremental sync.
package fwcloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TokenFunc supplies a bearer token for authenticated requests. A nil
// TokenFunc (or an empty token) leaves requests unauthenticated, which is
// only valid for global collections such as the exercise catalog.
type TokenFunc func(ctx context.Context) (string, error)

// Client is the HTTP client shared by all remote collections.
type Client struct {
	BaseURL string
	Token   TokenFunc
	HTTP    *http.Client
}

// NewClient creates a remote store client for the given server.
func NewClient(baseURL string, token TokenFunc) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.Token == nil {
		return nil
	}
	token, err := c.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

// Collection provides typed upload/download for one remote collection.
type Collection[D any] struct {
	client *Client
	name   string
}

// NewCollection binds a document type to a named server collection.
func NewCollection[D any](client *Client, name string) *Collection[D] {
	return &Collection[D]{client: client, name: name}
}

// Name returns the wire name of the collection.
func (c *Collection[D]) Name() string { return c.name }

// Download fetches the owner's documents, optionally restricted to those
// modified after since. A nil since means a full fetch. Global collections
// ignore the owner entirely.
func (c *Collection[D]) Download(ctx context.Context, ownerID string, since *time.Time) ([]D, error) {
	q := url.Values{}
	if ownerID != "" {
		q.Set("owner", ownerID)
	}
	if since != nil {
		q.Set("since", since.UTC().Format(time.RFC3339Nano))
	}
	reqURL := fmt.Sprintf("%s/v1/collections/%s", c.client.BaseURL, c.name)
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create download request: %w", err)
	}
	if err := c.client.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.client.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("download %s: server returned status %d: %s", c.name, resp.StatusCode, string(body))
	}

	var docs []D
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s download response: %w", c.name, err)
	}
	return docs, nil
}

// Upload replaces the owner's visible set of documents in the collection
// with the given snapshot.
func (c *Collection[D]) Upload(ctx context.Context, ownerID string, docs []D) error {
	if docs == nil {
		docs = []D{}
	}
	payload, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to marshal %s upload: %w", c.name, err)
	}

	reqURL := fmt.Sprintf("%s/v1/collections/%s?owner=%s", c.client.BaseURL, c.name, url.QueryEscape(ownerID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.client.authorize(ctx, req); err != nil {
		return err
	}

	resp, err := c.client.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload %s: server returned status %d: %s", c.name, resp.StatusCode, string(body))
	}
	return nil
}

// Collections bundles one typed Collection per remote collection, in
// pipeline order.
type Collections struct {
	Exercises       *Collection[ExerciseDoc]
	CustomExercises *Collection[CustomExerciseDoc]

	Programmes        *Collection[ProgrammeDoc]
	ProgrammeWeeks    *Collection[ProgrammeWeekDoc]
	ProgrammeWorkouts *Collection[ProgrammeWorkoutDoc]
	ProgrammeProgress *Collection[ProgrammeProgressDoc]

	Workouts     *Collection[WorkoutDoc]
	ExerciseLogs *Collection[ExerciseLogDoc]
	SetLogs      *Collection[SetLogDoc]

	Templates         *Collection[TemplateDoc]
	TemplateExercises *Collection[TemplateExerciseDoc]
	TemplateSets      *Collection[TemplateSetDoc]

	ExerciseMaxes   *Collection[ExerciseMaxDoc]
	PersonalRecords *Collection[PersonalRecordDoc]
	ExerciseUsage   *Collection[ExerciseUsageDoc]

	SwapHistory            *Collection[SwapHistoryDoc]
	PerformanceTracking    *Collection[PerformanceTrackingDoc]
	GlobalExerciseProgress *Collection[GlobalExerciseProgressDoc]
	TrainingAnalyses       *Collection[TrainingAnalysisDoc]
	ParseRequests          *Collection[ParseRequestDoc]
}

// NewCollections wires every collection against the client.
func NewCollections(client *Client) *Collections {
	return &Collections{
		Exercises:       NewCollection[ExerciseDoc](client, "exercises"),
		CustomExercises: NewCollection[CustomExerciseDoc](client, "custom_exercises"),

		Programmes:        NewCollection[ProgrammeDoc](client, "programmes"),
		ProgrammeWeeks:    NewCollection[ProgrammeWeekDoc](client, "programme_weeks"),
		ProgrammeWorkouts: NewCollection[ProgrammeWorkoutDoc](client, "programme_workouts"),
		ProgrammeProgress: NewCollection[ProgrammeProgressDoc](client, "programme_progress"),

		Workouts:     NewCollection[WorkoutDoc](client, "workouts"),
		ExerciseLogs: NewCollection[ExerciseLogDoc](client, "exercise_logs"),
		SetLogs:      NewCollection[SetLogDoc](client, "set_logs"),

		Templates:         NewCollection[TemplateDoc](client, "templates"),
		TemplateExercises: NewCollection[TemplateExerciseDoc](client, "template_exercises"),
		TemplateSets:      NewCollection[TemplateSetDoc](client, "template_sets"),

		ExerciseMaxes:   NewCollection[ExerciseMaxDoc](client, "exercise_maxes"),
		PersonalRecords: NewCollection[PersonalRecordDoc](client, "personal_records"),
		ExerciseUsage:   NewCollection[ExerciseUsageDoc](client, "exercise_usage"),

		SwapHistory:            NewCollection[SwapHistoryDoc](client, "swap_history"),
		PerformanceTracking:    NewCollection[PerformanceTrackingDoc](client, "performance_tracking"),
		GlobalExerciseProgress: NewCollection[GlobalExerciseProgressDoc](client, "global_exercise_progress"),
		TrainingAnalyses:       NewCollection[TrainingAnalysisDoc](client, "training_analyses"),
		ParseRequests:          NewCollection[ParseRequestDoc](client, "parse_requests"),
	}
}
