// Package everfit is the HTTP boundary to the Everfit coaching platform.
// Every call is a blocking JSON round-trip with a fixed timeout; non-2xx
// responses come back as errors carrying the status and body.
package everfit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api-prod3.everfit.io"

// AuthError reports a failed login: bad credentials, a transport-level
// rejection, or a response with no token. It is fatal for the run.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("login failed: %s", e.Body)
	}
	return fmt.Sprintf("login failed (status %d): %s", e.Status, e.Body)
}

// APIError is a non-2xx response from any call after login.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed (status %d): %s", e.Status, e.Body)
}

// Client talks to the Everfit API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL with a fixed request
// timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do sends one JSON request. A non-empty token is attached as the access
// header. When out is non-nil the response body is decoded into it.
func (c *Client) do(method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	req.Header.Set("X-App-Type", "web-coach")
	if token != "" {
		req.Header.Set("X-Access-Token", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(email, password string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
		"agent":    "react",
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, "/api/auth/login_lite", "", body, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return "", &AuthError{Status: apiErr.Status, Body: apiErr.Body}
		}
		return "", &AuthError{Body: err.Error()}
	}
	if resp.Token == "" {
		return "", &AuthError{Body: "response contained no token"}
	}
	return resp.Token, nil
}

// searchFilterRequest is the catalog search body. From is pinned to the
// custom-exercises filter.
type searchFilterRequest struct {
	BodyPart         []string `json:"body_part"`
	CategoryType     []string `json:"category_type"`
	Equipments       []string `json:"equipments"`
	From             []bool   `json:"from"`
	Modalities       []string `json:"modalities"`
	MovementPatterns []string `json:"movement_patterns"`
	MuscleGroups     []string `json:"muscle_groups"`
	Page             int      `json:"page"`
	PerPage          int      `json:"per_page"`
	Q                string   `json:"q"`
	Sort             int      `json:"sort"`
	Sorter           string   `json:"sorter"`
	Tags             []string `json:"tags"`
	VideoOnly        bool     `json:"video_only"`
}

func newSearchFilterRequest(perPage int) searchFilterRequest {
	return searchFilterRequest{
		BodyPart:         []string{},
		CategoryType:     []string{},
		Equipments:       []string{},
		From:             []bool{false, true},
		Modalities:       []string{},
		MovementPatterns: []string{},
		MuscleGroups:     []string{},
		Page:             1,
		PerPage:          perPage,
		Sort:             -1,
		Sorter:           "last_interacted",
		Tags:             []string{},
	}
}

// FetchExerciseCatalog retrieves the full custom exercise catalog. The
// fetch is two-phase: a probe page reveals the total, then one request
// pulls everything.
func (c *Client) FetchExerciseCatalog(token string) ([]CatalogExercise, error) {
	const probePerPage = 50

	var probe struct {
		Total int               `json:"total"`
		Data  []CatalogExercise `json:"data"`
	}
	if err := c.do(http.MethodPost, "/api/exercise/search_filter_library", token, newSearchFilterRequest(probePerPage), &probe); err != nil {
		return nil, fmt.Errorf("fetching exercise catalog: %w", err)
	}
	if probe.Total == 0 {
		return nil, nil
	}

	var full struct {
		Data []CatalogExercise `json:"data"`
	}
	if err := c.do(http.MethodPost, "/api/exercise/search_filter_library", token, newSearchFilterRequest(probe.Total), &full); err != nil {
		return nil, fmt.Errorf("fetching exercise catalog: %w", err)
	}
	return full.Data, nil
}

// FetchTagCatalog retrieves every existing tag, two-phase like the
// exercise catalog.
func (c *Client) FetchTagCatalog(token string) ([]Tag, error) {
	const probePerPage = 20
	path := "/api/tag/get-list-tag-by-team?sorter=name&per_page=%d&page=1&sort=1&text_search=&type=1"

	var probe struct {
		Data struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := c.do(http.MethodGet, fmt.Sprintf(path, probePerPage), token, nil, &probe); err != nil {
		return nil, fmt.Errorf("fetching tag catalog: %w", err)
	}
	if probe.Data.Total == 0 {
		return nil, nil
	}

	var full struct {
		Data struct {
			Data []Tag `json:"data"`
		} `json:"data"`
	}
	if err := c.do(http.MethodGet, fmt.Sprintf(path, probe.Data.Total), token, nil, &full); err != nil {
		return nil, fmt.Errorf("fetching tag catalog: %w", err)
	}
	return full.Data.Data, nil
}

// CreateTag creates a tag and returns its new id. Creation is not
// existence-checked server-side; callers reconcile against the catalog
// first.
func (c *Client) CreateTag(token, name string) (string, error) {
	body := map[string]any{
		"name": name,
		"type": 1,
	}
	var resp struct {
		Data struct {
			ID string `json:"_id"`
		} `json:"data"`
	}
	if err := c.do(http.MethodPost, "/api/tag/", token, body, &resp); err != nil {
		return "", fmt.Errorf("creating tag %q: %w", name, err)
	}
	return resp.Data.ID, nil
}

// CreateExercise adds a new exercise-library entry.
func (c *Client) CreateExercise(token string, payload ExercisePayload) (json.RawMessage, error) {
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(http.MethodPost, "/api/exercise/add", token, payload, &resp); err != nil {
		return nil, fmt.Errorf("adding exercise %q: %w", payload.Title, err)
	}
	return resp.Data, nil
}

// UpdateExercise replaces an existing exercise-library entry.
func (c *Client) UpdateExercise(token, id string, payload ExercisePayload) (json.RawMessage, error) {
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(http.MethodPut, "/api/exercise/update/"+id, token, payload, &resp); err != nil {
		return nil, fmt.Errorf("updating exercise %q: %w", payload.Title, err)
	}
	return resp.Data, nil
}

// FetchExerciseDetail returns the raw detail record for one exercise.
func (c *Client) FetchExerciseDetail(token, id string) (json.RawMessage, error) {
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/exercise/detail/"+id, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching exercise detail %s: %w", id, err)
	}
	return resp.Data, nil
}

// CreateWorkout creates a workout from a compiled payload.
func (c *Client) CreateWorkout(token string, payload WorkoutPayload) (json.RawMessage, error) {
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(http.MethodPost, "/api/workout/v2/add", token, payload, &resp); err != nil {
		return nil, fmt.Errorf("adding workout %q: %w", payload.Title, err)
	}
	return resp.Data, nil
}
