// Package translate turns the Spanish instruction lines of a library sheet
// into bilingual "English | Spanish" lines via the DeepL API.
package translate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DeepLClient is a minimal client for the DeepL v2 translate endpoint.
type DeepLClient struct {
	baseURL    string
	authKey    string
	httpClient *http.Client
}

// NewDeepLClient creates a client for the given DeepL host.
func NewDeepLClient(baseURL, authKey string, timeout time.Duration) *DeepLClient {
	return &DeepLClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		authKey: authKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Translate translates one text into the target language.
func (c *DeepLClient) Translate(text, targetLang string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"text":        []string{text},
		"target_lang": targetLang,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v2/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+c.authKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translating: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("translate request failed (status %d): %s", resp.StatusCode, respBody)
	}

	var out struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding translate response: %w", err)
	}
	if len(out.Translations) == 0 {
		return "", fmt.Errorf("translate response contained no translations")
	}
	return out.Translations[0].Text, nil
}
