package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/config"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/logger"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/metrics"
)

const maxBodyLogBytes = 200

// Client interroge l'endpoint GraphQL de LeetCode avec retry borné et
// backoff linéaire.
type Client struct {
	httpClient *http.Client
	endpoint   string
	session    string
	maxRetries int
	retryBase  time.Duration
	retryStep  time.Duration
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout()},
		endpoint:   cfg.GraphQLURL,
		session:    cfg.LeetCodeSession,
		maxRetries: cfg.MaxRetries,
		retryBase:  cfg.RetryBase(),
		retryStep:  cfg.RetryIncrement(),
	}
}

type graphqlPayload struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// Execute envoie une requête GraphQL et décode la réponse. Jusqu'à
// maxRetries tentatives, avec une attente de retryBase + retryStep*tentative
// entre chacune (0.6s, 0.9s, 1.2s avec les valeurs par défaut). Après
// épuisement l'appelant reçoit une erreur et doit traiter l'utilisateur
// comme "pas de données", jamais faire échouer le batch.
func (c *Client) Execute(ctx context.Context, operation, query string, variables map[string]interface{}) (*Response, error) {
	if variables == nil {
		variables = map[string]interface{}{}
	}
	body, err := json.Marshal(graphqlPayload{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("could not encode graphql payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			logger.Debug("Retrying %s (attempt %d/%d)", operation, attempt+1, c.maxRetries)
			select {
			case <-time.After(c.retryBase + c.retryStep*time.Duration(attempt-1)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := c.doOnce(ctx, operation, body)
		if err != nil {
			lastErr = err
			continue
		}
		return resp, nil
	}

	metrics.APICalls.WithLabelValues(operation, "exhausted").Inc()
	return nil, fmt.Errorf("%s failed after %d attempts: %w", operation, c.maxRetries, lastErr)
}

func (c *Client) doOnce(ctx context.Context, operation string, body []byte) (*Response, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	if c.session != "" {
		// Sans session la requête reste valide, en données publiques seulement
		req.Header.Set("Cookie", "LEETCODE_SESSION="+c.session)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APICalls.WithLabelValues(operation, "network_error").Inc()
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.APICalls.WithLabelValues(operation, "read_error").Inc()
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	logger.Query(operation, c.endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		metrics.APICalls.WithLabelValues(operation, fmt.Sprintf("http_%d", resp.StatusCode)).Inc()
		logger.Warning("HTTP %d from %s: %s", resp.StatusCode, c.endpoint, truncate(raw, maxBodyLogBytes))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		metrics.APICalls.WithLabelValues(operation, "decode_error").Inc()
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	metrics.APICalls.WithLabelValues(operation, "success").Inc()
	return &out, nil
}

// FetchUserData exécute la requête combinée pour un utilisateur.
func (c *Client) FetchUserData(ctx context.Context, username string, limit int) (*Response, error) {
	return c.Execute(ctx, "fullUserData", QueryFullUserData, map[string]interface{}{
		"username": username,
		"limit":    limit,
		"year":     nil,
	})
}

// Requêtes de repli, une facette chacune. Le flux principal ne les utilise
// pas mais elles font partie du contrat distant.

func (c *Client) FetchPublicProfile(ctx context.Context, username string) (*Response, error) {
	return c.Execute(ctx, "userPublicProfile", QueryUserPublicProfile, map[string]interface{}{"username": username})
}

func (c *Client) FetchSessionProgress(ctx context.Context, username string) (*Response, error) {
	return c.Execute(ctx, "userSessionProgress", QueryUserSessionProgress, map[string]interface{}{"username": username})
}

func (c *Client) FetchSkillStats(ctx context.Context, username string) (*Response, error) {
	return c.Execute(ctx, "skillStats", QuerySkillStats, map[string]interface{}{"username": username})
}

func (c *Client) FetchLanguageStats(ctx context.Context, username string) (*Response, error) {
	return c.Execute(ctx, "languageStats", QueryLanguageStats, map[string]interface{}{"username": username})
}

func (c *Client) FetchBadges(ctx context.Context, username string) (*Response, error) {
	return c.Execute(ctx, "userBadges", QueryUserBadges, map[string]interface{}{"username": username})
}

func (c *Client) FetchProfileCalendar(ctx context.Context, username string) (*Response, error) {
	return c.Execute(ctx, "userProfileCalendar", QueryUserProfileCalendar, map[string]interface{}{
		"username": username,
		"year":     nil,
	})
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
