// Package supabase is a thin client for the two Supabase surfaces the API
// uses: PostgREST (/rest/v1) for table access with the service role key, and
// GoTrue (/auth/v1) for password auth and token verification.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Client talks to one Supabase project. All table operations run with the
// service role key; row scoping is the repositories' responsibility.
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// User is the subset of a GoTrue user record the API cares about.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the token pair returned by GoTrue password flows.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        strings.TrimRight(url, "/"),
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Select runs a PostgREST GET against a table. Query values use PostgREST
// operator syntax, e.g. {"user_id": "eq.<uuid>", "order": "date.asc"}.
func (c *Client) Select(ctx context.Context, table string, query map[string]string) ([]byte, error) {
	req, err := c.restRequest(ctx, http.MethodGet, table, query, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// Insert creates rows and returns their representation.
func (c *Client) Insert(ctx context.Context, table string, data interface{}) ([]byte, error) {
	req, err := c.restRequest(ctx, http.MethodPost, table, nil, data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.do(req)
}

// Upsert inserts or merges rows, resolving conflicts on the given columns
// (e.g. "user_id,date").
func (c *Client) Upsert(ctx context.Context, table string, data interface{}, onConflict string) ([]byte, error) {
	req, err := c.restRequest(ctx, http.MethodPost, table, map[string]string{"on_conflict": onConflict}, data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation,resolution=merge-duplicates")
	return c.do(req)
}

// UpdateWhere patches every row matching the query and returns the updated
// representation.
func (c *Client) UpdateWhere(ctx context.Context, table string, query map[string]string, data interface{}) ([]byte, error) {
	req, err := c.restRequest(ctx, http.MethodPatch, table, query, data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")
	return c.do(req)
}

// DeleteWhere removes every row matching the query.
func (c *Client) DeleteWhere(ctx context.Context, table string, query map[string]string) error {
	req, err := c.restRequest(ctx, http.MethodDelete, table, query, nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

// Count returns the number of rows matching the query without fetching them,
// using a HEAD request with an exact count preference.
func (c *Client) Count(ctx context.Context, table string, query map[string]string) (int, error) {
	req, err := c.restRequest(ctx, http.MethodHead, table, query, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("supabase count failed (status %d)", resp.StatusCode)
	}

	// Content-Range looks like "0-4/5" or "*/0".
	cr := resp.Header.Get("Content-Range")
	idx := strings.LastIndex(cr, "/")
	if idx < 0 {
		return 0, fmt.Errorf("supabase count: missing Content-Range header")
	}
	total, err := strconv.Atoi(cr[idx+1:])
	if err != nil {
		return 0, fmt.Errorf("supabase count: bad Content-Range %q", cr)
	}
	return total, nil
}

// VerifyToken resolves an access token to its GoTrue user, failing on
// expired or forged tokens.
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

// SignUp registers a new credential pair with GoTrue. Depending on project
// settings the session may lack tokens until the email is confirmed.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.passwordFlow(ctx, "/auth/v1/signup", email, password)
}

// SignInWithPassword exchanges credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	return c.passwordFlow(ctx, "/auth/v1/token?grant_type=password", email, password)
}

// SignOut revokes the session behind an access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/auth/v1/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	_, err = c.do(req)
	return err
}

func (c *Client) passwordFlow(ctx context.Context, path, email, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	// Signup responses without autoconfirm return the bare user object.
	if session.User.ID == "" {
		var user User
		if err := json.Unmarshal(body, &user); err == nil && user.ID != "" {
			session.User = user
		}
	}
	return &session, nil
}

func (c *Client) restRequest(ctx context.Context, method, table string, query map[string]string, data interface{}) (*http.Request, error) {
	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/rest/v1/%s", c.URL, table), body)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", "Bearer "+c.ServiceKey)
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// APIError is a non-2xx response from either Supabase surface.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase error (status %d): %s", e.Status, e.Body)
}
