package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	UserName         string `json:"username"`
	Email            string `json:"email"`
	OrganisationName string `json:"organisation_name"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"confirm_password"`
}

// User is the public user view returned by POST /register.
type User struct {
	UserName         string `json:"username"`
	Email            string `json:"email"`
	OrganisationName string `json:"organisation_name"`
}

// Session is the response of GET /me.
type Session struct {
	UserName string `json:"username"`
	Message  string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// AuthClient calls the session endpoints. It is safe for concurrent use.
type AuthClient struct {
	baseURL *url.URL
	http    *http.Client
}

// NewHTTPClient returns an http.Client with the given timeout. insecure
// disables certificate verification.
func NewHTTPClient(timeout time.Duration, insecure bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}

// NewAuthClient binds hc to serverURL. A cookie jar is attached when hc has none.
func NewAuthClient(serverURL string, hc *http.Client) (*AuthClient, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url: %q", serverURL)
	}

	if hc == nil {
		hc = &http.Client{}
	}
	if hc.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		hc.Jar = jar
	}

	return &AuthClient{baseURL: u, http: hc}, nil
}

func (c *AuthClient) endpoint(path string) string {
	return c.baseURL.JoinPath(path).String()
}

func (c *AuthClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageResponse
		_ = json.Unmarshal(body, &m)
		return &APIError{StatusCode: resp.StatusCode, Detail: m.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Register creates an account. It does not log in.
func (c *AuthClient) Register(ctx context.Context, r RegisterRequest) (*User, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/register"), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var u User
	if err := c.do(req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login posts the credentials as a form; the session cookie lands in the jar.
func (c *AuthClient) Login(ctx context.Context, email, password string) error {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/login"), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, nil)
}

// Me returns the identity bound to the current session cookie.
func (c *AuthClient) Me(ctx context.Context) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/me"), nil)
	if err != nil {
		return nil, err
	}

	var s Session
	if err := c.do(req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Logout asks the server to clear the session cookie.
func (c *AuthClient) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/logout"), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
