package ebay

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dimedrop/card-price-tracker/internal/metrics"
)

const (
	defaultTokenURL = "https://api.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential

	// refreshBuffer keeps a token from expiring mid-flight: a token with
	// less than five minutes of life left is treated as already expired.
	refreshBuffer = 300 * time.Second

	// defaultTokenTTL applies when the token response omits expires_in.
	defaultTokenTTL = 7200 * time.Second

	maxTokenAttempts = 3
)

// Sentinel errors for the OAuth flow.
var (
	// ErrMissingCredentials is returned at construction when the app ID or
	// cert ID is empty.
	ErrMissingCredentials = errors.New("ebay credentials (app ID and cert ID) are required")

	// ErrInvalidCredentials is returned on HTTP 401 from the token endpoint.
	// It is never retried; the credentials have to be fixed.
	ErrInvalidCredentials = errors.New("invalid ebay credentials")
)

// OAuthTokenProvider implements TokenProvider using the eBay OAuth2
// client credentials flow. It caches the token in memory only and refreshes
// when expired or within five minutes of expiry. Transient failures
// (timeouts, connection errors, 5xx) are retried up to three attempts with
// exponential backoff; a 401 fails immediately. Thread-safe via mutex.
type OAuthTokenProvider struct {
	appID       string
	certID      string
	tokenURL    string
	client      *http.Client
	scopes      string
	backoffBase time.Duration

	mu      sync.Mutex
	token   string
	expiry  time.Time
	nowFunc func() time.Time // for testing
}

// OAuthOption configures the OAuthTokenProvider.
type OAuthOption func(*OAuthTokenProvider)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.tokenURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.nowFunc = f
	}
}

// WithBackoffBase overrides the first backoff delay (default 1s; doubles
// per attempt). Used by tests to keep retries fast.
func WithBackoffBase(d time.Duration) OAuthOption {
	return func(p *OAuthTokenProvider) {
		p.backoffBase = d
	}
}

// NewOAuthTokenProvider creates a new eBay OAuth2 token provider.
// Both credentials are required; tokens are held in memory only.
func NewOAuthTokenProvider(
	appID, certID string,
	opts ...OAuthOption,
) (*OAuthTokenProvider, error) {
	if appID == "" || certID == "" {
		return nil, ErrMissingCredentials
	}

	p := &OAuthTokenProvider{
		appID:       appID,
		certID:      certID,
		tokenURL:    defaultTokenURL,
		client:      &http.Client{Timeout: 10 * time.Second},
		scopes:      "https://api.ebay.com/oauth/api_scope",
		backoffBase: time.Second,
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Token returns a valid OAuth2 access token, refreshing if necessary.
func (p *OAuthTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tokenValidLocked() {
		return p.token, nil
	}

	return p.refreshLocked(ctx)
}

// Refresh forces a new token fetch, discarding any cached token.
func (p *OAuthTokenProvider) Refresh(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refreshLocked(ctx)
}

// Invalidate drops the cached token so the next Token call refreshes.
func (p *OAuthTokenProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	p.expiry = time.Time{}
}

func (p *OAuthTokenProvider) tokenValidLocked() bool {
	return p.token != "" && p.nowFunc().Add(refreshBuffer).Before(p.expiry)
}

func (p *OAuthTokenProvider) refreshLocked(ctx context.Context) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		token, retryable, err := p.exchange(ctx)
		if err == nil {
			metrics.EbayTokenRefreshes.Inc()
			return token, nil
		}
		if !retryable {
			return "", err
		}

		lastErr = err
		if attempt < maxTokenAttempts {
			if serr := sleepCtx(ctx, p.backoffBase<<(attempt-1)); serr != nil {
				return "", serr
			}
		}
	}

	return "", fmt.Errorf("token request failed after %d attempts: %w", maxTokenAttempts, lastErr)
}

// exchange performs a single client-credentials exchange. The second return
// value reports whether the failure is worth retrying.
func (p *OAuthTokenProvider) exchange(ctx context.Context) (string, bool, error) {
	form := url.Values{
		"grant_type": {"client_credentials"},
		"scope":      {p.scopes},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", false, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	creds := base64.StdEncoding.EncodeToString(
		[]byte(p.appID + ":" + p.certID),
	)
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := p.client.Do(req)
	if err != nil {
		// Timeouts and connection errors are transient.
		return "", true, fmt.Errorf("executing token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("reading token response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to parsing below.
	case resp.StatusCode == http.StatusUnauthorized:
		return "", false, fmt.Errorf(
			"%w (status 401): check EBAY_APP_ID and EBAY_CERT_ID: %s",
			ErrInvalidCredentials, string(body),
		)
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", true, fmt.Errorf(
			"token endpoint unavailable (status %d)", resp.StatusCode,
		)
	default:
		var errResp tokenErrorResponse
		_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing
		return "", false, fmt.Errorf(
			"token request failed (status %d): %s - %s",
			resp.StatusCode,
			errResp.Error,
			errResp.ErrorDescription,
		)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", false, fmt.Errorf("parsing token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", false, fmt.Errorf("token response missing access_token")
	}

	ttl := defaultTokenTTL
	if tokenResp.ExpiresIn > 0 {
		ttl = time.Duration(tokenResp.ExpiresIn) * time.Second
	}

	p.token = tokenResp.AccessToken
	p.expiry = p.nowFunc().Add(ttl)

	return p.token, false, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
