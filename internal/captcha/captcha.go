package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// ErrFailed indicates the token did not verify.
var ErrFailed = errors.New("captcha verification failed")

// Verifier checks a client-supplied captcha token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// GoogleVerifier verifies tokens against the reCAPTCHA siteverify endpoint.
type GoogleVerifier struct {
	secret     string
	endpoint   string
	httpClient *http.Client
}

// NewGoogleVerifier constructs a verifier with the shared secret.
func NewGoogleVerifier(secret string) (*GoogleVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("RECAPTCHA_SECRET is required")
	}
	return &GoogleVerifier{
		secret:   secret,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the token to siteverify and returns ErrFailed unless the
// service reports success.
func (v *GoogleVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if strings.TrimSpace(token) == "" {
		return ErrFailed
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("captcha request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("captcha response read: %w", err)
	}

	var parsed verifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("captcha response parse: %w", err)
	}
	if !parsed.Success {
		return ErrFailed
	}
	return nil
}

// WithEndpoint overrides the siteverify URL; tests point it at a local server.
func (v *GoogleVerifier) WithEndpoint(endpoint string) *GoogleVerifier {
	v.endpoint = endpoint
	return v
}

// Disabled skips verification; used in dev when no secret is configured.
type Disabled struct{}

// Verify always succeeds.
func (Disabled) Verify(ctx context.Context, token, remoteIP string) error {
	_ = ctx
	_ = token
	_ = remoteIP
	return nil
}

var _ Verifier = (*GoogleVerifier)(nil)
var _ Verifier = Disabled{}
