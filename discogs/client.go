package discogs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/xeptore/flaw/v8"
	"golang.org/x/time/rate"

	"github.com/xeptore/dcue/config"
	"github.com/xeptore/dcue/errutil"
	"github.com/xeptore/dcue/httputil"
	"github.com/xeptore/dcue/ratelimit"
)

var (
	ErrNotFound        = errors.New("release not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTooManyRequests = errors.New("too many requests")
)

// Fetcher retrieves the raw record of a reference.
type Fetcher interface {
	Fetch(ctx context.Context, ref Ref) ([]byte, error)
}

type Client struct {
	baseURL   string
	token     string
	userAgent string
	limiter   *rate.Limiter
	logger    zerolog.Logger
}

func NewClient(cfg config.Discogs, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
		limiter:   ratelimit.NewLimiter(cfg.RequestsPerMinute),
		logger:    logger,
	}
}

func newBackoff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = config.FetchRetryTimeout
	return backoff.WithContext(b, ctx)
}

// Fetch returns the raw JSON record of ref. Transport failures and server
// errors are retried with exponential backoff. Client errors are returned
// immediately.
func (c *Client) Fetch(ctx context.Context, ref Ref) ([]byte, error) {
	reqURL, err := url.JoinPath(c.baseURL, ref.Path())
	if nil != err {
		flawP := flaw.P{"err_debug_tree": errutil.Tree(err).FlawP(), "base_url": c.baseURL}
		return nil, flaw.From(fmt.Errorf("failed to join base URL with record path: %v", err)).Append(flawP)
	}

	logger := c.logger.With().Str("ref", ref.String()).Logger()
	op := func() ([]byte, error) { return c.fetch(ctx, reqURL) }
	notify := func(err error, wait time.Duration) {
		logger.Warn().Err(err).Dur("wait", wait).Msg("Fetching record failed. Retrying")
	}

	b, err := backoff.RetryNotifyWithData(op, newBackoff(ctx), notify)
	if nil != err {
		return nil, err
	}
	logger.Debug().Int("bytes", len(b)).Msg("Fetched record")
	return b, nil
}

func (c *Client) fetch(ctx context.Context, reqURL string) (b []byte, err error) {
	if err := c.limiter.Wait(ctx); nil != err {
		if errutil.IsContext(ctx) {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, backoff.Permanent(context.DeadlineExceeded)
	}

	flawP := flaw.P{"url": reqURL}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if nil != err {
		if errutil.IsContext(ctx) {
			return nil, backoff.Permanent(ctx.Err())
		}
		flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
		return nil, backoff.Permanent(flaw.From(fmt.Errorf("failed to create get record request: %v", err)).Append(flawP))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.discogs.v2.discogs+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Discogs token="+c.token)
	}

	client := http.Client{Timeout: config.ReleaseRequestTimeout} //nolint:exhaustruct
	resp, err := client.Do(req)
	if nil != err {
		if errutil.IsContext(ctx) {
			return nil, backoff.Permanent(ctx.Err())
		}
		flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
		return nil, flaw.From(fmt.Errorf("failed to send get record request: %v", err)).Append(flawP)
	}
	defer func() {
		if closeErr := resp.Body.Close(); nil != closeErr {
			if nil != err {
				c.logger.Warn().Err(closeErr).Str("url", reqURL).Msg("Failed to close get record response body")
				return
			}
			flawP["err_debug_tree"] = errutil.Tree(closeErr).FlawP()
			err = flaw.From(fmt.Errorf("failed to close get record response body: %v", closeErr)).Append(flawP)
		}
	}()
	flawP["response"] = errutil.HTTPResponseFlawPayload(resp)

	switch code := resp.StatusCode; {
	case code == http.StatusOK:
	case code == http.StatusNotFound:
		return nil, backoff.Permanent(ErrNotFound)
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return nil, backoff.Permanent(ErrUnauthorized)
	case code == http.StatusTooManyRequests:
		return nil, backoff.Permanent(ErrTooManyRequests)
	default:
		respBytes, err := httputil.ReadOptionalResponseBody(ctx, resp)
		if nil != err {
			return nil, backoff.Permanent(err)
		}
		flawP["response_body"] = string(respBytes)
		if msg, err := httputil.ErrorMessage(respBytes); nil == err && msg != "" {
			flawP["message"] = msg
		}
		err = flaw.From(fmt.Errorf("unexpected status code: %d", code)).Append(flawP)
		if code >= http.StatusInternalServerError {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}

	respBytes, err := httputil.ReadResponseBody(ctx, resp)
	if nil != err {
		return nil, backoff.Permanent(err)
	}
	if !gjson.ValidBytes(respBytes) {
		return nil, backoff.Permanent(fmt.Errorf("%w: response is not a valid JSON document", ErrInvalidRecord))
	}
	return respBytes, nil
}
