package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("notion api %d %s: %s", e.Status, e.Code, e.Message)
}

// do sends one JSON request, retrying rate limits and server errors with
// exponential backoff.
func (p *implPublisher) do(ctx context.Context, method, path string, payload, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = p.opts.MaxElapsed

	op := func() error {
		if err := p.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, method, p.opts.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+p.opts.APIKey)
		req.Header.Set("Notion-Version", p.opts.Version)
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= 300 {
			apiErr := &apiError{Status: resp.StatusCode}
			if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
				apiErr.Message = string(data)
			}
			apiErr.Status = resp.StatusCode
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				p.logger.Warn(ctx, "Notion %s %s returned %d, retrying", method, path, resp.StatusCode)
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}

		if target == nil {
			return nil
		}
		if err := json.Unmarshal(data, target); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	}

	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}
