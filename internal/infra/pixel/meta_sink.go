// Package pixel forwards conversion events to the Meta Conversions API.
package pixel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const requestTimeout = 10 * time.Second

// defaultEndpoint is the Conversions API base; the pixel ID is appended per request.
const defaultEndpoint = "https://graph.facebook.com/v18.0"

// metaSink implements service.ConversionSink against the Conversions API.
type metaSink struct {
	pixelID     string
	accessToken string
	endpoint    string
	httpClient  *http.Client
	logger      *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the conversion sink. An unset pixel ID disables forwarding.
func New(params Params) service.ConversionSink {
	cfg := params.Config.Pixel
	if cfg == nil || cfg.PixelID == "" {
		params.Logger.Info("conversion pixel not configured, events will be discarded")

		return &noopSink{}
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &metaSink{
		pixelID:     cfg.PixelID,
		accessToken: cfg.AccessToken,
		endpoint:    endpoint,
		httpClient:  &http.Client{Timeout: requestTimeout},
		logger:      params.Logger,
	}
}

// conversionPayload is the Conversions API request body.
type conversionPayload struct {
	Data []conversionEvent `json:"data"`
}

type conversionEvent struct {
	EventName    string         `json:"event_name"`
	EventTime    int64          `json:"event_time"`
	ActionSource string         `json:"action_source"`
	CustomData   map[string]any `json:"custom_data,omitempty"`
}

// Track sends one conversion event. Errors are returned for the caller to
// log; tracking never participates in the caller's transaction.
func (s *metaSink) Track(ctx context.Context, event string, customData map[string]any) error {
	payload := conversionPayload{
		Data: []conversionEvent{{
			EventName:    event,
			EventTime:    time.Now().Unix(),
			ActionSource: "website",
			CustomData:   customData,
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	target := fmt.Sprintf("%s/%s/events?access_token=%s", s.endpoint, s.pixelID, url.QueryEscape(s.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("conversions API returned status %d: %s", resp.StatusCode, snippet)
	}

	s.logger.Debug("conversion event forwarded",
		slog.String("event", event),
	)

	return nil
}

// noopSink discards conversion events when no pixel is configured.
type noopSink struct{}

func (*noopSink) Track(context.Context, string, map[string]any) error {
	return nil
}
