package engineapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/whiffcast/whiffcast/internal/config"
	"github.com/whiffcast/whiffcast/internal/ctxlog"
	"github.com/whiffcast/whiffcast/internal/projection"
)

// projectionsPath is the service endpoint for single projections.
const projectionsPath = "/v1/projections"

// Client talks to the remote projection service. It is safe for reuse across
// requests, though the CLI only ever issues one per process.
type Client struct {
	http *resty.Client
}

// NewClient builds a Client from engine settings.
func NewClient(settings config.EngineSettings) (*Client, error) {
	if settings.BaseURL == "" {
		return nil, errors.New("engine base URL is not configured (set engine.base_url or WHIFFCAST_ENGINE_URL)")
	}

	httpClient := resty.New().
		SetBaseURL(settings.BaseURL).
		SetTimeout(settings.Timeout)
	if settings.APIKey != "" {
		httpClient.SetAuthToken(settings.APIKey)
	}

	return &Client{http: httpClient}, nil
}

// Close releases the client's idle connections.
func (c *Client) Close() error {
	return c.http.Close()
}

// projectionRequest is the wire shape of a projection request.
type projectionRequest struct {
	Pitcher  string `json:"pitcher"`
	Opponent string `json:"opponent"`
	Park     string `json:"park,omitempty"`
}

// projectionResponse is the wire shape of the service's reply. Optional
// fields stay pointers so an absent key is distinguishable from a zero.
type projectionResponse struct {
	Pitcher      string   `json:"pitcher"`
	Opponent     string   `json:"opponent"`
	Mean         float64  `json:"mean"`
	VegasLine    *float64 `json:"vegas_line"`
	Edge         *float64 `json:"edge"`
	ProbOver65   *float64 `json:"prob_over_6.5"`
	LineupSource string   `json:"lineup_source"`
}

// apiError is the service's error envelope.
type apiError struct {
	Message string `json:"message"`
}

// Project implements projection.Engine against the remote service.
func (c *Client) Project(ctx context.Context, req projection.Request) (*projection.Result, error) {
	requestID := uuid.NewString()
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Requesting projection from engine.",
		"request_id", requestID,
		"pitcher", req.Pitcher,
		"opponent", req.Opponent,
	)

	var (
		body   projectionResponse
		svcErr apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(projectionRequest{
			Pitcher:  req.Pitcher,
			Opponent: req.Opponent,
			Park:     req.Park,
		}).
		SetResult(&body).
		SetError(&svcErr).
		Post(projectionsPath)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		if svcErr.Message != "" {
			return nil, fmt.Errorf("projection service returned %s: %s", resp.Status(), svcErr.Message)
		}
		return nil, fmt.Errorf("projection service returned %s", resp.Status())
	}

	logger.Debug("Projection received.", "request_id", requestID, "mean", body.Mean)
	return &projection.Result{
		Pitcher:      body.Pitcher,
		Opponent:     body.Opponent,
		Mean:         body.Mean,
		VegasLine:    body.VegasLine,
		Edge:         body.Edge,
		ProbOver65:   body.ProbOver65,
		LineupSource: body.LineupSource,
	}, nil
}
