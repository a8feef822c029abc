package meet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"jan-server/services/meet-api/internal/config"
	"jan-server/services/meet-api/internal/domain/recording"
	"jan-server/services/meet-api/internal/domain/room"
	"jan-server/services/meet-api/internal/infrastructure/metrics"
)

// APIKeyHeader carries the Meet API key on every request.
const APIKeyHeader = "X-API-KEY"

// maxErrorBody caps how much of a failed media response is read for its message.
const maxErrorBody = 64 << 10

// Client provides access to the OpenVidu Meet REST API.
type Client struct {
	httpClient *resty.Client
	timeout    time.Duration
	tracer     trace.Tracer
	log        zerolog.Logger
}

// NewClient creates a new Meet API client.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	l := log.With().Str("component", "meet-client").Logger()
	return &Client{
		httpClient: resty.New().
			SetBaseURL(cfg.MeetAPIURL()).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetHeader(APIKeyHeader, cfg.MeetAPIKey).
			SetLogger(restyLogger{log: l}),
		timeout: cfg.MeetRequestTimeout,
		tracer:  otel.Tracer("meet-client"),
		log:     l,
	}
}

// Do issues a JSON request against the Meet API. body is encoded when
// non-nil; the response is decoded into result when both are present.
// A 204 answer leaves result untouched.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resource := resourceOf(path)
	ctx, span := c.startSpan(ctx, method, resource)
	defer span.End()

	req := c.httpClient.R().SetContext(ctx)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		metrics.RecordUpstreamRequest(method, resource, "error", time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		c.log.Error().Err(err).Str("method", method).Str("resource", resource).Msg("request to OpenVidu Meet API failed")
		return &NetworkError{Op: method + " " + resource, Err: err}
	}

	status := resp.StatusCode()
	metrics.RecordUpstreamRequest(method, resource, strconv.Itoa(status), time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("http.status_code", status))

	if status == http.StatusNoContent {
		return nil
	}

	if !resp.IsSuccess() {
		apiErr := newAPIError(status, resp.Body())
		span.SetStatus(codes.Error, apiErr.Message)
		c.log.Error().
			Str("method", method).
			Str("resource", resource).
			Int("status", status).
			Str("message", apiErr.Message).
			Msg("error while performing request to OpenVidu Meet API")
		return apiErr
	}

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		span.RecordError(err)
		return &NetworkError{Op: "decode " + resource, Err: err}
	}
	return nil
}

// CreateRoom creates a room upstream.
func (c *Client) CreateRoom(ctx context.Context, req *room.CreateRoomRequest) (*room.Room, error) {
	var created room.Room
	if err := c.Do(ctx, http.MethodPost, "rooms", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteRoom deletes a room upstream by its external id.
func (c *Client) DeleteRoom(ctx context.Context, roomID string) error {
	return c.Do(ctx, http.MethodDelete, "rooms/"+url.PathEscape(roomID), nil, nil)
}

type listRoomsResponse struct {
	Rooms      []*room.Room `json:"rooms"`
	Pagination pagination   `json:"pagination"`
}

type pagination struct {
	IsTruncated   bool   `json:"isTruncated"`
	NextPageToken string `json:"nextPageToken"`
	MaxItems      int    `json:"maxItems"`
}

// ListRooms returns every room the upstream knows about, following pagination.
func (c *Client) ListRooms(ctx context.Context, pageSize int) ([]*room.Room, error) {
	var out []*room.Room
	token := ""
	for {
		q := url.Values{}
		q.Set("maxItems", strconv.Itoa(pageSize))
		if token != "" {
			q.Set("nextPageToken", token)
		}

		var page listRoomsResponse
		if err := c.Do(ctx, http.MethodGet, "rooms?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Rooms...)

		if !page.Pagination.IsTruncated || page.Pagination.NextPageToken == "" {
			return out, nil
		}
		token = page.Pagination.NextPageToken
	}
}

type listRecordingsResponse struct {
	Recordings []*recording.Recording `json:"recordings"`
	Pagination pagination             `json:"pagination"`
}

// ListRecordings returns up to maxItems recordings of one room.
func (c *Client) ListRecordings(ctx context.Context, roomID string, maxItems int) ([]*recording.Recording, error) {
	q := url.Values{}
	q.Set("maxItems", strconv.Itoa(maxItems))
	q.Set("roomId", roomID)

	var resp listRecordingsResponse
	if err := c.Do(ctx, http.MethodGet, "recordings?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Recordings == nil {
		return []*recording.Recording{}, nil
	}
	return resp.Recordings, nil
}

// DeleteRecording deletes a recording upstream.
func (c *Client) DeleteRecording(ctx context.Context, recordingID string) error {
	return c.Do(ctx, http.MethodDelete, "recordings/"+url.PathEscape(recordingID), nil, nil)
}

// GetRecordingURL returns the playback URL of a recording.
func (c *Client) GetRecordingURL(ctx context.Context, recordingID string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.Do(ctx, http.MethodGet, "recordings/"+url.PathEscape(recordingID)+"/url", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// OpenRecordingMedia opens the media stream of a recording. The request
// timeout does not apply; the stream lives as long as ctx.
func (c *Client) OpenRecordingMedia(ctx context.Context, recordingID, rangeHeader string) (*recording.Media, error) {
	const resource = "recordings/{id}/media"

	ctx, span := c.startSpan(ctx, http.MethodGet, resource)
	defer span.End()

	req := c.httpClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "*/*")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	if rangeHeader != "" {
		req.SetHeader("Range", rangeHeader)
	}

	start := time.Now()
	resp, err := req.Get("recordings/" + url.PathEscape(recordingID) + "/media")
	if err != nil {
		metrics.RecordUpstreamRequest(http.MethodGet, resource, "error", time.Since(start).Seconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, &NetworkError{Op: "GET " + resource, Err: err}
	}

	status := resp.StatusCode()
	metrics.RecordUpstreamRequest(http.MethodGet, resource, strconv.Itoa(status), time.Since(start).Seconds())
	span.SetAttributes(attribute.Int("http.status_code", status))

	raw := resp.RawBody()
	if !resp.IsSuccess() {
		defer raw.Close()
		body, _ := io.ReadAll(io.LimitReader(raw, maxErrorBody))
		apiErr := newAPIError(status, body)
		span.SetStatus(codes.Error, apiErr.Message)
		return nil, apiErr
	}

	return &recording.Media{
		StatusCode: status,
		Header:     resp.Header(),
		Body:       raw,
	}, nil
}

func (c *Client) startSpan(ctx context.Context, method, resource string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "meet "+method+" "+resource,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("meet.resource", resource),
		),
	)
}

// resourceOf collapses a request path into a low-cardinality label,
// e.g. "recordings/abc/url?x=1" becomes "recordings/{id}/url".
func resourceOf(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) > 1 {
		parts[1] = "{id}"
	}
	return strings.Join(parts, "/")
}

// restyLogger routes resty's internal messages into zerolog.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
