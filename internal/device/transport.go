package device

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"face-gateway/internal/logx"
)

// Response is the appliance's reply to a single command request.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Transport is the capability the gateway talks through. The variant (real
// appliance vs simulated) is chosen once at startup from configuration, so
// command and ingestion logic never branches on the environment.
type Transport interface {
	Do(ctx context.Context, method, uri string, body []byte, contentType string, timeout time.Duration) (*Response, error)
}

// RealTransport performs Digest-authenticated HTTP requests against the
// physical appliance.
type RealTransport struct {
	baseURL string
	auth    *DigestAuth
	hc      *http.Client
	logger  *logx.Logger
}

func NewRealTransport(baseURL, username, password string) *RealTransport {
	base := strings.TrimRight(baseURL, "/")
	hc := &http.Client{}
	return &RealTransport{
		baseURL: base,
		auth:    NewDigestAuth(base, username, password, hc),
		hc:      hc,
		logger:  logx.GetScope("device.transport"),
	}
}

func (t *RealTransport) Do(ctx context.Context, method, uri string, body []byte, contentType string, timeout time.Duration) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	authHeader, err := t.auth.AuthorizationHeader(ctx, method, uri)
	if err != nil {
		return nil, err
	}

	var rd io.Reader
	if len(body) > 0 && method != http.MethodGet {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+uri, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("User-Agent", "FaceGateway/1.0")
	if rd != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := t.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("appliance response",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", res.StatusCode),
		zap.Int("body_len", len(b)),
	)
	return &Response{Status: res.StatusCode, ContentType: res.Header.Get("Content-Type"), Body: b}, nil
}

// placeholderPNG is a 1x1 transparent PNG, base64-encoded. Served by the
// simulated transport in place of a snapshot.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// SimulatedTransport stands in for the appliance when the gateway runs
// disconnected from real hardware. Every command succeeds with a canned
// response. Selection of this transport is an explicit configuration choice
// and is logged at startup; it is never inferred from a failure.
type SimulatedTransport struct {
	logger *logx.Logger
}

func NewSimulatedTransport() *SimulatedTransport {
	return &SimulatedTransport{logger: logx.GetScope("device.simulated")}
}

func (t *SimulatedTransport) Do(_ context.Context, method, uri string, _ []byte, _ string, _ time.Duration) (*Response, error) {
	t.logger.Info("simulated appliance call",
		zap.String("method", method),
		zap.String("uri", uri),
	)
	if strings.HasPrefix(uri, "/cgi-bin/snapshot.cgi") {
		return &Response{Status: http.StatusOK, ContentType: "image/png", Body: []byte(placeholderPNG)}, nil
	}
	return &Response{Status: http.StatusOK, ContentType: "text/plain", Body: []byte("OK\r\n")}, nil
}

// rawSnapshot reports whether the transport already returns base64 snapshot
// data. The simulated body is pre-encoded; real appliances send binary JPEG.
func rawSnapshot(t Transport) bool {
	_, ok := t.(*SimulatedTransport)
	return !ok
}
