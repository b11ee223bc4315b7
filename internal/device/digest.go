package device

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"face-gateway/internal/logx"
)

// Challenge holds the parameters of a WWW-Authenticate Digest challenge.
type Challenge struct {
	Realm     string
	Nonce     string
	Opaque    string
	Qop       string
	Algorithm string
}

// Known-good parameters for the appliance family this gateway targets.
// Used when the discovery probe itself is blocked, so a probe failure
// degrades to a best-effort header instead of failing the caller.
var fallbackChallenge = Challenge{
	Realm:     "Login to 4f0570c77532c7342a874d0510f48276",
	Qop:       "auth",
	Algorithm: "MD5",
}

const (
	probePath    = "/cgi-bin/configManager.cgi?action=getConfig&name=SystemInfo"
	probeTimeout = 5 * time.Second

	// The appliance tolerates a constant nonce count; a stricter RFC 2617
	// implementation could reject the replayed value. Kept as-is for
	// compatibility with the deployed hardware.
	nonceCount = "00000001"
)

// DigestAuth computes RFC 2617 Digest Authorization headers for appliance
// requests. The challenge is fetched once per client lifetime by provoking a
// 401 on a probe endpoint and is never refreshed.
type DigestAuth struct {
	baseURL  string
	username string
	password string
	hc       *http.Client
	logger   *logx.Logger

	mu        sync.Mutex
	challenge *Challenge
}

func NewDigestAuth(baseURL, username, password string, hc *http.Client) *DigestAuth {
	if hc == nil {
		hc = &http.Client{}
	}
	return &DigestAuth{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		hc:       hc,
		logger:   logx.GetScope("device.digest"),
	}
}

// AuthorizationHeader returns the Digest header value for one request.
// A fresh cnonce is generated per call; the server challenge is cached.
func (d *DigestAuth) AuthorizationHeader(ctx context.Context, method, uri string) (string, error) {
	ch := d.getChallenge(ctx)
	cnonce, err := generateCNonce()
	if err != nil {
		return "", err
	}
	return buildAuthorization(d.username, d.password, ch, method, uri, cnonce, nonceCount), nil
}

func (d *DigestAuth) getChallenge(ctx context.Context) *Challenge {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.challenge != nil {
		return d.challenge
	}

	ch, err := d.probeChallenge(ctx)
	if err != nil {
		d.logger.Warn("challenge probe failed; using fallback parameters",
			zap.String("base_url", d.baseURL),
			zap.Error(err),
		)
		fb := fallbackChallenge
		d.challenge = &fb
		return d.challenge
	}
	d.challenge = ch
	return d.challenge
}

func (d *DigestAuth) probeChallenge(ctx context.Context) (*Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+probePath, nil)
	if err != nil {
		return nil, err
	}
	res, err := d.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	header := res.Header.Get("WWW-Authenticate")
	if header == "" {
		return nil, fmt.Errorf("no WWW-Authenticate header in probe response (status %d)", res.StatusCode)
	}
	return parseChallenge(header), nil
}

var challengeParamRe = regexp.MustCompile(`(\w+)="([^"]+)"`)

// parseChallenge extracts key="value" pairs from a WWW-Authenticate header.
func parseChallenge(header string) *Challenge {
	params := map[string]string{}
	for _, m := range challengeParamRe.FindAllStringSubmatch(header, -1) {
		params[strings.ToLower(m[1])] = m[2]
	}
	ch := &Challenge{
		Realm:     params["realm"],
		Nonce:     params["nonce"],
		Opaque:    params["opaque"],
		Qop:       params["qop"],
		Algorithm: params["algorithm"],
	}
	if ch.Qop == "" {
		// qop may appear unquoted
		if i := strings.Index(strings.ToLower(header), "qop="); i >= 0 {
			rest := header[i+len("qop="):]
			rest = strings.Trim(strings.SplitN(rest, ",", 2)[0], `" `)
			ch.Qop = rest
		}
	}
	return ch
}

// buildAuthorization assembles the Digest header per RFC 2617:
//
//	HA1 = MD5(username:realm:password)
//	HA2 = MD5(method:uri)
//	response = MD5(HA1:nonce:nc:cnonce:qop:HA2)   when qop == "auth"
//	response = MD5(HA1:nonce:HA2)                 otherwise
func buildAuthorization(username, password string, ch *Challenge, method, uri, cnonce, nc string) string {
	realm := ch.Realm
	if realm == "" {
		realm = fallbackChallenge.Realm
	}
	nonce := ch.Nonce
	if nonce == "" {
		nonce = "default_nonce"
	}
	qop := ch.Qop
	algorithm := ch.Algorithm
	if algorithm == "" {
		algorithm = "MD5"
	}

	ha1 := md5hex(username + ":" + realm + ":" + password)
	ha2 := md5hex(method + ":" + uri)

	var response string
	if qop == "auth" {
		response = md5hex(ha1 + ":" + nonce + ":" + nc + ":" + cnonce + ":" + qop + ":" + ha2)
	} else {
		response = md5hex(ha1 + ":" + nonce + ":" + ha2)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Digest username="%s", realm="%s", nonce="%s", uri="%s", response="%s", algorithm="%s"`,
		username, realm, nonce, uri, response, algorithm)
	if ch.Opaque != "" {
		fmt.Fprintf(&b, `, opaque="%s"`, ch.Opaque)
	}
	if qop != "" {
		fmt.Fprintf(&b, `, qop="%s", nc="%s", cnonce="%s"`, qop, nc, cnonce)
	}
	return b.String()
}

// generateCNonce returns the first 8 hex chars of the MD5 of a random value.
func generateCNonce() (string, error) {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return "", err
	}
	return md5hex(string(seed[:]))[:8], nil
}

func md5hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
