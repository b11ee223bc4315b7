package device

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func refMD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestBuildAuthorization_QopAuth(t *testing.T) {
	ch := &Challenge{
		Realm:     "Login to device",
		Nonce:     "abcdef0123456789",
		Qop:       "auth",
		Algorithm: "MD5",
	}
	header := buildAuthorization("admin", "secret", ch, http.MethodGet, "/x", "abc", "00000001")

	// RFC 2617 reference computation with all inputs fixed.
	ha1 := refMD5("admin:Login to device:secret")
	ha2 := refMD5("GET:/x")
	want := refMD5(ha1 + ":abcdef0123456789:00000001:abc:auth:" + ha2)

	if !strings.Contains(header, fmt.Sprintf("response=%q", want)) {
		t.Fatalf("header missing expected response hash %s:\n%s", want, header)
	}
	for _, part := range []string{
		`username="admin"`,
		`realm="Login to device"`,
		`nonce="abcdef0123456789"`,
		`uri="/x"`,
		`algorithm="MD5"`,
		`qop="auth"`,
		`nc="00000001"`,
		`cnonce="abc"`,
	} {
		if !strings.Contains(header, part) {
			t.Fatalf("header missing %s:\n%s", part, header)
		}
	}
}

func TestBuildAuthorization_LegacyNoQop(t *testing.T) {
	ch := &Challenge{Realm: "r", Nonce: "n"}
	header := buildAuthorization("u", "p", ch, http.MethodPost, "/y", "zz", "00000001")

	ha1 := refMD5("u:r:p")
	ha2 := refMD5("POST:/y")
	want := refMD5(ha1 + ":n:" + ha2)

	if !strings.Contains(header, fmt.Sprintf("response=%q", want)) {
		t.Fatalf("legacy response hash mismatch:\n%s", header)
	}
	if strings.Contains(header, "qop=") || strings.Contains(header, "cnonce=") {
		t.Fatalf("legacy header must omit qop/cnonce:\n%s", header)
	}
}

func TestBuildAuthorization_IncludesOpaque(t *testing.T) {
	ch := &Challenge{Realm: "r", Nonce: "n", Opaque: "op", Qop: "auth"}
	header := buildAuthorization("u", "p", ch, http.MethodGet, "/", "c", "00000001")
	if !strings.Contains(header, `opaque="op"`) {
		t.Fatalf("opaque missing:\n%s", header)
	}
}

func TestParseChallenge(t *testing.T) {
	header := `Digest realm="Login to 4f05", qop="auth", nonce="1234abcd", opaque="5ccc", algorithm="MD5"`
	ch := parseChallenge(header)
	if ch.Realm != "Login to 4f05" || ch.Nonce != "1234abcd" || ch.Opaque != "5ccc" || ch.Qop != "auth" || ch.Algorithm != "MD5" {
		t.Fatalf("parsed challenge: %+v", ch)
	}
}

func TestParseChallenge_UnquotedQop(t *testing.T) {
	ch := parseChallenge(`Digest realm="r", nonce="n", qop=auth`)
	if ch.Qop != "auth" {
		t.Fatalf("qop=%q", ch.Qop)
	}
}

func TestDigestAuth_ProbeCachesChallenge(t *testing.T) {
	probes := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes++
		w.Header().Set("WWW-Authenticate", `Digest realm="dev", nonce="xyz", qop="auth", algorithm="MD5"`)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	auth := NewDigestAuth(srv.URL, "admin", "pw", srv.Client())
	ctx := context.Background()
	h1, err := auth.AuthorizationHeader(ctx, http.MethodGet, "/a")
	if err != nil {
		t.Fatalf("first header: %v", err)
	}
	h2, err := auth.AuthorizationHeader(ctx, http.MethodGet, "/b")
	if err != nil {
		t.Fatalf("second header: %v", err)
	}
	if probes != 1 {
		t.Fatalf("challenge should be fetched once, got %d probes", probes)
	}
	if !strings.Contains(h1, `realm="dev"`) || !strings.Contains(h2, `realm="dev"`) {
		t.Fatalf("headers missing probed realm:\n%s\n%s", h1, h2)
	}
}

func TestDigestAuth_FallbackOnProbeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // probe will fail with a connection error

	auth := NewDigestAuth(url, "admin", "pw", &http.Client{})
	header, err := auth.AuthorizationHeader(context.Background(), http.MethodGet, "/a")
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if !strings.Contains(header, fallbackChallenge.Realm) {
		t.Fatalf("expected fallback realm in header:\n%s", header)
	}
	if !strings.Contains(header, `qop="auth"`) {
		t.Fatalf("expected fallback qop in header:\n%s", header)
	}
}

func TestGenerateCNonce_Shape(t *testing.T) {
	c1, err := generateCNonce()
	if err != nil {
		t.Fatal(err)
	}
	c2, err := generateCNonce()
	if err != nil {
		t.Fatal(err)
	}
	if len(c1) != 8 || len(c2) != 8 {
		t.Fatalf("cnonce length: %q %q", c1, c2)
	}
	if c1 == c2 {
		t.Fatalf("cnonce should differ across calls: %q", c1)
	}
}
