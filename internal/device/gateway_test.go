package device

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// fakeAppliance mimics the CGI surface of the access-control device: every
// request without an Authorization header gets a Digest challenge.
type fakeAppliance struct {
	t        *testing.T
	mux      *http.ServeMux
	requests []string
}

func newFakeAppliance(t *testing.T) (*fakeAppliance, *httptest.Server) {
	t.Helper()
	fa := &fakeAppliance{t: t, mux: http.NewServeMux()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.Header().Set("WWW-Authenticate", `Digest realm="Login to test", nonce="n0", qop="auth", algorithm="MD5"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fa.requests = append(fa.requests, r.Method+" "+r.URL.RequestURI())
		fa.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return fa, srv
}

func newTestGateway(t *testing.T, srv *httptest.Server) *Gateway {
	t.Helper()
	return NewGateway(NewRealTransport(srv.URL, "admin", "pw"))
}

func TestGateway_UnlockLock(t *testing.T) {
	fa, srv := newFakeAppliance(t)
	fa.mux.HandleFunc("/cgi-bin/configManager.cgi", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Digest ") {
			t.Errorf("expected Digest authorization, got %q", r.Header.Get("Authorization"))
		}
		_, _ = io.WriteString(w, "OK\r\n")
	})

	gw := newTestGateway(t, srv)
	out, err := gw.Unlock(context.Background())
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if out != "OK\r\n" {
		t.Fatalf("unlock response=%q", out)
	}
	if _, err := gw.Lock(context.Background()); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if len(fa.requests) != 2 {
		t.Fatalf("requests=%v", fa.requests)
	}
	if !strings.Contains(fa.requests[0], "Method=32") || !strings.Contains(fa.requests[1], "Method=0") {
		t.Fatalf("relay params wrong: %v", fa.requests)
	}
}

func TestGateway_SnapshotWrapsDataURL(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	fa, srv := newFakeAppliance(t)
	fa.mux.HandleFunc("/cgi-bin/snapshot.cgi", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(jpeg)
	})

	gw := newTestGateway(t, srv)
	out, err := gw.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	want := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpeg)
	if out != want {
		t.Fatalf("snapshot data url mismatch:\n got %s\nwant %s", out, want)
	}
}

func TestGateway_UpsertUserBatch(t *testing.T) {
	var received struct {
		UserList []UserRecord
	}
	fa, srv := newFakeAppliance(t)
	fa.mux.HandleFunc("/cgi-bin/AccessUser.cgi", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type=%q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = io.WriteString(w, "OK\r\n")
	})

	gw := newTestGateway(t, srv)
	users := []UserRecord{{UserID: "7", UserName: "Alexandre", Password: "123", ValidFrom: "2020-01-01 00:00:00", ValidTo: "2050-12-22 09:38:11"}}
	if _, err := gw.UpsertUserBatch(context.Background(), users); err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(received.UserList) != 1 || received.UserList[0].UserID != "7" {
		t.Fatalf("appliance received %+v", received)
	}
}

func TestGateway_UpsertUserPhoto_InsertThenUpdate(t *testing.T) {
	fa, srv := newFakeAppliance(t)
	fa.mux.HandleFunc("/cgi-bin/AccessFace.cgi", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			FaceList []struct {
				UserID    string
				PhotoData []string
			}
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		if len(body.FaceList) != 1 || body.FaceList[0].PhotoData[0] != "QUJD" {
			t.Errorf("photo payload: %+v", body)
		}
		switch r.URL.Query().Get("action") {
		case "insertMulti":
			_, _ = io.WriteString(w, "INS")
		case "updateMulti":
			_, _ = io.WriteString(w, "UPD")
		default:
			t.Errorf("unexpected action %q", r.URL.Query().Get("action"))
		}
	})

	gw := newTestGateway(t, srv)
	out, err := gw.UpsertUserPhoto(context.Background(), "9", "data:image/jpeg;base64,QUJD")
	if err != nil {
		t.Fatalf("photo: %v", err)
	}
	if out != "INSUPD" {
		t.Fatalf("concatenated response=%q", out)
	}
}

func TestGateway_UpdateFaceInfo_FallsBackToForm(t *testing.T) {
	var firstCT, secondCT, secondBody string
	calls := 0
	fa, srv := newFakeAppliance(t)
	fa.mux.HandleFunc("/cgi-bin/FaceInfoManager.cgi", func(w http.ResponseWriter, r *http.Request) {
		calls++
		b, _ := io.ReadAll(r.Body)
		if calls == 1 {
			firstCT = r.Header.Get("Content-Type")
			http.Error(w, "bad payload", http.StatusBadRequest)
			return
		}
		secondCT = r.Header.Get("Content-Type")
		secondBody = string(b)
		_, _ = io.WriteString(w, "OK\r\n")
	})

	gw := newTestGateway(t, srv)
	out, degraded, err := gw.UpdateFaceInfo(context.Background(), "6", "Alexandre16", []string{"QUJD"})
	if err != nil {
		t.Fatalf("face info: %v", err)
	}
	if !degraded {
		t.Fatal("fallback path must be reported as degraded")
	}
	if out != "OK\r\n" {
		t.Fatalf("response=%q", out)
	}
	if firstCT != "application/json" || secondCT != "application/x-www-form-urlencoded" {
		t.Fatalf("content types: first=%q second=%q", firstCT, secondCT)
	}
	if !strings.Contains(secondBody, "UserID=6") || strings.Contains(secondBody, "PhotoData") {
		t.Fatalf("degraded body should carry only UserID/UserName: %q", secondBody)
	}
}

func TestGateway_UpdateFaceInfo_FullSuccessNotDegraded(t *testing.T) {
	fa, srv := newFakeAppliance(t)
	fa.mux.HandleFunc("/cgi-bin/FaceInfoManager.cgi", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "OK\r\n")
	})
	gw := newTestGateway(t, srv)
	_, degraded, err := gw.UpdateFaceInfo(context.Background(), "6", "A", nil)
	if err != nil {
		t.Fatalf("face info: %v", err)
	}
	if degraded {
		t.Fatal("full success wrongly flagged degraded")
	}
}

func TestGateway_ErrorClassification(t *testing.T) {
	fa, srv := newFakeAppliance(t)
	fa.mux.HandleFunc("/cgi-bin/configManager.cgi", func(w http.ResponseWriter, r *http.Request) {
		// Authenticated request still refused: credentials are wrong.
		http.Error(w, "denied", http.StatusUnauthorized)
	})
	gw := newTestGateway(t, srv)
	_, err := gw.Unlock(context.Background())
	var derr *Error
	if !errors.As(err, &derr) || derr.Kind != KindAuthFailed {
		t.Fatalf("expected auth failure, got %v", err)
	}
}

func TestGateway_UnreachableDevice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	gw := NewGateway(NewRealTransport(url, "admin", "pw"))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := gw.Unlock(ctx)
	var derr *Error
	if !errors.As(err, &derr) || derr.Kind != KindUnreachable {
		t.Fatalf("expected unreachable, got %v", err)
	}
	if gw.CheckStatus(ctx) {
		t.Fatal("liveness check should fail against a closed server")
	}
}

func TestSimulatedTransport_CannedResponses(t *testing.T) {
	gw := NewGateway(NewSimulatedTransport())
	ctx := context.Background()

	out, err := gw.Unlock(ctx)
	if err != nil || out != "OK\r\n" {
		t.Fatalf("simulated unlock: %q %v", out, err)
	}
	snap, err := gw.Snapshot(ctx)
	if err != nil {
		t.Fatalf("simulated snapshot: %v", err)
	}
	if !strings.HasPrefix(snap, "data:image/png;base64,") {
		t.Fatalf("simulated snapshot should be a png data url: %s", snap[:40])
	}
	if !gw.CheckStatus(ctx) {
		t.Fatal("simulated device must always report online")
	}
}
