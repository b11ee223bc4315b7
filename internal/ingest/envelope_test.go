package ingest

import (
	"errors"
	"testing"
)

const sampleEnvelope = "--myboundary\r\n" +
	"Content-Type: application/json\r\n" +
	"Content-Length: 80\r\n" +
	"\r\n" +
	"{\"Events\":[{\"Data\":{\"UserID\":\"7\",\"ReaderID\":\"r1\",\"ReadID\":\"rd9\"}}]}\r\n" +
	"--myboundary\r\n"

func TestExtractJSON_WellFormedEnvelope(t *testing.T) {
	payload, err := ExtractJSON(sampleEnvelope)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	evt, err := ParseEvent(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if evt.UserID != "7" || evt.ReaderID != "r1" || evt.ReadID != "rd9" {
		t.Fatalf("event: %+v", evt)
	}
}

func TestExtractJSON_NoTrailingNewlineAfterClosingBoundary(t *testing.T) {
	body := "--myboundary\r\nh1\r\nh2\r\nh3\r\n" +
		`{"Events":[{"Data":{"UserID":"42","ReaderID":"1"}}]}` + "\r\n--myboundary"
	payload, err := ExtractJSON(body)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if payload != `{"Events":[{"Data":{"UserID":"42","ReaderID":"1"}}]}` {
		t.Fatalf("payload=%q", payload)
	}
}

func TestExtractJSON_MixedLineEndings(t *testing.T) {
	body := "--myboundary\nh1\nh2\n\n{\"Events\":[{\"Data\":{\"UserID\":\"1\"}}]}\n--myboundary\n"
	payload, err := ExtractJSON(body)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if _, err := ParseEvent(payload); err != nil {
		t.Fatalf("parse: %v", err)
	}
}

func TestExtractJSON_PayloadSplitAcrossLines(t *testing.T) {
	body := "--myboundary\r\nh1\r\nh2\r\nh3\r\n" +
		"  {\"Events\":[{\"Data\":  \r\n" +
		"  {\"UserID\":\"5\"}}]}  \r\n" +
		"--myboundary\r\n"
	payload, err := ExtractJSON(body)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	evt, err := ParseEvent(payload)
	if err != nil {
		t.Fatalf("accumulated payload should decode: %v", err)
	}
	if evt.UserID != "5" {
		t.Fatalf("event: %+v", evt)
	}
}

func TestExtractJSON_NoBoundary(t *testing.T) {
	_, err := ExtractJSON(`{"Events":[]}`)
	if !errors.Is(err, ErrNoPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}
}

func TestExtractJSON_EmptyBody(t *testing.T) {
	_, err := ExtractJSON("")
	if !errors.Is(err, ErrNoPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}
}

func TestParseEvent_MalformedJSONIsInvalid(t *testing.T) {
	_, err := ParseEvent("{not json")
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

func TestParseEvent_EmptyEventsIsInvalid(t *testing.T) {
	_, err := ParseEvent(`{"Events":[]}`)
	if !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

func TestNormalize_BlankUserIDBecomesSentinel(t *testing.T) {
	evt := &RecognitionEvent{UserID: "  ", ReaderID: "r1", ReadID: "rd9"}
	userID, readerID := evt.Normalize()
	if userID != SentinelUserID {
		t.Fatalf("userID=%q", userID)
	}
	if readerID != "r1" {
		t.Fatalf("sentinel events must use ReaderID, got %q", readerID)
	}
}

func TestNormalize_PrefersReadID(t *testing.T) {
	evt := &RecognitionEvent{UserID: "7", ReaderID: "r1", ReadID: "rd9"}
	userID, readerID := evt.Normalize()
	if userID != "7" || readerID != "rd9" {
		t.Fatalf("got %q %q", userID, readerID)
	}

	evt.ReadID = ""
	if _, readerID = evt.Normalize(); readerID != "r1" {
		t.Fatalf("fallback readerID=%q", readerID)
	}
}
