package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// The appliance pushes every recognition event in a multipart body with a
// fixed boundary literal. It does not send a boundary parameter on the
// Content-Type header, so the literal is hard-wired here on purpose.
const boundaryMarker = "--myboundary"

// Number of part-header lines between the boundary and the JSON payload.
const partHeaderLines = 3

var (
	// ErrNoPayload means no boundary was found or the part body was empty.
	ErrNoPayload = errors.New("no payload in event envelope")
	// ErrInvalidEvent means a payload was present but did not decode into a
	// usable recognition event.
	ErrInvalidEvent = errors.New("invalid recognition event")
)

var lineBreakRe = regexp.MustCompile(`\r\n|\n|\r`)

// ExtractJSON pulls the JSON payload out of the appliance's multipart
// envelope: scan to the first boundary, skip the part's three header lines,
// accumulate trimmed lines until the closing boundary.
func ExtractJSON(rawBody string) (string, error) {
	lines := lineBreakRe.Split(rawBody, -1)

	var buf strings.Builder
	writing := false
	for i := 0; i < len(lines)-1; i++ {
		if strings.HasPrefix(lines[i], boundaryMarker) {
			if !writing {
				writing = true
				i += partHeaderLines
				continue
			}
			break
		}
		if writing {
			buf.WriteString(strings.TrimSpace(lines[i]))
		}
	}

	if buf.Len() == 0 {
		return "", ErrNoPayload
	}
	return buf.String(), nil
}

// RecognitionEvent is the inbound appliance event after envelope decoding.
// It drives the ingestion decision only and is never persisted verbatim.
type RecognitionEvent struct {
	UserID   string
	ReaderID string
	ReadID   string
}

type eventEnvelope struct {
	Events []struct {
		Data struct {
			UserID   string `json:"UserID"`
			ReaderID string `json:"ReaderID"`
			ReadID   string `json:"ReadID"`
		} `json:"Data"`
	} `json:"Events"`
}

// ParseEvent decodes the first event out of the extracted JSON payload.
// A present-but-malformed payload is a parse error, not "no payload".
func ParseEvent(jsonStr string) (*RecognitionEvent, error) {
	var env eventEnvelope
	if err := json.Unmarshal([]byte(jsonStr), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if len(env.Events) == 0 {
		return nil, ErrInvalidEvent
	}
	d := env.Events[0].Data
	return &RecognitionEvent{UserID: d.UserID, ReaderID: d.ReaderID, ReadID: d.ReadID}, nil
}

// SentinelUserID marks events whose UserID was blank (face seen but not
// matched by the appliance itself).
const SentinelUserID = "-1"

// Normalize applies the identity rules: a blank UserID becomes the sentinel
// and the reader comes from ReaderID; otherwise ReadID is preferred with
// ReaderID as fallback.
func (e *RecognitionEvent) Normalize() (userID, readerID string) {
	userID = strings.TrimSpace(e.UserID)
	if userID == "" {
		return SentinelUserID, e.ReaderID
	}
	if e.ReadID != "" {
		return userID, e.ReadID
	}
	return userID, e.ReaderID
}
