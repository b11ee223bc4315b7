package ingest

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"face-gateway/ent"
	"face-gateway/ent/biometricreading"
	"face-gateway/ent/person"
	"face-gateway/internal/esx"
	"face-gateway/internal/logx"
	"face-gateway/internal/mqx"
	"face-gateway/pkg"
)

var serviceLogger = logx.GetScope("ingest")

// Outcome is the decision returned to the appliance. Business rejections
// (unknown face, duplicate reading) are successful deliveries from the
// device's point of view: they always carry Code "200" with Auth "false".
// Only transport or storage failures surface as errors.
type Outcome struct {
	Code      string `json:"code"`
	Auth      string `json:"auth"`
	Message   string `json:"message"`
	UserID    string `json:"userId,omitempty"`
	ReadingID int    `json:"reading_id,omitempty"`
}

func rejected(msg string) *Outcome {
	return &Outcome{Code: "200", Auth: "false", Message: msg}
}

// Options carries the optional collaborators of the ingestion service.
// Publisher and Search may be nil; the service then skips those steps.
type Options struct {
	FacilityID  string
	StoreWindow time.Duration
	Publisher   mqx.Publisher
	Search      *esx.Client
	SearchIndex string
}

// Service turns raw appliance webhooks into persisted biometric readings.
type Service struct {
	client *ent.Client
	guard  *Guard
	opt    Options
	now    func() time.Time
}

func NewService(client *ent.Client, guard *Guard, opt Options) *Service {
	if opt.FacilityID == "" {
		opt.FacilityID = "1"
	}
	if opt.StoreWindow <= 0 {
		opt.StoreWindow = 5 * time.Minute
	}
	if opt.SearchIndex == "" {
		opt.SearchIndex = "readings"
	}
	return &Service{client: client, guard: guard, opt: opt, now: time.Now}
}

// Process runs the full ingestion decision for one raw webhook body:
// envelope extraction, event decoding, both deduplication tiers, subject
// lookup and the audit insert. Parse failures bubble up unchanged so the
// handler can answer 400; storage failures bubble up for a 500.
func (s *Service) Process(ctx context.Context, rawBody string) (*Outcome, error) {
	payload, err := ExtractJSON(rawBody)
	if err != nil {
		return nil, err
	}
	evt, err := ParseEvent(payload)
	if err != nil {
		return nil, err
	}

	userID, readerID := evt.Normalize()
	log := serviceLogger.Sugar().With("facial_id", userID, "reader", readerID)

	if !s.guard.MarkIfNew(userID, readerID) {
		log.Debug("suppressed by in-process dedup cache")
		return rejected("reading already processed recently"), nil
	}

	subject, err := s.client.Person.Query().
		Where(person.FacialID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		log.Info("recognition event for unregistered face")
		return rejected("face not registered"), nil
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	date := pkg.ReadingDate(now)
	clock := pkg.ReadingClock(now)

	dup, err := s.recentReadingExists(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if dup {
		log.Info("duplicate reading within durable window")
		return rejected("reading already recorded today"), nil
	}

	row, err := s.client.BiometricReading.Create().
		SetReadDate(date).
		SetReadTime(clock).
		SetFacialID(userID).
		SetSubjectName(subject.FullName).
		SetCourt(subject.Court).
		SetRegime(subject.Regime).
		SetCaseNumber(subject.CaseNumber).
		SetFacilityID(s.opt.FacilityID).
		SetSubject(subject).
		Save(ctx)
	if err != nil {
		return nil, err
	}

	s.fanOut(ctx, row, log)

	log.Infow("reading accepted", "reading_id", row.ID)
	return &Outcome{
		Code:      "200",
		Auth:      "true",
		Message:   "please retrieve your receipt",
		UserID:    userID,
		ReadingID: row.ID,
	}, nil
}

// recentReadingExists is the durable deduplication tier: an accepted reading
// for the same face within the window blocks another one, across restarts.
// read_time is a zero-padded "HH:mm:ss" string, so the comparison is lexical
// and the window is clipped at midnight rather than spanning two dates.
func (s *Service) recentReadingExists(ctx context.Context, facialID string, now time.Time) (bool, error) {
	start := now.Add(-s.opt.StoreWindow)
	startClock := pkg.ReadingClock(start)
	if pkg.ReadingDate(start) != pkg.ReadingDate(now) {
		startClock = "00:00:00"
	}
	return s.client.BiometricReading.Query().
		Where(
			biometricreading.FacialID(facialID),
			biometricreading.ReadDate(pkg.ReadingDate(now)),
			biometricreading.ReadTimeGTE(startClock),
			biometricreading.ReadTimeLTE(pkg.ReadingClock(now)),
		).
		Exist(ctx)
}

// fanOut pushes the accepted reading to the broker and the search index.
// Both are best-effort: the reading is already durable, so a dead broker or
// index only costs freshness, never the row.
func (s *Service) fanOut(ctx context.Context, row *ent.BiometricReading, log *zap.SugaredLogger) {
	doc := esx.ReadingDoc{
		ID:          row.ID,
		FacialID:    row.FacialID,
		SubjectName: row.SubjectName,
		Court:       row.Court,
		Regime:      row.Regime,
		ReadDate:    row.ReadDate,
		ReadTime:    row.ReadTime,
		FacilityID:  row.FacilityID,
	}
	if s.opt.Publisher != nil {
		body, _ := json.Marshal(doc)
		if err := s.opt.Publisher.Publish(ctx, "reading.accepted", body); err != nil {
			log.Warnw("publish reading.accepted failed", "err", err)
		}
	}
	if s.opt.Search != nil {
		if err := esx.IndexReading(ctx, s.opt.Search, s.opt.SearchIndex, doc); err != nil {
			log.Warnw("index reading failed", "err", err)
		}
	}
}
