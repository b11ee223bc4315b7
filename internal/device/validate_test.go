package device

import (
	"errors"
	"strings"
	"testing"
)

func validUser(id string) UserRecord {
	return UserRecord{
		UserID:    id,
		UserName:  "Alexandre",
		Password:  "123456",
		ValidFrom: "2020-01-01 00:00:00",
		ValidTo:   "2050-12-22 09:38:11",
	}
}

func TestValidateUserBatch_OK(t *testing.T) {
	if err := ValidateUserBatch([]UserRecord{validUser("1"), validUser("2")}); err != nil {
		t.Fatalf("valid batch rejected: %v", err)
	}
}

func TestValidateUserBatch_EmptyBatch(t *testing.T) {
	err := ValidateUserBatch(nil)
	if err == nil {
		t.Fatal("empty batch must be rejected")
	}
}

func TestValidateUserBatch_AccumulatesViolations(t *testing.T) {
	bad := UserRecord{UserID: "abc", UserName: strings.Repeat("x", 51), ValidFrom: "2020-01-01", ValidTo: "nope"}
	err := ValidateUserBatch([]UserRecord{bad})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 5 {
		t.Fatalf("expected 5 violations (id, name, password, two dates), got %d: %v", len(verr.Violations), verr.Violations)
	}
}

func TestValidateUserBatch_ImpossibleCalendarDate(t *testing.T) {
	u := validUser("3")
	u.ValidFrom = "2099-13-40 00:00:00"
	err := ValidateUserBatch([]UserRecord{validUser("1"), u})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 1 {
		t.Fatalf("only the bad element should be flagged: %v", verr.Violations)
	}
	if !strings.Contains(verr.Violations[0], "UserList[1]") || !strings.Contains(verr.Violations[0], "ValidFrom") {
		t.Fatalf("violation should name element and field: %v", verr.Violations)
	}
}

func TestValidateUserBatch_DuplicateIDsRejectWholeBatch(t *testing.T) {
	err := ValidateUserBatch([]UserRecord{validUser("7"), validUser("8"), validUser("7")})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 1 {
		t.Fatalf("violations: %v", verr.Violations)
	}
	v := verr.Violations[0]
	if !strings.Contains(v, `"7"`) || !strings.Contains(v, "UserList[2]") || !strings.Contains(v, "index 0") {
		t.Fatalf("duplicate violation should name both occurrences: %s", v)
	}
}
