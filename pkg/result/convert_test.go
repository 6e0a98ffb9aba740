package result

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMatchDispatch(t *testing.T) {
	t.Parallel()
	var seen string

	Success(1).Match(
		func(v int) { seen = "success" },
		func(err error) { seen = "failure" })
	if seen != "success" {
		t.Fatalf("expected success branch, got %v", seen)
	}

	Fail[int](errors.New("e")).Match(
		func(v int) { seen = "success" },
		func(err error) { seen = "failure" })
	if seen != "failure" {
		t.Fatalf("expected failure branch, got %v", seen)
	}
}

func TestMatchNilHandlerPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if _, ok := recover().(*UnwrapError); !ok {
			t.Fatalf("a nil handler for the dispatched side must panic")
		}
	}()

	Success(1).Match(nil, func(err error) {})
}

func TestMatchNilHandlerForOtherSideIsFine(t *testing.T) {
	t.Parallel()
	Success(1).Match(func(v int) {}, nil)
}

func TestTee(t *testing.T) {
	t.Parallel()
	var seen int
	r := Success(5).Tee(func(v int) { seen = v })
	if seen != 5 || r.Unwrap() != 5 {
		t.Fatalf("tee must observe without changing the result")
	}

	seen = 0
	Fail[int](errors.New("e")).Tee(func(v int) { seen = v })
	if seen != 0 {
		t.Fatalf("tee must not run on a failure")
	}
}

func TestTeeErr(t *testing.T) {
	t.Parallel()
	var seen error
	boom := errors.New("boom")
	r := Fail[int](boom).TeeErr(func(err error) { seen = err })
	if !errors.Is(seen, boom) || !r.IsFailure() {
		t.Fatalf("teeErr must observe the failure payload")
	}
}

func TestRecordShape(t *testing.T) {
	t.Parallel()
	ok := Success(3).Record()
	if ok.Type != TypeOK || ok.Value != 3 || ok.Error != "" {
		t.Fatalf("unexpected ok record: %+v", ok)
	}

	bad := Fail[int](errors.New("nope")).Record()
	if bad.Type != TypeErr || bad.Error != "nope" {
		t.Fatalf("unexpected err record: %+v", bad)
	}
}

func TestFromRecordUnknownTag(t *testing.T) {
	t.Parallel()
	if _, err := FromRecord(Record[int]{Type: "maybe"}); err == nil {
		t.Fatalf("an unknown tag must be a decode error")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Success(12))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Result[int]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsSuccess() || back.Unwrap() != 12 {
		t.Fatalf("round trip lost the success payload: %v", back)
	}

	data, err = json.Marshal(Fail[int](errors.New("down")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsFailure() || back.UnwrapErr().Error() != "down" {
		t.Fatalf("round trip lost the failure payload: %v", back)
	}
}

func TestJSONTaggedShape(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(Success("x"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"type":"ok","value":"x"}` {
		t.Fatalf("unexpected wire shape: %s", data)
	}
}

func TestErrorsHelper(t *testing.T) {
	t.Parallel()
	a, b := errors.New("a"), errors.New("b")

	if got := Errors(nil); len(got) != 0 {
		t.Fatalf("nil must yield an empty slice, got %v", got)
	}
	if got := Errors(a); len(got) != 1 || !errors.Is(got[0], a) {
		t.Fatalf("plain error must yield itself, got %v", got)
	}

	agg := &AggregateError{Errs: []error{a, b}}
	got := Errors(agg)
	if len(got) != 2 || !errors.Is(got[0], a) || !errors.Is(got[1], b) {
		t.Fatalf("aggregate must yield ordered members, got %v", got)
	}
	if !errors.Is(agg, b) {
		t.Fatalf("errors.Is must reach aggregate members")
	}
}
