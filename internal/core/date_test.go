package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-06-01", true},
		{" 2025-06-01 ", true},
		{"2025-13-01", false},
		{"2025-06-32", false},
		{"01/06/2025", false},
		{"2025-06-01T10:00:00Z", false},
		{"", false},
	}
	for i, tc := range cases {
		_, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d: expected ok, got %v", i, err)
		}
		if !tc.ok {
			if err == nil {
				t.Fatalf("case %d: expected error", i)
			}
			if !errors.Is(err, ErrBadDate) {
				t.Fatalf("case %d: expected ErrBadDate, got %v", i, err)
			}
		}
	}
}

func TestDateWithin(t *testing.T) {
	lo := NewDate(2025, 6, 1)
	hi := NewDate(2025, 6, 10)
	cases := []struct {
		d    Date
		want bool
	}{
		{NewDate(2025, 6, 1), true},  // lower boundary
		{NewDate(2025, 6, 10), true}, // upper boundary
		{NewDate(2025, 6, 5), true},
		{NewDate(2025, 5, 31), false},
		{NewDate(2025, 6, 11), false},
	}
	for i, tc := range cases {
		if got := tc.d.Within(lo, hi); got != tc.want {
			t.Fatalf("case %d: Within = %v, want %v", i, got, tc.want)
		}
	}
}

func TestDateOrderOK(t *testing.T) {
	start := NewDate(2025, 6, 1)
	if !DateOrderOK(start, NewDate(2025, 6, 2)) {
		t.Fatalf("end after start should be ok")
	}
	if !DateOrderOK(start, start) {
		t.Fatalf("equal start and end should be ok")
	}
	if DateOrderOK(start, NewDate(2025, 5, 31)) {
		t.Fatalf("end before start should not be ok")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, 6, 1)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-06-01"` {
		t.Fatalf("marshal = %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip changed date: %v != %v", back, d)
	}
	if err := json.Unmarshal([]byte(`"junk"`), &back); err == nil {
		t.Fatalf("expected error for junk date")
	}
}
