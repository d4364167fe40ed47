package services

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      string
		wantValid bool
	}{
		{name: "bare day unchanged", raw: "2024-03-05", want: "2024-03-05", wantValid: true},
		{name: "datetime reduced to day", raw: "2024-03-05 14:30:00", want: "2024-03-05", wantValid: true},
		{name: "datetime without seconds", raw: "2024-03-05 14:30", want: "2024-03-05", wantValid: true},
		{name: "rfc3339 reduced to day", raw: "2024-03-05T14:30:00Z", want: "2024-03-05", wantValid: true},
		{name: "unparseable long value keeps first ten", raw: "abcdefghijkl", want: "abcdefghij", wantValid: false},
		{name: "long garbage with day prefix", raw: "2024-03-05 not a time", want: "2024-03-05", wantValid: true},
		{name: "short garbage", raw: "03/05/2024", want: "03/05/2024", wantValid: false},
		{name: "empty", raw: "", want: "", wantValid: false},
		{name: "surrounding whitespace", raw: "  2024-03-05  ", want: "2024-03-05", wantValid: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, valid := NormalizeDate(testCase.raw)
			if got != testCase.want || valid != testCase.wantValid {
				t.Fatalf("expected (%q, %v), got (%q, %v)", testCase.want, testCase.wantValid, got, valid)
			}
		})
	}
}

func TestNormalizeSleepHours(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "minutes converted", raw: 30, want: 0.5},
		{name: "hours kept", raw: 7, want: 7},
		{name: "boundary stays hours", raw: 24, want: 24},
		{name: "just above boundary is minutes", raw: 25, want: 25.0 / 60.0},
		{name: "full day of minutes", raw: 480, want: 8},
		{name: "zero", raw: 0, want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := NormalizeSleepHours(testCase.raw); got != testCase.want {
				t.Fatalf("expected %v, got %v", testCase.want, got)
			}
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{name: "plain number", raw: "62.3", want: 62.3},
		{name: "integer", raw: "11523", want: 11523},
		{name: "padded", raw: "  58  ", want: 58},
		{name: "empty", raw: "", want: 0},
		{name: "garbage", raw: "n/a", want: 0},
		{name: "nan collapses to zero", raw: "NaN", want: 0},
		{name: "infinity collapses to zero", raw: "Inf", want: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := CoerceFloat(testCase.raw); got != testCase.want {
				t.Fatalf("expected %v, got %v", testCase.want, got)
			}
		})
	}
}

func TestCoerceIntTruncates(t *testing.T) {
	if got := CoerceInt("11523.0"); got != 11523 {
		t.Fatalf("expected 11523, got %d", got)
	}
	if got := CoerceInt("12.7"); got != 12 {
		t.Fatalf("expected truncation to 12, got %d", got)
	}
	if got := CoerceInt("bogus"); got != 0 {
		t.Fatalf("expected 0 for garbage, got %d", got)
	}
}
