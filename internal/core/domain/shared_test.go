package domain

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  ID
		valid bool
	}{
		{"simple", "4", 4, true},
		{"large", "9000000000", 9000000000, true},
		{"zero", "0", 0, false},
		{"negative", "-1", 0, false},
		{"empty string", "", 0, false},
		{"not a number", "abc", 0, false},
		{"hex object id", "aabbccddee112233aabbccdd", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseID(tt.raw)
			if ok != tt.valid {
				t.Fatalf("ParseID(%q) ok = %v, want %v", tt.raw, ok, tt.valid)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestID_String(t *testing.T) {
	if got := ID(42).String(); got != "42" {
		t.Fatalf("expected '42', got %q", got)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"110", "110"},
		{"47.5", "47.5"},
		{"10.005", "10.01"},
		{"10.004", "10.00"},
		{"164.999", "165"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := NewAmountFromString(tt.in)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			want, _ := NewAmountFromString(tt.want)
			if got := RoundCents(a); !got.Equal(want) {
				t.Errorf("RoundCents(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
