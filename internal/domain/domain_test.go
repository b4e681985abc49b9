package domain

import (
	"encoding/json"
	"testing"
)

func TestParseCommandRoundTrip(t *testing.T) {
	for _, c := range KnownCommands() {
		if got := ParseCommand(c.String()); got != c {
			t.Fatalf("ParseCommand(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestParseCommandUnknown(t *testing.T) {
	for _, name := range []string{"", "unknown_cmd", "PING", " ping", "roulette2"} {
		if got := ParseCommand(name); got != CommandUnknown {
			t.Fatalf("ParseCommand(%q) = %v, want unknown", name, got)
		}
	}
}

func TestKnownCommandsCoverEveryVariant(t *testing.T) {
	seen := map[Command]bool{}
	for _, c := range KnownCommands() {
		if seen[c] {
			t.Fatalf("duplicate command %v", c)
		}
		seen[c] = true
	}
	for c := CommandPing; c <= CommandRoulette; c++ {
		if !seen[c] {
			t.Fatalf("command %v missing from KnownCommands", c)
		}
	}
	if seen[CommandUnknown] {
		t.Fatal("unknown must not be registrable")
	}
}

func TestOptionsInt(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		want   int64
		wantOK bool
	}{
		{"empty", nil, 0, false},
		{"float from json", Options{{Name: "number", Kind: OptionInteger, Value: float64(3)}}, 3, true},
		{"int64", Options{{Name: "number", Kind: OptionInteger, Value: int64(5)}}, 5, true},
		{"json number", Options{{Name: "number", Kind: OptionInteger, Value: json.Number("2")}}, 2, true},
		{"fractional", Options{{Name: "number", Kind: OptionNumber, Value: 2.5}}, 0, false},
		{"wrong type", Options{{Name: "number", Kind: OptionString, Value: "three"}}, 0, false},
		{"first integer fallback", Options{{Name: "query", Kind: OptionString, Value: "x"}, {Name: "n", Kind: OptionInteger, Value: float64(4)}}, 4, true},
		{"nil value", Options{{Name: "number", Kind: OptionInteger}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.opts.Int("number")
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("Int() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOptionsString(t *testing.T) {
	opts := Options{{Name: "query", Kind: OptionString, Value: "never gonna give you up"}}
	if s, ok := opts.String("query"); !ok || s != "never gonna give you up" {
		t.Fatalf("String(query) = (%q, %v)", s, ok)
	}
	if _, ok := opts.String("missing"); ok {
		t.Fatal("expected missing option")
	}
}
