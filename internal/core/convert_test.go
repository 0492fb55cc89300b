package core

import (
	"math"
	"testing"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"float", 1.5, 1.5, false},
		{"int64", int64(3), 3, false},
		{"numeric string", "12.25", 12.25, false},
		{"scientific", "1e3", 1000, false},
		{"excel formula", `="7"`, 7, false},
		{"bool", true, 1, false},
		{"text", "sand", 0, true},
		{"empty", "", 0, true},
		{"nil", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToFloat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToFloat(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ToFloat(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in      any
		want    int64
		wantErr bool
	}{
		{int64(4), 4, false},
		{14.0, 14, false},
		{2.7, 2, false},
		{"15", 15, false},
		{"15.0", 15, false},
		{false, 0, false},
		{"NaN", 0, true},
		{"Bohrpfahl", 0, true},
		{1e20, 0, true},
		{"1e20", 0, true},
		{-1e20, 0, true},
		{9223372036854775808.0, 0, true},
		{-9223372036854775808.0, math.MinInt64, false},
	}
	for _, tt := range tests {
		got, err := ToInt(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ToInt(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ToInt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in      any
		want    bool
		wantErr bool
	}{
		{true, true, false},
		{"true", true, false},
		{"False", false, false},
		{"yes", true, false},
		{"0", false, false},
		{int64(1), true, false},
		{0.0, false, false},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		got, err := ToBool(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ToBool(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ToBool(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		typ     ValueType
		want    any
		wantErr bool
	}{
		{"nil stays nil", nil, TypeFloat, nil, false},
		{"NaN sentinel kept", "nan", TypeFloat, "NaN", false},
		{"string from float", 0.5, TypeString, "0.5", false},
		{"string from bool", true, TypeString, "true", false},
		{"int from bool", true, TypeInt, int64(1), false},
		{"float from text", "2.5", TypeFloat, 2.5, false},
		{"bytes from string", "logo", TypeBytes, []byte("logo"), false},
		{"dict from scalar", "x", TypeDict, nil, true},
		{"none passes", "x", TypeNone, "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.in, tt.typ)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Coerce(%v, %s) error = %v, wantErr %v", tt.in, tt.typ, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if b, ok := tt.want.([]byte); ok {
				if string(got.([]byte)) != string(b) {
					t.Errorf("Coerce(%v, %s) = %v, want %v", tt.in, tt.typ, got, tt.want)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Coerce(%v, %s) = %#v, want %#v", tt.in, tt.typ, got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Rounding
// ----------------------------------------------------------------------------

func TestRound2_HalfwayBoundary(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.00},
		{-1.005, -1.00},
		{0.125, 0.12},
		{0.375, 0.38},
		{2.675, 2.67},
		{1.006, 1.01},
		{12.5, 12.5},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundValue(t *testing.T) {
	tests := []struct {
		in     any
		want   any
		wantOK bool
	}{
		{3.14159, 3.14, true},
		{"3.14159", 3.14, true},
		{"1.005", 1.00, true},
		{int64(7), int64(7), true},
		{"NaN", "NaN", false},
		{"Bohrpfahl", "Bohrpfahl", false},
		{nil, nil, false},
		{true, true, false},
	}
	for _, tt := range tests {
		got, ok := RoundValue(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("RoundValue(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsNaN(t *testing.T) {
	for _, v := range []any{"NaN", "nan", " NAN "} {
		if !IsNaN(v) {
			t.Errorf("IsNaN(%q) = false, want true", v)
		}
	}
	for _, v := range []any{"", nil, 0.0, "Nano"} {
		if IsNaN(v) {
			t.Errorf("IsNaN(%v) = true, want false", v)
		}
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  P1 ", "P1"},
		{`="0042"`, "0042"},
		{"=12", "12"},
		{`"quoted"`, "quoted"},
	}
	for _, tt := range tests {
		if got := CleanCell(tt.in); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in      string
		typ     ValueType
		want    any
		wantErr bool
	}{
		{"", TypeFloat, nil, false},
		{"12.5", TypeFloat, 12.5, false},
		{"NaN", TypeFloat, "NaN", false},
		{"4", TypeInt, int64(4), false},
		{"TRUE", TypeBool, true, false},
		{"Ton", TypeString, "Ton", false},
		{"abc", TypeFloat, nil, true},
		{"ja?", TypeBool, nil, true},
	}
	for _, tt := range tests {
		got, err := ParseCell(tt.in, tt.typ)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCell(%q, %s) error = %v, wantErr %v", tt.in, tt.typ, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCell(%q, %s) = %#v, want %#v", tt.in, tt.typ, got, tt.want)
		}
	}
}
