package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-40); got != 0 {
		t.Fatalf("FlushDenormals(1e-40) = %v, want 0", got)
	}
	if got := FlushDenormals(0.5); got != 0.5 {
		t.Fatalf("FlushDenormals(0.5) = %v, want 0.5", got)
	}
	if got := FlushDenormals(-1e-40); got != 0 {
		t.Fatalf("FlushDenormals(-1e-40) = %v, want 0", got)
	}
}

func TestDBConversions(t *testing.T) {
	linear := DBToLinear(-6)
	db := LinearToDB(linear)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("LinearToDB(DBToLinear(-6)) = %v, want -6", db)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestDBConversionsClamped(t *testing.T) {
	// 20 dB intervals map exactly under the clamped conversion.
	for _, tt := range []struct {
		linear float64
		db     float64
	}{
		{linear: 1e-1, db: -20},
		{linear: 1e-2, db: -40},
		{linear: 1e-3, db: -60},
		{linear: 1e-5, db: -100},
	} {
		if got := LinearToDBClamped(tt.linear); !NearlyEqual(got, tt.db, 1e-9) {
			t.Fatalf("LinearToDBClamped(%v) = %v, want %v", tt.linear, got, tt.db)
		}
	}

	// At or below the floor everything is silence.
	if got := LinearToDBClamped(0); got != MinDB {
		t.Fatalf("LinearToDBClamped(0) = %v, want %v", got, MinDB)
	}
	if got := LinearToDBClamped(1e-7); got != MinDB {
		t.Fatalf("LinearToDBClamped(1e-7) = %v, want %v", got, MinDB)
	}
	if got := LinearToDBClamped(math.NaN()); got != MinDB {
		t.Fatalf("LinearToDBClamped(NaN) = %v, want %v", got, MinDB)
	}

	if got := DBToLinearClamped(MinDB); got != 0 {
		t.Fatalf("DBToLinearClamped(MinDB) = %v, want 0", got)
	}
	if got := DBToLinearClamped(math.Inf(1)); got != 0 {
		t.Fatalf("DBToLinearClamped(+Inf) = %v, want 0", got)
	}
	if got := DBToLinearClamped(-20); !NearlyEqual(got, 0.1, 1e-12) {
		t.Fatalf("DBToLinearClamped(-20) = %v, want 0.1", got)
	}
}
