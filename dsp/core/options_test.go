package core

import "testing"

func TestApplyOptionsDefaults(t *testing.T) {
	cfg := ApplyOptions()
	if cfg.SampleRate != 48000 {
		t.Fatalf("default sample rate = %v, want 48000", cfg.SampleRate)
	}
}

func TestApplyOptionsSampleRate(t *testing.T) {
	cfg := ApplyOptions(WithSampleRate(44100))
	if cfg.SampleRate != 44100 {
		t.Fatalf("sample rate = %v, want 44100", cfg.SampleRate)
	}
}

func TestApplyOptionsRejectsInvalid(t *testing.T) {
	cfg := ApplyOptions(WithSampleRate(-1), nil)
	if cfg.SampleRate != 48000 {
		t.Fatalf("sample rate = %v, want default 48000", cfg.SampleRate)
	}
}
