package engine

import "testing"

// End-to-end scenarios, Telex, default configuration.
func TestRealWorld_EndToEndScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mootj -> mot with dot", "mootj", "một"},
		{"Vieetj -> Viet with dot", "Vieetj", "Việt"},
		{"naawng -> nang with breve", "naawng", "năng"},
		{"ddaays -> day with dbar+acute", "ddaays", "đấy"},
		{"hocj -> hoc with dot", "hocj", "học"},
		{"xooong -> third o undoes circumflex", "xooong", "xoong"},
		{"aaa -> escape leaves aa", "aaa", "aa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeWord(t, tt.input); got != tt.expected {
				t.Errorf("typeWord(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRealWorld_SeparatorEndsWord(t *testing.T) {
	e, _ := NewEngine(DefaultConfig())
	for _, r := range "nam" {
		e.Process(r)
	}
	e.Process(' ')
	e.Process('s')
	if got := e.BufferSnapshot(); got != "s" {
		t.Errorf("BufferSnapshot() = %q, want %q", got, "s")
	}
}

func TestRealWorld_TonePosition(t *testing.T) {
	// under traditional placement (the default), a two-vowel run puts
	// the tone on the first vowel regardless of which pair it is, unless
	// that first vowel is the glide of a qu/gi onset
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"chaof -> chào", "chaof", "chào"},
		{"xoas -> xóa", "xoas", "xóa"},
		{"hoaf -> hòa", "hoaf", "hòa"},
		{"nghiax -> nghĩa", "nghiax", "nghĩa"},
		{"thoar -> thỏa", "thoar", "thỏa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeWord(t, tt.input); got != tt.expected {
				t.Errorf("typeWord(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRealWorld_ModernStyleMovesToneOntoSecondVowel(t *testing.T) {
	// oa/oe/uy specifically flip under modern placement; other
	// two-vowel runs (like "ao") are unaffected
	cfg := DefaultConfig()
	cfg.ModernStyle = true
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	for _, r := range "hoaf" {
		e.Process(r)
	}
	if got := e.BufferSnapshot(); got != "hoà" {
		t.Errorf("BufferSnapshot() = %q, want hoà", got)
	}
}

func TestRealWorld_DoubleVowelWithSuffix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tooi -> tôi", "tooi", "tôi"},
		{"muwa -> mưa", "muwa", "mưa"},
		{"bowi -> bơi", "bowi", "bơi"},
		{"duocw -> ươ cluster before tone", "duocw", "dươc"},
		{"dduocwj -> được", "dduocwj", "được"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeWord(t, tt.input); got != tt.expected {
				t.Errorf("typeWord(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRealWorld_VniEquivalents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mo6t5 -> một", "mo6t5", "một"},
		{"vie6t5 -> việt", "vie6t5", "việt"},
		{"d9a61y -> đấy", "d9a61y", "đấy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := typeWordConvention(t, ConventionVni, tt.input); got != tt.expected {
				t.Errorf("typeWordConvention(VNI, %q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
