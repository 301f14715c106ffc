package engine

import "testing"

// Benchmark tests for performance measurement.
// Target: <1ms latency per key, no allocation growth across a word.

func BenchmarkProcess_PlainConsonant(b *testing.B) {
	e, _ := NewEngine(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process('t')
		if i%10 == 0 {
			e.ResetBuffer()
		}
	}
}

func BenchmarkProcess_VietnameseWord(b *testing.B) {
	// "dược" = d u o c w j
	e, _ := NewEngine(DefaultConfig())
	keys := []rune{'d', 'u', 'o', 'c', 'w', 'j'}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			e.Process(k)
		}
		e.ResetBuffer()
	}
}

func BenchmarkProcess_VniWord(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Convention = ConventionVni
	e, _ := NewEngine(cfg)
	keys := []rune{'d', 'u', 'o', 'c', '7', '5'}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			e.Process(k)
		}
		e.ResetBuffer()
	}
}

func BenchmarkProcess_ToneEscape(b *testing.B) {
	e, _ := NewEngine(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process('a')
		e.Process('s')
		e.Process('s')
		e.ResetBuffer()
	}
}

func BenchmarkProcess_Backspace(b *testing.B) {
	e, _ := NewEngine(DefaultConfig())
	keys := []rune{'n', 'g', 'h', 'i', 'e', 'n', 'g'}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			e.Process(k)
		}
		for j := 0; j < len(keys); j++ {
			e.Process(backspaceRune)
		}
	}
}

func BenchmarkBufferSnapshot(b *testing.B) {
	e, _ := NewEngine(DefaultConfig())
	for _, r := range "duocwj" {
		e.Process(r)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.BufferSnapshot()
	}
}
