package engine

const (
	// KeyBufSize is the rolling buffer's hard capacity.
	KeyBufSize = 40
	// KeysMaintain is how many trailing characters survive a compaction.
	KeysMaintain = 20
)

// KeyBuffer is the bounded, ordered sequence of characters currently
// on screen for the word being composed, plus a per-position case bit
// recording whether each key was typed in lowercase. It is a prefix of
// the typist's visible word up to the caret, with transformations
// already applied (spec.md §4.2).
type KeyBuffer struct {
	buf   [KeyBufSize]rune
	lower [KeyBufSize]bool
	n     int
}

// NewKeyBuffer returns an empty buffer.
func NewKeyBuffer() *KeyBuffer {
	return &KeyBuffer{}
}

// Len reports the number of characters currently held.
func (b *KeyBuffer) Len() int {
	return b.n
}

// At returns the character at index i (0 <= i < Len()).
func (b *KeyBuffer) At(i int) rune {
	return b.buf[i]
}

// IsLower reports whether the character at index i was typed in
// lowercase.
func (b *KeyBuffer) IsLower(i int) bool {
	return b.lower[i]
}

// Append adds a character to the tail, compacting first if the
// buffer is at capacity.
func (b *KeyBuffer) Append(r rune, lower bool) {
	if b.n >= KeyBufSize {
		b.compact()
	}
	b.buf[b.n] = r
	b.lower[b.n] = lower
	b.n++
}

// compact drops the leading KeyBufSize-KeysMaintain entries, sealing
// them as history no longer eligible for diacritic placement.
func (b *KeyBuffer) compact() {
	if b.n <= KeysMaintain {
		return
	}
	start := b.n - KeysMaintain
	copy(b.buf[:KeysMaintain], b.buf[start:b.n])
	copy(b.lower[:KeysMaintain], b.lower[start:b.n])
	b.n = KeysMaintain
}

// PopTail removes and returns the last character. ok is false when
// the buffer is already empty.
func (b *KeyBuffer) PopTail() (r rune, ok bool) {
	if b.n == 0 {
		return 0, false
	}
	b.n--
	return b.buf[b.n], true
}

// ReplaceAt overwrites the character at index i in place, without
// shifting any other slot.
func (b *KeyBuffer) ReplaceAt(i int, r rune) {
	b.buf[i] = r
}

// TruncateTo drops every entry from index n to the tail.
func (b *KeyBuffer) TruncateTo(n int) {
	if n < b.n {
		b.n = n
	}
}

// Snapshot returns the buffer's current contents as a string, for
// debug displays (spec.md §6).
func (b *KeyBuffer) Snapshot() string {
	return string(b.buf[:b.n])
}

// Clear empties the buffer.
func (b *KeyBuffer) Clear() {
	b.n = 0
}

// TailFrom returns the buffer contents from index i to the tail, the
// "post-transformation tail" used to build Replace instructions.
func (b *KeyBuffer) TailFrom(i int) string {
	return string(b.buf[i:b.n])
}
