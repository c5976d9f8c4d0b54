package batch

import (
	"github.com/samber/lo"

	"github.com/rise-and-shine/upload/fileinfo"
)

// Collection-style access to the batch entries. Entries keep the order
// the transport reported them in; these accessors mutate the underlying
// sequence directly and perform no validation.

// Len returns the number of entries.
func (b *Batch) Len() int {
	return len(b.entries)
}

// Has reports whether an entry exists at the given position.
func (b *Batch) Has(i int) bool {
	return i >= 0 && i < len(b.entries)
}

// Get returns the entry at the given position, or nil when out of range.
func (b *Batch) Get(i int) fileinfo.FileInfo {
	if !b.Has(i) {
		return nil
	}
	return b.entries[i]
}

// Set replaces the entry at the given position. It reports whether the
// position was in range. Intended for tests and overrides.
func (b *Batch) Set(i int, f fileinfo.FileInfo) bool {
	if !b.Has(i) {
		return false
	}
	b.entries[i] = f
	return true
}

// Remove deletes the entry at the given position, shifting later entries
// down. It reports whether the position was in range.
func (b *Batch) Remove(i int) bool {
	if !b.Has(i) {
		return false
	}
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	return true
}

// File returns the first entry, or nil for an empty batch. It is the
// single-file convenience for the common one-file submission.
func (b *Batch) File() fileinfo.FileInfo {
	if len(b.entries) == 0 {
		return nil
	}
	return b.entries[0]
}

// Files returns the ordered entry sequence.
func (b *Batch) Files() []fileinfo.FileInfo {
	return b.entries
}

// Names returns the name-with-extension of every entry, in order.
func (b *Batch) Names() []string {
	return lo.Map(b.entries, func(f fileinfo.FileInfo, _ int) string {
		return f.NameWithExtension()
	})
}

// Sizes returns the byte count of every entry, in order.
func (b *Batch) Sizes() []int64 {
	return lo.Map(b.entries, func(f fileinfo.FileInfo, _ int) int64 {
		return f.Size()
	})
}
