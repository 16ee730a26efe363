package cpuid

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	// ErrTableInstalled indicates a second InstallTable call. Installation
	// happens exactly once at boot; overwriting an installed table would
	// reopen the trust boundary already-running code relies on, so the
	// caller must abort startup instead.
	ErrTableInstalled = errors.New("verified cpuid table already installed")

	// ErrNilTable indicates an InstallTable call without a table.
	ErrNilTable = errors.New("verified cpuid table is nil")
)

// TableEntry is one verified identification result. The first four fields
// form the lookup key: results for the same leaf/sub-leaf legitimately
// differ with the enabled extended processor state, so XCR0 and XSS are
// part of the key, not a hint.
type TableEntry struct {
	EAXIn  uint32
	ECXIn  uint32
	XCR0In uint64
	XSSIn  uint64
	EAX    uint32
	EBX    uint32
	ECX    uint32
	EDX    uint32
}

// Table is a bounded, read-only view of verified identification results.
// The entries are produced outside the guest's control (measured by the
// launch process) and are never modified after construction.
type Table struct {
	entries []TableEntry
}

// NewTable wraps an externally validated entry sequence.
func NewTable(entries []TableEntry) *Table {
	return &Table{entries: entries}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup scans for an exact match on leaf, sub-leaf and both extended
// state masks. A linear scan is fine: the table holds tens of entries and
// callers cache results. The second return value is false if no entry
// matches; callers must treat that as "leaf not present", never as zeros.
func (t *Table) Lookup(fn, subfn uint32, xcr0, xss uint64) (Result, bool) {
	for i := range t.entries {
		e := &t.entries[i]
		if e.EAXIn == fn && e.ECXIn == subfn && e.XCR0In == xcr0 && e.XSSIn == xss {
			return Result{EAX: e.EAX, EBX: e.EBX, ECX: e.ECX, EDX: e.EDX}, true
		}
	}

	return Result{}, false
}

// Dump writes every entry to w, one line per entry.
func (t *Table) Dump(w io.Writer) {
	fmt.Fprintf(w, "verified cpuid table: %d entries\n", len(t.entries))

	for i := range t.entries {
		e := &t.entries[i]
		fmt.Fprintf(w,
			"EAX_IN: %#010x ECX_IN: %#010x XCR0_IN: %#018x XSS_IN: %#018x "+
				"EAX: %#010x EBX: %#010x ECX: %#010x EDX: %#010x\n",
			e.EAXIn, e.ECXIn, e.XCR0In, e.XSSIn, e.EAX, e.EBX, e.ECX, e.EDX)
	}
}

//nolint:gochecknoglobals
var installed atomic.Pointer[Table]

// InstallTable publishes the process-wide verified table. It must run on
// the bootstrap context before any other context issues TableQuery calls;
// the atomic publish guarantees no reader can observe a partial table.
// A second call fails with ErrTableInstalled and the caller must abort.
func InstallTable(t *Table) error {
	if t == nil {
		return ErrNilTable
	}

	if !installed.CompareAndSwap(nil, t) {
		return ErrTableInstalled
	}

	logrus.WithField("entries", t.Len()).Info("verified cpuid table installed")

	return nil
}

// TableInstalled reports whether InstallTable has run.
func TableInstalled() bool {
	return installed.Load() != nil
}

// TableQuery looks up a verified identification result. Calling it before
// InstallTable is a boot sequencing bug: this layer never substitutes
// zeroed data for a trust decision, so it panics instead.
func TableQuery(fn, subfn uint32, xcr0, xss uint64) (Result, bool) {
	t := installed.Load()
	if t == nil {
		panic("cpuid: verified table queried before install")
	}

	return t.Lookup(fn, subfn, xcr0, xss)
}

// TableQueryFn is TableQuery for sub-leaf 0 with no extended state.
func TableQueryFn(fn uint32) (Result, bool) {
	return TableQuery(fn, 0, 0, 0)
}
