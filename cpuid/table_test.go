package cpuid_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvmcore/guestid/cpuid"
)

// buildPage lays out entries in the firmware page format.
func buildPage(t *testing.T, count uint32, entries []cpuid.TableEntry) []byte {
	t.Helper()

	var buf bytes.Buffer

	hdr := struct {
		Count uint32
		Pad1  uint32
		Pad2  uint64
	}{Count: count}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, hdr))

	for _, e := range entries {
		disk := struct {
			EAXIn    uint32
			ECXIn    uint32
			XCR0In   uint64
			XSSIn    uint64
			EAXOut   uint32
			EBXOut   uint32
			ECXOut   uint32
			EDXOut   uint32
			Reserved uint64
		}{
			EAXIn: e.EAXIn, ECXIn: e.ECXIn, XCR0In: e.XCR0In, XSSIn: e.XSSIn,
			EAXOut: e.EAX, EBXOut: e.EBX, ECXOut: e.ECX, EDXOut: e.EDX,
		}
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, disk))
	}

	page := make([]byte, cpuid.PageSize)
	copy(page, buf.Bytes())

	return page
}

func testEntries() []cpuid.TableEntry {
	return []cpuid.TableEntry{
		{EAXIn: 0x1, EAX: 0x000806ea, EDX: 1 << 13},
		// Same leaf/sub-leaf, distinct extended state masks.
		{EAXIn: 0xd, ECXIn: 0x0, XCR0In: 0x3, EBX: 0x240},
		{EAXIn: 0xd, ECXIn: 0x0, XCR0In: 0x7, EBX: 0x340},
		{EAXIn: 0x80000001, EDX: 1 << 20},
	}
}

func TestTableLookup(t *testing.T) {
	t.Parallel()

	table := cpuid.NewTable(testEntries())
	assert.Equal(t, 4, table.Len())

	r, ok := table.Lookup(0x1, 0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, uint32(0x000806ea), r.EAX)
	assert.Equal(t, uint32(1<<13), r.EDX)

	// The extended state masks are part of the key, not a hint.
	r, ok = table.Lookup(0xd, 0, 0x3, 0)
	require.True(t, ok)
	assert.Equal(t, uint32(0x240), r.EBX)

	r, ok = table.Lookup(0xd, 0, 0x7, 0)
	require.True(t, ok)
	assert.Equal(t, uint32(0x340), r.EBX)

	_, ok = table.Lookup(0xd, 0, 0x1, 0)
	assert.False(t, ok)

	_, ok = table.Lookup(0xd, 1, 0x3, 0)
	assert.False(t, ok)

	_, ok = table.Lookup(0x7, 0, 0, 0)
	assert.False(t, ok)
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	entries := testEntries()
	table, err := cpuid.ParsePage(buildPage(t, uint32(len(entries)), entries))
	require.NoError(t, err)
	require.Equal(t, len(entries), table.Len())

	r, ok := table.Lookup(0x80000001, 0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, uint32(1<<20), r.EDX)
}

func TestParsePageErrors(t *testing.T) {
	t.Parallel()

	_, err := cpuid.ParsePage(make([]byte, 512))
	assert.ErrorIs(t, err, cpuid.ErrPageSize)

	_, err = cpuid.ParsePage(buildPage(t, 65, nil))
	assert.ErrorIs(t, err, cpuid.ErrPageEntryCount)
}

func TestMapPageFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path := filepath.Join(dir, "cpuid-page")
	entries := testEntries()
	require.NoError(t, os.WriteFile(path, buildPage(t, uint32(len(entries)), entries), 0o600))

	table, unmap, err := cpuid.MapPageFile(path)
	require.NoError(t, err)

	r, ok := table.Lookup(0x1, 0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, uint32(1<<13), r.EDX)

	require.NoError(t, unmap())

	short := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(short, make([]byte, 100), 0o600))

	_, _, err = cpuid.MapPageFile(short)
	assert.ErrorIs(t, err, cpuid.ErrPageSize)
}

func TestTableDump(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cpuid.NewTable(testEntries()).Dump(&buf)

	out := buf.String()
	assert.Contains(t, out, "4 entries")
	assert.Equal(t, 5, strings.Count(out, "\n"))
	assert.Contains(t, out, "EAX_IN: 0x80000001")
}

// Exercises the whole install lifecycle in order: the table singleton is
// process-wide, so this cannot run in parallel with itself split up.
func TestInstallTable(t *testing.T) { //nolint:paralleltest
	require.False(t, cpuid.TableInstalled())

	assert.Panics(t, func() { cpuid.TableQuery(0x1, 0, 0, 0) })
	assert.Panics(t, func() { cpuid.TableQueryFn(0x1) })

	require.ErrorIs(t, cpuid.InstallTable(nil), cpuid.ErrNilTable)
	require.False(t, cpuid.TableInstalled())

	require.NoError(t, cpuid.InstallTable(cpuid.NewTable(testEntries())))
	require.True(t, cpuid.TableInstalled())

	r, ok := cpuid.TableQueryFn(0x1)
	require.True(t, ok)
	assert.Equal(t, uint32(1<<13), r.EDX)

	_, ok = cpuid.TableQuery(0x2, 0, 0, 0)
	assert.False(t, ok)

	// Re-installation must be rejected, not silently overwrite.
	err := cpuid.InstallTable(cpuid.NewTable(nil))
	require.ErrorIs(t, err, cpuid.ErrTableInstalled)

	r, ok = cpuid.TableQueryFn(0x1)
	require.True(t, ok)
	assert.Equal(t, uint32(0x000806ea), r.EAX)
}
