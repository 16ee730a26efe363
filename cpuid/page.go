package cpuid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Firmware hands the verified table over as a single measured 4KiB page:
// a small header followed by 64 fixed entry slots, of which the header
// says how many are valid. See the SEV-SNP firmware ABI, "CPUID page".
const (
	PageSize = 4096

	maxPageEntries = 64
	pageEntrySize  = 48
)

var (
	// ErrPageSize indicates a blob that is not exactly one page.
	ErrPageSize = errors.New("cpuid page has wrong size")

	// ErrPageEntryCount indicates a header count above the 64 slots the
	// page can hold.
	ErrPageEntryCount = errors.New("cpuid page entry count out of range")
)

type pageHeader struct {
	Count uint32
	_     uint32
	_     uint64
}

type pageEntry struct {
	EAXIn  uint32
	ECXIn  uint32
	XCR0In uint64
	XSSIn  uint64
	EAXOut uint32
	EBXOut uint32
	ECXOut uint32
	EDXOut uint32
	_      uint64
}

// ParsePage decodes a firmware CPUID page. The page's authenticity is
// established by the launch measurement, not here; this only enforces
// that the blob is well-formed.
func ParsePage(b []byte) (*Table, error) {
	if len(b) != PageSize {
		return nil, fmt.Errorf("%d bytes: %w", len(b), ErrPageSize)
	}

	r := bytes.NewReader(b)

	var hdr pageHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}

	if hdr.Count > maxPageEntries {
		return nil, fmt.Errorf("%d entries: %w", hdr.Count, ErrPageEntryCount)
	}

	entries := make([]TableEntry, hdr.Count)

	for i := range entries {
		var e pageEntry
		if err := binary.Read(r, binary.LittleEndian, &e); err != nil {
			return nil, err
		}

		entries[i] = TableEntry{
			EAXIn:  e.EAXIn,
			ECXIn:  e.ECXIn,
			XCR0In: e.XCR0In,
			XSSIn:  e.XSSIn,
			EAX:    e.EAXOut,
			EBX:    e.EBXOut,
			ECX:    e.ECXOut,
			EDX:    e.EDXOut,
		}
	}

	return NewTable(entries), nil
}

// MapPageFile maps a CPUID page dump read-only and parses it. The table
// does not own the mapping; the returned closure unmaps it.
func MapPageFile(path string) (*Table, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}

	if fi.Size() != PageSize {
		return nil, nil, fmt.Errorf("%q is %d bytes: %w", path, fi.Size(), ErrPageSize)
	}

	b, err := unix.Mmap(int(f.Fd()), 0, PageSize, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap %q: %w", path, err)
	}

	t, err := ParsePage(b)
	if err != nil {
		_ = unix.Munmap(b)

		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"entries": t.Len(),
	}).Debug("mapped cpuid page")

	return t, func() error { return unix.Munmap(b) }, nil
}
