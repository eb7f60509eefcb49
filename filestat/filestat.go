// Package filestat decodes the fixed 144-byte File Statistics preamble that
// opens every BLF file: the "LOGG"-signed record declaring file/object
// counts, the producing application's identity, and the measurement's
// start and end wall-clock times.
package filestat

import (
	"fmt"

	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/errs"
)

// SignatureLOGG is the required little-endian value of the 4-byte "LOGG"
// signature at byte 0 of the preamble.
const SignatureLOGG uint32 = 0x47474F4C

// Size is the fixed byte length of the File Statistics preamble.
const Size = 144

// SystemTime is the 16-byte calendar timestamp record used by the preamble,
// always UTC with no timezone field.
type SystemTime struct {
	Year       uint16
	Month      uint16
	DayOfWeek  uint16
	Day        uint16
	Hour       uint16
	Minute     uint16
	Second     uint16
	Milliseconds uint16
}

func readSystemTime(c *cursor.Cursor) (SystemTime, error) {
	var st SystemTime
	fields := []*uint16{
		&st.Year, &st.Month, &st.DayOfWeek, &st.Day,
		&st.Hour, &st.Minute, &st.Second, &st.Milliseconds,
	}
	for _, f := range fields {
		v, err := c.ReadUint16()
		if err != nil {
			return SystemTime{}, err
		}
		*f = v
	}
	return st, nil
}

// FileStatistics is the decoded 144-byte preamble.
type FileStatistics struct {
	ApplicationID uint32
	AppMajor      uint8
	AppMinor      uint8
	AppBuild      uint8
	APINumber     uint8

	FileSize             uint64
	UncompressedFileSize uint64
	ObjectCount          uint32
	CompressionLevel     uint32

	MeasurementStartTime SystemTime
	LastObjectTime       SystemTime
}

// Read decodes a FileStatistics record from exactly the first Size bytes of
// data. It is the only fatal failure point in the reader: a bad signature or
// wrong declared size aborts the read entirely, since without a trustworthy
// preamble there is no reliable place to resume.
func Read(data []byte) (*FileStatistics, error) {
	if len(data) < Size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", errs.ErrBadPreamble, len(data), Size)
	}

	c := cursor.New(data[:Size])

	sig, err := c.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	if sig != SignatureLOGG {
		return nil, fmt.Errorf("%w: signature=0x%08X", errs.ErrBadPreamble, sig)
	}

	statisticsSize, err := c.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	if statisticsSize != Size {
		return nil, fmt.Errorf("%w: statistics_size=%d", errs.ErrBadPreamble, statisticsSize)
	}

	fs := &FileStatistics{}

	appID, err := c.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	fs.ApplicationID = appID

	appMajor, err := c.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	appMinor, err := c.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	appBuild, err := c.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	apiNumber, err := c.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	fs.AppMajor, fs.AppMinor, fs.AppBuild, fs.APINumber = appMajor, appMinor, appBuild, apiNumber

	fileSize, err := c.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	fs.FileSize = fileSize

	uncompressedSize, err := c.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	fs.UncompressedFileSize = uncompressedSize

	objectCount, err := c.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	fs.ObjectCount = objectCount

	if _, err := c.ReadUint32(); err != nil { // reserved
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}

	compressionLevel, err := c.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	fs.CompressionLevel = compressionLevel

	if _, err := c.ReadUint32(); err != nil { // reserved
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}

	start, err := readSystemTime(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	fs.MeasurementStartTime = start

	last, err := readSystemTime(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrBadPreamble, err)
	}
	fs.LastObjectTime = last

	return fs, nil
}
