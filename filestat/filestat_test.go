package filestat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tracebus/blf/errs"
)

func sampleStats() *FileStatistics {
	return &FileStatistics{
		ApplicationID: 5,
		AppMajor:      2,
		AppMinor:      1,
		AppBuild:      0,
		APINumber:     3,

		FileSize:             4096,
		UncompressedFileSize: 8192,
		ObjectCount:          3,
		CompressionLevel:     6,

		MeasurementStartTime: SystemTime{Year: 2024, Month: 5, Day: 1, Hour: 10, Minute: 30, Second: 0},
		LastObjectTime:       SystemTime{Year: 2024, Month: 5, Day: 1, Hour: 10, Minute: 31, Second: 12},
	}
}

func TestRead_RoundTrip(t *testing.T) {
	want := sampleStats()
	raw := Encode(want)
	require.Len(t, raw, Size)

	got, err := Read(raw)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestRead_BadSignature(t *testing.T) {
	raw := Encode(sampleStats())
	raw[0] = 0

	_, err := Read(raw)
	require.ErrorIs(t, err, errs.ErrBadPreamble)
}

func TestRead_WrongStatisticsSize(t *testing.T) {
	raw := Encode(sampleStats())
	raw[4] = 0
	raw[5] = 0

	_, err := Read(raw)
	require.ErrorIs(t, err, errs.ErrBadPreamble)
}

func TestRead_TooShort(t *testing.T) {
	_, err := Read(make([]byte, 10))
	require.ErrorIs(t, err, errs.ErrBadPreamble)
}
