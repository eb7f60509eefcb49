package filestat

import "github.com/tracebus/blf/endian"

// Encode serializes fs back into the 144-byte wire layout, for use in test
// fixture construction.
func Encode(fs *FileStatistics) []byte {
	b := make([]byte, Size)

	endian.LittleEndian.PutUint32(b[0:4], SignatureLOGG)
	endian.LittleEndian.PutUint32(b[4:8], Size)
	endian.LittleEndian.PutUint32(b[8:12], fs.ApplicationID)
	b[12] = fs.AppMajor
	b[13] = fs.AppMinor
	b[14] = fs.AppBuild
	b[15] = fs.APINumber

	endian.LittleEndian.PutUint64(b[16:24], fs.FileSize)
	endian.LittleEndian.PutUint64(b[24:32], fs.UncompressedFileSize)
	endian.LittleEndian.PutUint32(b[32:36], fs.ObjectCount)
	endian.LittleEndian.PutUint32(b[40:44], fs.CompressionLevel)

	writeSystemTime(b[48:64], fs.MeasurementStartTime)
	writeSystemTime(b[64:80], fs.LastObjectTime)

	return b
}

func writeSystemTime(b []byte, st SystemTime) {
	fields := []uint16{
		st.Year, st.Month, st.DayOfWeek, st.Day,
		st.Hour, st.Minute, st.Second, st.Milliseconds,
	}
	for i, v := range fields {
		endian.LittleEndian.PutUint16(b[i*2:i*2+2], v)
	}
}
