package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndian_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	LittleEndian.PutUint32(buf, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), LittleEndian.Uint32(buf))

	LittleEndian.PutUint64(buf, 0x0123456789ABCDEF)
	require.Equal(t, uint64(0x0123456789ABCDEF), LittleEndian.Uint64(buf))
}

func TestLittleEndian_Append(t *testing.T) {
	var buf []byte
	buf = LittleEndian.AppendUint16(buf, 0x1234)
	require.Equal(t, []byte{0x34, 0x12}, buf)
}
