package objects

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tracebus/blf/cursor"
)

func TestDecodeEthernetFrame(t *testing.T) {
	body := make([]byte, 0, 14)
	body = le.AppendUint16(body, 1) // channel
	body = append(body, 1, 0)       // dir, reserved
	body = le.AppendUint16(body, 0x0001)
	body = le.AppendUint16(body, 60)
	body = append(body, make([]byte, 60)...)

	c := cursor.New(body)
	got, err := DecodeEthernetFrame(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint16(1), got.Channel_)
	require.Equal(t, uint8(1), got.Dir)
	require.Len(t, got.Data, 60)

	_, ok := got.Channel()
	require.False(t, ok)
}
