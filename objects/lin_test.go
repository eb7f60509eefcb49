package objects

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tracebus/blf/cursor"
)

func TestDecodeLinMessage_RoundTrip(t *testing.T) {
	want := LinMessage{Timestamp: 1, Channel_: 1, ID: 0x20, DLC: 4, CRC: 0xBEEF, Dir: 1}
	copy(want.Data[:], []byte{1, 2, 3, 4, 5, 6, 7, 8})

	body := EncodeLinMessage(want)
	c := cursor.New(body)
	got, err := DecodeLinMessage(c, testHeader(want.Timestamp))
	require.NoError(t, err)
	require.Equal(t, want, got)

	ch, ok := got.Channel()
	require.True(t, ok)
	require.Equal(t, want.Channel_, ch)
}

func TestDecodeLinMessage2_NoChannel(t *testing.T) {
	body := make([]byte, 0, 14)
	body = append(body, 0x20, 4)
	body = append(body, make([]byte, 8)...)
	body = le.AppendUint16(body, 0xABCD)
	body = append(body, 1, 0, 2)

	c := cursor.New(body)
	got, err := DecodeLinMessage2(c, testHeader(5))
	require.NoError(t, err)
	require.Equal(t, uint8(0x20), got.ID)
	require.Equal(t, uint16(0xABCD), got.CRC)

	_, ok := got.Channel()
	require.False(t, ok)
}

func TestDecodeLinDlcInfo(t *testing.T) {
	body := []byte{0x01, 0x00, 0x20, 4}
	c := cursor.New(body)
	got, err := DecodeLinDlcInfo(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint8(0x20), got.ID)
	require.Equal(t, uint8(4), got.DLC)
}

func TestDecodeLinSyncError(t *testing.T) {
	body := make([]byte, 0, 10)
	body = le.AppendUint16(body, 1)
	for _, v := range []uint16{10, 20, 30, 40} {
		body = le.AppendUint16(body, v)
	}
	c := cursor.New(body)
	got, err := DecodeLinSyncError(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, [4]uint16{10, 20, 30, 40}, got.TimeDiff)
}

func TestDecodeLinWakeupEvent(t *testing.T) {
	body := []byte{0x01, 0x00, 1, 0}
	c := cursor.New(body)
	got, err := DecodeLinWakeupEvent(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint8(1), got.Signal)
	require.Equal(t, uint8(0), got.External)
}

func TestDecodeLinTruncated(t *testing.T) {
	c := cursor.New([]byte{0x01})
	_, err := DecodeLinBaudrateEvent(c, testHeader(1))
	require.Error(t, err)
}
