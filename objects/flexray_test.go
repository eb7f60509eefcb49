package objects

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tracebus/blf/cursor"
)

func TestDecodeFlexRayData(t *testing.T) {
	body := make([]byte, 0, 10)
	body = le.AppendUint16(body, 1) // channel
	body = le.AppendUint16(body, 42) // slot id
	body = append(body, 3, 8) // cycle, dlc
	body = append(body, []byte{1, 2, 3, 4, 5, 6, 7, 8}...)

	c := cursor.New(body)
	got, err := DecodeFlexRayData(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint16(42), got.SlotID)
	require.Len(t, got.Data, 8)

	_, ok := got.Channel()
	require.False(t, ok)
}

func TestDecodeFlexRayVFrReceiveMsg(t *testing.T) {
	body := make([]byte, 0, 20)
	body = le.AppendUint16(body, 1)  // channel
	body = le.AppendUint16(body, 3)  // version
	body = le.AppendUint16(body, 1)  // channel mask
	body = append(body, 0, 5)        // dir, cycle
	body = le.AppendUint16(body, 10) // frame id
	body = le.AppendUint16(body, 0xAAAA)
	body = le.AppendUint16(body, 0xBBBB)
	body = le.AppendUint16(body, 16) // byte count
	body = append(body, make([]byte, 16)...)

	c := cursor.New(body)
	got, err := DecodeFlexRayVFrReceiveMsg(c, testHeader(7))
	require.NoError(t, err)
	require.Equal(t, uint16(10), got.FrameID)
	require.Len(t, got.Data, 16)
}

func TestDecodeFlexRayVFrReceiveMsgEx(t *testing.T) {
	body := make([]byte, 0, 22)
	body = le.AppendUint16(body, 1)
	body = le.AppendUint16(body, 3)
	body = le.AppendUint16(body, 1)
	body = append(body, 0, 5)
	body = le.AppendUint16(body, 10)
	body = le.AppendUint16(body, 0xAAAA)
	body = le.AppendUint16(body, 0xBBBB)
	body = le.AppendUint16(body, 8)
	body = le.AppendUint16(body, 99) // frame rf
	body = append(body, make([]byte, 8)...)

	c := cursor.New(body)
	got, err := DecodeFlexRayVFrReceiveMsgEx(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint16(99), got.FrameRF)
	require.Len(t, got.Data, 8)
}

func TestDecodeFlexRaySync(t *testing.T) {
	body := []byte{1, 0, 5, 0}
	c := cursor.New(body)
	got, err := DecodeFlexRaySync(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint8(5), got.Cycle)
}
