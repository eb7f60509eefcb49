package objects

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tracebus/blf/cursor"
)

func TestDecodeMostSpy(t *testing.T) {
	body := make([]byte, 0, 14)
	body = le.AppendUint16(body, 1)
	body = le.AppendUint16(body, 0)
	body = le.AppendUint32(body, 0x10)
	body = le.AppendUint32(body, 0x20)
	body = append(body, 1, 2, 3)

	c := cursor.New(body)
	got, err := DecodeMostSpy(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint32(0x10), got.SourceAdr)
	require.Equal(t, uint32(0x20), got.DestAdr)
	require.Len(t, got.Data, 3)
}

func TestDecodeMostStatistic(t *testing.T) {
	body := make([]byte, 0, 16)
	body = le.AppendUint16(body, 1)
	body = le.AppendUint16(body, 0)
	body = le.AppendUint32(body, 5)
	body = le.AppendUint32(body, 10)
	body = le.AppendUint32(body, 42)

	c := cursor.New(body)
	got, err := DecodeMostStatistic(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint32(42), got.BusLoad)
}

func TestDecodeMostTrigger(t *testing.T) {
	body := make([]byte, 0, 16)
	body = le.AppendUint16(body, 1)
	body = le.AppendUint16(body, 2) // mode
	body = le.AppendUint16(body, 0) // hw
	body = le.AppendUint16(body, 0) // reserved
	body = le.AppendUint32(body, 10)
	body = le.AppendUint32(body, 20)

	c := cursor.New(body)
	got, err := DecodeMostTrigger(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint32(10), got.PreviousTriggerValue)
	require.Equal(t, uint32(20), got.TriggerValue)
}

func TestDecodeMostNetState(t *testing.T) {
	body := []byte{1, 0, 2, 0, 1, 0}
	c := cursor.New(body)
	got, err := DecodeMostNetState(c, testHeader(1))
	require.NoError(t, err)
	require.Equal(t, uint16(2), got.StateNew)
	require.Equal(t, uint16(1), got.StateOld)
}
