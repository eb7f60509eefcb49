package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objects"
	"github.com/tracebus/blf/objtype"
)

func TestDecode_KnownLeaf(t *testing.T) {
	body := objects.EncodeCanMessage(objects.CanMessage{Channel_: 1, DLC: 8, ID: 0x42})
	c := cursor.New(body)
	obj, skip, err := Decode(objtype.CanMessage, c, &header.ObjectHeader{TimestampNs: 5})
	require.NoError(t, err)
	require.False(t, skip)
	require.IsType(t, objects.CanMessage{}, obj)
	require.Equal(t, objtype.CanMessage, obj.Type())
}

func TestDecode_UnknownTag(t *testing.T) {
	c := cursor.New([]byte{1, 2, 3, 4})
	obj, skip, err := Decode(objtype.Type(0xF00D), c, &header.ObjectHeader{TimestampNs: 9})
	require.NoError(t, err)
	require.False(t, skip)
	unhandled, ok := obj.(objects.Unhandled)
	require.True(t, ok)
	require.Equal(t, objtype.Type(0xF00D), unhandled.TagValue)
	require.Equal(t, []byte{1, 2, 3, 4}, unhandled.RawBytes)
}

func TestDecode_DeprecatedTag(t *testing.T) {
	c := cursor.New(nil)
	obj, skip, err := Decode(objtype.MostPkt, c, &header.ObjectHeader{})
	require.NoError(t, err)
	require.True(t, skip)
	require.Nil(t, obj)
}

func TestDecode_ContainerTagRejected(t *testing.T) {
	c := cursor.New(nil)
	_, _, err := Decode(objtype.LogContainer, c, &header.ObjectHeader{})
	require.Error(t, err)
}

func TestLookup_AllLeafTypesRegistered(t *testing.T) {
	leafTypes := []objtype.Type{
		objtype.CanMessage, objtype.CanMessage2, objtype.CanErrorFrame, objtype.CanOverloadFrame,
		objtype.CanDriverStatistic, objtype.CanDriverError, objtype.CanFdMessage, objtype.CanFdMessage64,
		objtype.LinMessage, objtype.LinMessage2, objtype.LinCrcError, objtype.LinDlcInfo,
		objtype.LinReceiveError, objtype.LinSendError, objtype.LinSlaveTimeout, objtype.LinSchedulerModeChange,
		objtype.LinSyncError, objtype.LinBaudrateEvent, objtype.LinSleepModeEvent, objtype.LinWakeupEvent,
		objtype.FlexRayData, objtype.FlexRaySync, objtype.FlexRayV6Message, objtype.FlexRayV6StartCycleEvent,
		objtype.FlexRayStatusEvent, objtype.FlexRayVFrError, objtype.FlexRayVFrStatus, objtype.FlexRayVFrStartCycle,
		objtype.FlexRayVFrReceiveMsg, objtype.FlexRayVFrReceiveMsgEx,
		objtype.EthernetFrame,
		objtype.AppTrigger, objtype.EventComment, objtype.GlobalMarker,
		objtype.MostSpy, objtype.MostCtrl, objtype.MostPkt2, objtype.MostLightLock, objtype.MostStatistic,
		objtype.MostHwMode, objtype.MostReg, objtype.MostGenReg, objtype.MostNetState, objtype.MostDataLost,
		objtype.MostTrigger,
	}
	for _, typ := range leafTypes {
		_, ok := Lookup(typ)
		require.Truef(t, ok, "missing decoder for %s", typ)
		require.Equal(t, objtype.ClassLeaf, objtype.ClassOf(typ))
	}
}
