// Package registry is the static object_type → decoder dispatch table: one
// map from a closed enum to a decode function, given a tag and a cursor
// already bounded to exactly that object's payload, returning the concrete
// LogObject the objects package decodes for that tag.
package registry

import (
	"fmt"

	"github.com/tracebus/blf/cursor"
	"github.com/tracebus/blf/header"
	"github.com/tracebus/blf/objects"
	"github.com/tracebus/blf/objtype"
)

// DecodeFunc decodes one object body from a cursor already bounded to the
// object's declared payload size.
type DecodeFunc func(c *cursor.Cursor, h *header.ObjectHeader) (objects.LogObject, error)

func wrap[T objects.LogObject](f func(*cursor.Cursor, *header.ObjectHeader) (T, error)) DecodeFunc {
	return func(c *cursor.Cursor, h *header.ObjectHeader) (objects.LogObject, error) {
		return f(c, h)
	}
}

// table maps every known leaf object_type to its decoder. LogContainer and
// deprecated tags are deliberately absent: the root reader handles
// LogContainer itself, and Decode below special-cases deprecated tags
// without consulting this table.
var table = map[objtype.Type]DecodeFunc{
	objtype.CanMessage:         wrap(objects.DecodeCanMessage),
	objtype.CanMessage2:        wrap(objects.DecodeCanMessage2),
	objtype.CanErrorFrame:      wrap(objects.DecodeCanErrorFrame),
	objtype.CanOverloadFrame:   wrap(objects.DecodeCanOverloadFrame),
	objtype.CanDriverStatistic: wrap(objects.DecodeCanDriverStatistic),
	objtype.CanDriverError:     wrap(objects.DecodeCanDriverError),
	objtype.CanFdMessage:       wrap(objects.DecodeCanFdMessage),
	objtype.CanFdMessage64:     wrap(objects.DecodeCanFdMessage64),

	objtype.LinMessage:             wrap(objects.DecodeLinMessage),
	objtype.LinMessage2:            wrap(objects.DecodeLinMessage2),
	objtype.LinCrcError:            wrap(objects.DecodeLinCrcError),
	objtype.LinDlcInfo:             wrap(objects.DecodeLinDlcInfo),
	objtype.LinReceiveError:        wrap(objects.DecodeLinReceiveError),
	objtype.LinSendError:           wrap(objects.DecodeLinSendError),
	objtype.LinSlaveTimeout:        wrap(objects.DecodeLinSlaveTimeout),
	objtype.LinSchedulerModeChange: wrap(objects.DecodeLinSchedulerModeChange),
	objtype.LinSyncError:           wrap(objects.DecodeLinSyncError),
	objtype.LinBaudrateEvent:       wrap(objects.DecodeLinBaudrateEvent),
	objtype.LinSleepModeEvent:      wrap(objects.DecodeLinSleepModeEvent),
	objtype.LinWakeupEvent:         wrap(objects.DecodeLinWakeupEvent),

	objtype.FlexRayData:              wrap(objects.DecodeFlexRayData),
	objtype.FlexRaySync:              wrap(objects.DecodeFlexRaySync),
	objtype.FlexRayV6Message:         wrap(objects.DecodeFlexRayV6Message),
	objtype.FlexRayV6StartCycleEvent: wrap(objects.DecodeFlexRayV6StartCycleEvent),
	objtype.FlexRayStatusEvent:       wrap(objects.DecodeFlexRayStatusEvent),
	objtype.FlexRayVFrError:          wrap(objects.DecodeFlexRayVFrError),
	objtype.FlexRayVFrStatus:         wrap(objects.DecodeFlexRayVFrStatus),
	objtype.FlexRayVFrStartCycle:     wrap(objects.DecodeFlexRayVFrStartCycle),
	objtype.FlexRayVFrReceiveMsg:     wrap(objects.DecodeFlexRayVFrReceiveMsg),
	objtype.FlexRayVFrReceiveMsgEx:   wrap(objects.DecodeFlexRayVFrReceiveMsgEx),

	objtype.EthernetFrame: wrap(objects.DecodeEthernetFrame),

	objtype.AppTrigger:   wrap(objects.DecodeAppTrigger),
	objtype.EventComment: wrap(objects.DecodeEventComment),
	objtype.GlobalMarker: wrap(objects.DecodeGlobalMarker),

	objtype.MostSpy:       wrap(objects.DecodeMostSpy),
	objtype.MostCtrl:      wrap(objects.DecodeMostCtrl),
	objtype.MostPkt2:      wrap(objects.DecodeMostPkt2),
	objtype.MostLightLock: wrap(objects.DecodeMostLightLock),
	objtype.MostStatistic: wrap(objects.DecodeMostStatistic),
	objtype.MostHwMode:    wrap(objects.DecodeMostHwMode),
	objtype.MostReg:       wrap(objects.DecodeMostReg),
	objtype.MostGenReg:    wrap(objects.DecodeMostGenReg),
	objtype.MostNetState:  wrap(objects.DecodeMostNetState),
	objtype.MostDataLost:  wrap(objects.DecodeMostDataLost),
	objtype.MostTrigger:   wrap(objects.DecodeMostTrigger),
}

// Lookup returns the decoder registered for t, and whether one exists.
func Lookup(t objtype.Type) (DecodeFunc, bool) {
	f, ok := table[t]
	return f, ok
}

// Decode dispatches on t's class and returns the concrete LogObject value:
//
//   - ClassLeaf: runs the registered decoder.
//   - ClassDeprecated: returns (nil, true, nil) — the caller skips the
//     object without producing output or a diagnostic.
//   - ClassUnknown (and any leaf tag with no registered decoder, which
//     should not happen but is handled defensively): returns an
//     Unhandled with the payload preserved verbatim.
//
// c must already be bounded to exactly the object's payload (a SubCursor
// sliced to payload_size), since Unhandled's RawBytes capture whatever c
// has remaining.
func Decode(t objtype.Type, c *cursor.Cursor, h *header.ObjectHeader) (obj objects.LogObject, skip bool, err error) {
	switch objtype.ClassOf(t) {
	case objtype.ClassDeprecated:
		return nil, true, nil
	case objtype.ClassContainer:
		return nil, false, fmt.Errorf("registry: Decode called with container type %s; containers are handled by the root reader", t)
	}

	decode, ok := table[t]
	if !ok {
		raw, err := c.ReadBytes(c.Remaining())
		if err != nil {
			return nil, false, err
		}
		return objects.Unhandled{TagValue: t, Timestamp: h.TimestampNs, RawBytes: append([]byte(nil), raw...)}, false, nil
	}

	obj, err = decode(c, h)
	if err != nil {
		return nil, false, err
	}
	return obj, false, nil
}
