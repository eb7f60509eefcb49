// Package objtype defines the closed enumeration of BLF object_type tags and
// the coarse classification (container / leaf / deprecated / unknown) the
// registry package uses to decide how to handle a tag it has never seen
// decoded before.
//
// The numeric tag assignment below is this module's own closed numbering,
// not a transcription of Vector's internal tag table — see DESIGN.md for the
// reasoning. What matters for conformance is that the set of names, their
// relative families, and the deprecated/unknown handling contract are
// correct; the integer values only need to be internally consistent and
// stable within this module.
package objtype

import "strconv"

// Type is the 32-bit object_type tag carried in every object header.
type Type uint32

// Container, CAN, and marker object types.
const (
	Unknown Type = 0

	LogContainer Type = 1

	CanMessage         Type = 10
	CanMessage2        Type = 11
	CanErrorFrame      Type = 12
	CanOverloadFrame   Type = 13
	CanDriverStatistic Type = 14
	CanDriverError     Type = 15
	CanFdMessage       Type = 16
	CanFdMessage64     Type = 17

	LinMessage            Type = 20
	LinMessage2           Type = 21
	LinCrcError           Type = 22
	LinDlcInfo            Type = 23
	LinReceiveError       Type = 24
	LinSendError          Type = 25
	LinSlaveTimeout       Type = 26
	LinSchedulerModeChange Type = 27
	LinSyncError          Type = 28
	LinBaudrateEvent      Type = 29
	LinSleepModeEvent     Type = 30
	LinWakeupEvent        Type = 31

	FlexRayData              Type = 40
	FlexRaySync              Type = 41
	FlexRayV6Message         Type = 42
	FlexRayV6StartCycleEvent Type = 43
	FlexRayStatusEvent       Type = 44
	FlexRayVFrError          Type = 45
	FlexRayVFrStatus         Type = 46
	FlexRayVFrStartCycle     Type = 47
	FlexRayVFrReceiveMsg     Type = 48
	FlexRayVFrReceiveMsgEx   Type = 49

	EthernetFrame Type = 60

	AppTrigger   Type = 70
	EventComment Type = 71
	GlobalMarker Type = 72

	MostSpy       Type = 80
	MostCtrl      Type = 81
	MostPkt2      Type = 82
	MostLightLock Type = 83
	MostStatistic Type = 84
	MostHwMode    Type = 85
	MostReg       Type = 86
	MostGenReg    Type = 87
	MostNetState  Type = 88
	MostDataLost  Type = 89
	MostTrigger   Type = 90

	// MostPkt is the legacy (pre-Pkt2) MOST data-packet object. Producers
	// still emit it in older captures; this module classifies it Deprecated
	// and skips it silently rather than decoding it.
	MostPkt Type = 91
)

// Class coarsely classifies a Type for registry dispatch.
type Class uint8

const (
	// ClassUnknown tags have no registered decoder; they surface as
	// Unhandled with their raw payload bytes preserved.
	ClassUnknown Class = iota
	// ClassContainer is the single LogContainer type.
	ClassContainer
	// ClassLeaf tags decode to a concrete bus-event variant.
	ClassLeaf
	// ClassDeprecated tags are recognized but intentionally skipped without
	// producing output or a diagnostic.
	ClassDeprecated
)

func (c Class) String() string {
	switch c {
	case ClassContainer:
		return "container"
	case ClassLeaf:
		return "leaf"
	case ClassDeprecated:
		return "deprecated"
	default:
		return "unknown"
	}
}

// names maps every known Type to its canonical variant name, used by
// String() and by ClassOf to recognize leaf tags.
var names = map[Type]string{
	LogContainer: "LogContainer",

	CanMessage:         "CanMessage",
	CanMessage2:        "CanMessage2",
	CanErrorFrame:      "CanErrorFrame",
	CanOverloadFrame:   "CanOverloadFrame",
	CanDriverStatistic: "CanDriverStatistic",
	CanDriverError:     "CanDriverError",
	CanFdMessage:       "CanFdMessage",
	CanFdMessage64:     "CanFdMessage64",

	LinMessage:             "LinMessage",
	LinMessage2:            "LinMessage2",
	LinCrcError:            "LinCrcError",
	LinDlcInfo:             "LinDlcInfo",
	LinReceiveError:        "LinReceiveError",
	LinSendError:           "LinSendError",
	LinSlaveTimeout:        "LinSlaveTimeout",
	LinSchedulerModeChange: "LinSchedulerModeChange",
	LinSyncError:           "LinSyncError",
	LinBaudrateEvent:       "LinBaudrateEvent",
	LinSleepModeEvent:      "LinSleepModeEvent",
	LinWakeupEvent:         "LinWakeupEvent",

	FlexRayData:              "FlexRayData",
	FlexRaySync:              "FlexRaySync",
	FlexRayV6Message:         "FlexRayV6Message",
	FlexRayV6StartCycleEvent: "FlexRayV6StartCycleEvent",
	FlexRayStatusEvent:       "FlexRayStatusEvent",
	FlexRayVFrError:          "FlexRayVFrError",
	FlexRayVFrStatus:         "FlexRayVFrStatus",
	FlexRayVFrStartCycle:     "FlexRayVFrStartCycle",
	FlexRayVFrReceiveMsg:     "FlexRayVFrReceiveMsg",
	FlexRayVFrReceiveMsgEx:   "FlexRayVFrReceiveMsgEx",

	EthernetFrame: "EthernetFrame",

	AppTrigger:   "AppTrigger",
	EventComment: "EventComment",
	GlobalMarker: "GlobalMarker",

	MostSpy:       "MostSpy",
	MostCtrl:      "MostCtrl",
	MostPkt2:      "MostPkt2",
	MostLightLock: "MostLightLock",
	MostStatistic: "MostStatistic",
	MostHwMode:    "MostHwMode",
	MostReg:       "MostReg",
	MostGenReg:    "MostGenReg",
	MostNetState:  "MostNetState",
	MostDataLost:  "MostDataLost",
	MostTrigger:   "MostTrigger",
	MostPkt:       "MostPkt",
}

// deprecated holds the set of tags classified ClassDeprecated.
var deprecated = map[Type]struct{}{
	MostPkt: {},
}

// String returns the canonical variant name for t, or "Unknown(<n>)" if t is
// not part of the closed enumeration.
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "Unknown(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// ClassOf returns the dispatch class for t.
func ClassOf(t Type) Class {
	if t == LogContainer {
		return ClassContainer
	}
	if _, ok := deprecated[t]; ok {
		return ClassDeprecated
	}
	if _, ok := names[t]; ok {
		return ClassLeaf
	}
	return ClassUnknown
}
