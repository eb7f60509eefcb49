package objtype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want Class
	}{
		{"container", LogContainer, ClassContainer},
		{"can leaf", CanMessage, ClassLeaf},
		{"canfd leaf", CanFdMessage64, ClassLeaf},
		{"most deprecated", MostPkt, ClassDeprecated},
		{"unknown tag", Type(0xDEADBEEF), ClassUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassOf(tt.typ))
		})
	}
}

func TestType_String(t *testing.T) {
	require.Equal(t, "CanMessage", CanMessage.String())
	require.Equal(t, "Unknown(3735928559)", Type(0xDEADBEEF).String())
}

func TestClass_String(t *testing.T) {
	require.Equal(t, "leaf", ClassLeaf.String())
	require.Equal(t, "container", ClassContainer.String())
	require.Equal(t, "deprecated", ClassDeprecated.String())
	require.Equal(t, "unknown", ClassUnknown.String())
}
