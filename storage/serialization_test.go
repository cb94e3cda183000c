package storage

import (
	"testing"

	"github.com/poiesic/timeoff/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("pto_policy.md#3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalChunk(t *testing.T) {
	tests := []struct {
		name  string
		chunk *core.DocumentChunk
	}{
		{
			name: "minimal chunk",
			chunk: &core.DocumentChunk{
				Id:         core.ID(1),
				Ord:        1,
				SourceFile: "pto_policy.md",
				Seq:        0,
				FileType:   "md",
				Content:    "Employees accrue PTO monthly.",
			},
		},
		{
			name: "chunk with embedding",
			chunk: &core.DocumentChunk{
				Id:         core.IDFromContent("sick_leave.md#2"),
				Ord:        17,
				SourceFile: "sick_leave.md",
				Seq:        2,
				FileType:   "md",
				Content:    "A doctor's note is required after three consecutive days.",
				Vector:     []float32{0.12, -0.5, 0.33, 0.0, 1.0},
			},
		},
		{
			name: "unicode content",
			chunk: &core.DocumentChunk{
				Id:         core.ID(9),
				Ord:        3,
				SourceFile: "holidays.md",
				Seq:        1,
				FileType:   "md",
				Content:    "Jour férié — 14 juillet 🎆",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalChunk(tt.chunk)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalChunk(data)
			require.NoError(t, err)
			assert.Equal(t, tt.chunk, decoded)
		})
	}
}

func TestUnmarshalChunk_Truncated(t *testing.T) {
	chunk := &core.DocumentChunk{
		Id:         core.ID(5),
		Ord:        5,
		SourceFile: "pto_policy.md",
		Seq:        4,
		FileType:   "md",
		Content:    "Carryover caps apply at year end.",
		Vector:     []float32{0.1, 0.2, 0.3},
	}

	data := MarshalChunk(chunk)
	_, err := UnmarshalChunk(data[:len(data)/2])
	assert.Error(t, err)
}
