package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "Employees are entitled to various types of leave including vacation and sick days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestDocumentChunk_Ref(t *testing.T) {
	tests := []struct {
		name  string
		chunk DocumentChunk
		want  string
	}{
		{
			name: "basic chunk",
			chunk: DocumentChunk{
				SourceFile: "policy_overview.txt",
				Seq:        0,
			},
			want: "policy_overview.txt#0",
		},
		{
			name: "later chunk of same file",
			chunk: DocumentChunk{
				SourceFile: "policy_overview.txt",
				Seq:        3,
			},
			want: "policy_overview.txt#3",
		},
		{
			name:  "empty source",
			chunk: DocumentChunk{},
			want:  "#0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chunk.Ref(); got != tt.want {
				t.Errorf("Ref() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryGeneral, "general"},
		{CategoryBalance, "balance"},
		{CategoryPolicy, "policy"},
		{CategoryProcess, "process"},
		{CategoryHoliday, "holiday"},
		{CategoryStatistics, "statistics"},
		{Category(99), "general"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.category.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
