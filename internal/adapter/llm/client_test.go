package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"allowed": true}`,
			want: `{"allowed": true}`,
		},
		{
			name: "markdown fenced",
			in:   "```json\n{\"allowed\": true}\n```",
			want: `{"allowed": true}`,
		},
		{
			name: "wrapped in prose",
			in:   `Sure, here is the result: {"bio": "x", "facts": []} Hope that helps!`,
			want: `{"bio": "x", "facts": []}`,
		},
		{
			name: "nested objects span to last brace",
			in:   `{"slides": [{"type": "text", "text": "hi"}]}`,
			want: `{"slides": [{"type": "text", "text": "hi"}]}`,
		},
		{
			name:    "no object",
			in:      "I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			in:      "} {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extractJSON(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
