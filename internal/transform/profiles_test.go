package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "gentle", input: "gentle", want: "gentle"},
		{name: "playful", input: "playful", want: "playful"},
		{name: "minimal_edit", input: "minimal_edit", want: "minimal_edit"},
		{name: "empty falls back to default", input: "", want: DefaultProfileName},
		{name: "unknown profile", input: "sarcastic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ProfileByName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name)
			assert.NotEmpty(t, p.SystemPrompt)
			assert.Positive(t, p.MaxTokens)
		})
	}
}
