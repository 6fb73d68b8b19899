package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFolder(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name    string
		baseDir string
		folder  string
		want    string
		wantErr bool
	}{
		{
			name:    "empty base keeps folder name",
			baseDir: "",
			folder:  "Llama-3.2-1B-Instruct",
			want:    "Llama-3.2-1B-Instruct",
		},
		{
			name:    "dot base keeps folder name",
			baseDir: ".",
			folder:  "Llama-3.2-1B-Instruct",
			want:    "Llama-3.2-1B-Instruct",
		},
		{
			name:    "absolute base",
			baseDir: "/data/uqff",
			folder:  "gemma-2-27b-it",
			want:    "/data/uqff/gemma-2-27b-it",
		},
		{
			name:    "relative base",
			baseDir: "out",
			folder:  "gemma-2-27b-it",
			want:    filepath.Join("out", "gemma-2-27b-it"),
		},
		{
			name:    "tilde base",
			baseDir: "~/uqff",
			folder:  "Phi-3.5-mini-instruct",
			want:    filepath.Join(home, "uqff", "Phi-3.5-mini-instruct"),
		},
		{
			name:    "bare tilde base",
			baseDir: "~",
			folder:  "Phi-3.5-mini-instruct",
			want:    filepath.Join(home, "Phi-3.5-mini-instruct"),
		},
		{
			name:    "empty folder",
			baseDir: "/data",
			folder:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveFolder(tt.baseDir, tt.folder)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandTilde_NoTilde(t *testing.T) {
	got, err := ExpandTilde("/abs/path")

	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
