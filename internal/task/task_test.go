package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalFolder(t *testing.T) {
	tests := []struct {
		name     string
		sourceID string
		want     string
	}{
		{"namespace and name", "meta-llama/Llama-3.2-1B-Instruct", "Llama-3.2-1B-Instruct"},
		{"no slash", "gpt2", "gpt2"},
		{"nested path", "a/b/c", "c"},
		{"trailing slash", "org/", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocalFolder(tt.sourceID))
		})
	}
}

func TestTargetRepoID(t *testing.T) {
	assert.Equal(t, "EricB/Llama-3.2-1B-Instruct-UQFF", TargetRepoID("EricB", "Llama-3.2-1B-Instruct"))
}

func TestNew(t *testing.T) {
	// Arrange
	source := "meta-llama/Llama-3.2-1B-Instruct"

	// Act
	tk := New(source, "llama3.2-1b-instruct-###.uqff", "EricB")

	// Assert
	assert.Equal(t, source, tk.SourceID)
	assert.Equal(t, "Llama-3.2-1B-Instruct", tk.LocalFolder)
	assert.Equal(t, tk.LocalFolder, tk.FolderPath)
	assert.Equal(t, "EricB/Llama-3.2-1B-Instruct-UQFF", tk.TargetRepoID)
}

func TestNew_TemplateDoesNotAffectNaming(t *testing.T) {
	a := New("google/gemma-2-27b-it", "gemma2-27b-instruct-###.uqff", "EricB")
	b := New("google/gemma-2-27b-it", "", "EricB")

	assert.Equal(t, b.TargetRepoID, a.TargetRepoID)
	assert.Equal(t, b.LocalFolder, a.LocalFolder)
}

func TestArtifactNames(t *testing.T) {
	tests := []struct {
		name     string
		template string
		quants   []string
		want     []string
	}{
		{
			name:     "lowercases quant",
			template: "phi3.5-mini-instruct-###.uqff",
			quants:   []string{"Q4K", "HQQ8"},
			want:     []string{"phi3.5-mini-instruct-q4k.uqff", "phi3.5-mini-instruct-hqq8.uqff"},
		},
		{
			name:     "no template",
			template: "",
			quants:   []string{"q4k"},
			want:     nil,
		},
		{
			name:     "no placeholder",
			template: "model.uqff",
			quants:   []string{"q4k"},
			want:     []string{"model.uqff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := Task{Template: tt.template}

			assert.Equal(t, tt.want, tk.ArtifactNames(tt.quants))
		})
	}
}

func TestTaskString(t *testing.T) {
	tk := New("microsoft/Phi-3.5-mini-instruct", "", "EricB")

	assert.Equal(t, "microsoft/Phi-3.5-mini-instruct to EricB/Phi-3.5-mini-instruct-UQFF", tk.String())
}

func TestValidateNamespace(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		wantErr   bool
	}{
		{"valid", "EricB", false},
		{"empty", "", true},
		{"contains slash", "org/user", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNamespace(tt.namespace)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSourceID(t *testing.T) {
	tests := []struct {
		name     string
		sourceID string
		wantErr  bool
	}{
		{"namespace and name", "google/gemma-2-27b-it", false},
		{"bare name", "gpt2", false},
		{"empty", "", true},
		{"trailing slash", "google/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceID(tt.sourceID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
