package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d2verb/uqffpub/internal/catalog"
)

func TestBuildTasks(t *testing.T) {
	// Arrange
	entries := []catalog.Entry{
		{Model: "meta-llama/Llama-3.2-1B-Instruct"},
		{Model: "mistralai/Mistral-7B-Instruct-v0.3"},
	}

	// Act
	tasks, err := buildTasks(entries, "EricB", "/srv/uqff")

	// Assert
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "EricB/Mistral-7B-Instruct-v0.3-UQFF", tasks[1].TargetRepoID)
	assert.Equal(t, filepath.Join("/srv/uqff", "Mistral-7B-Instruct-v0.3"), tasks[1].FolderPath)
	assert.Equal(t, "Mistral-7B-Instruct-v0.3", tasks[1].LocalFolder)
}

func TestBuildTasks_InvalidNamespace(t *testing.T) {
	_, err := buildTasks(catalog.Default(), "", ".")

	require.Error(t, err)
	assert.Equal(t, exitUsage, exitCodeFor(err))
}

func TestLoadEntries_Default(t *testing.T) {
	entries, err := loadEntries("")

	require.NoError(t, err)
	assert.Len(t, entries, len(catalog.Default()))
}

func TestLoadEntries_MissingManifest(t *testing.T) {
	_, err := loadEntries(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.True(t, catalog.IsNotFound(err), "expected NotFoundError, got %v", err)
	assert.Equal(t, exitUsage, exitCodeFor(err))
}
