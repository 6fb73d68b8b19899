// Package task derives publish tasks from source model identifiers.
package task

import (
	"fmt"
	"strings"
)

// RepoSuffix is appended to every target repository name.
const RepoSuffix = "-UQFF"

// templatePlaceholder marks where a quantization name goes in a template.
const templatePlaceholder = "###"

// Task is one unit of work: one source model mapped to one target repository.
type Task struct {
	SourceID     string
	Template     string
	LocalFolder  string
	FolderPath   string
	TargetRepoID string
}

// New builds a task for sourceID published under namespace.
// FolderPath defaults to LocalFolder; callers resolve it against a base directory.
func New(sourceID, template, namespace string) Task {
	folder := LocalFolder(sourceID)
	return Task{
		SourceID:     sourceID,
		Template:     template,
		LocalFolder:  folder,
		FolderPath:   folder,
		TargetRepoID: TargetRepoID(namespace, folder),
	}
}

// LocalFolder returns the part of sourceID after the last '/'.
// If sourceID has no '/', the whole string is returned.
func LocalFolder(sourceID string) string {
	if i := strings.LastIndex(sourceID, "/"); i >= 0 {
		return sourceID[i+1:]
	}
	return sourceID
}

// TargetRepoID returns "{namespace}/{folder}-UQFF".
func TargetRepoID(namespace, folder string) string {
	return namespace + "/" + folder + RepoSuffix
}

// ArtifactNames expands the template once per quantization.
// Returns nil when the task has no template.
func (t Task) ArtifactNames(quants []string) []string {
	if t.Template == "" {
		return nil
	}
	names := make([]string, 0, len(quants))
	for _, q := range quants {
		names = append(names, strings.ReplaceAll(t.Template, templatePlaceholder, strings.ToLower(q)))
	}
	return names
}

// String returns "source to target".
func (t Task) String() string {
	return fmt.Sprintf("%s to %s", t.SourceID, t.TargetRepoID)
}

// ValidateNamespace checks that namespace can prefix a repository id.
func ValidateNamespace(namespace string) error {
	if namespace == "" {
		return fmt.Errorf("namespace cannot be empty")
	}
	if strings.Contains(namespace, "/") {
		return fmt.Errorf("invalid namespace '%s': must not contain '/'", namespace)
	}
	return nil
}

// ValidateSourceID checks that sourceID names a model folder.
func ValidateSourceID(sourceID string) error {
	if sourceID == "" {
		return fmt.Errorf("model id cannot be empty")
	}
	if LocalFolder(sourceID) == "" {
		return fmt.Errorf("invalid model id '%s'\nExpected: namespace/name", sourceID)
	}
	return nil
}
