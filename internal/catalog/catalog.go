// Package catalog holds the list of models to publish.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/d2verb/uqffpub/internal/task"
)

// Entry is a source model and its UQFF filename template.
type Entry struct {
	Model    string `yaml:"model"`
	Template string `yaml:"template,omitempty"`
}

// Names follow the format: [name][version]-[size]-[instruct?]-[quant].uqff
var defaultEntries = []Entry{
	// Gemma 2
	{"google/gemma-2-27b-it", "gemma2-27b-instruct-###.uqff"},
	// Llama
	{"meta-llama/Llama-3.2-1B-Instruct", "llama3.2-1b-instruct-###.uqff"},
	{"meta-llama/Llama-3.2-3B-Instruct", "llama3.2-3b-instruct-###.uqff"},
	{"meta-llama/Llama-3.1-8B-Instruct", "llama3.1-8b-instruct-###.uqff"},
	// Mistral
	{"mistralai/Mistral-7B-Instruct-v0.3", "mistral0.3-7b-instruct-###.uqff"},
	{"mistralai/Mistral-Nemo-Instruct-2407", "mistral-nemo-2407-instruct-###.uqff"},
	{"mistralai/Mistral-Small-Instruct-2409", "mistral-small-2409-instruct-###.uqff"},
	// Phi 3
	{"microsoft/Phi-3.5-mini-instruct", "phi3.5-mini-instruct-###.uqff"},
	{"microsoft/Phi-3.5-vision-instruct", "phi3.5-vision-instruct-###.uqff"},
	{"meta-llama/Llama-3.2-11B-Vision-Instruct", "llam3.2-vision-instruct-###.uqff"},
}

// Quantizations the UQFF artifacts are generated with.
var Quantizations = []string{"q3k", "q4k", "q5k", "q8_0", "hqq4", "hqq8", "f8e4m3"}

// Default returns a copy of the built-in model list.
func Default() []Entry {
	return slices.Clone(defaultEntries)
}

// Models returns the source model ids of entries, in order.
func Models(entries []Entry) []string {
	models := make([]string, 0, len(entries))
	for _, e := range entries {
		models = append(models, e.Model)
	}
	return models
}

// Tasks maps entries to publish tasks under namespace.
func Tasks(entries []Entry, namespace string) []task.Task {
	tasks := make([]task.Task, 0, len(entries))
	for _, e := range entries {
		tasks = append(tasks, task.New(e.Model, e.Template, namespace))
	}
	return tasks
}

// Manifest is the on-disk form of a model list.
type Manifest struct {
	Models []Entry `yaml:"models"`
}

// LoadFile reads a YAML manifest and returns its entries.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{File: path, Err: err}
	}

	if err := m.Validate(); err != nil {
		return nil, &ParseError{File: path, Err: err}
	}
	return m.Models, nil
}

// Validate checks that the manifest lists at least one usable model.
func (m *Manifest) Validate() error {
	if len(m.Models) == 0 {
		return fmt.Errorf("no models listed")
	}
	for i, e := range m.Models {
		if err := task.ValidateSourceID(e.Model); err != nil {
			return fmt.Errorf("models[%d]: %w", i, err)
		}
	}
	return nil
}
