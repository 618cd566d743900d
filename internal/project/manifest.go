// Package project reads and writes mini.yaml, the manifest describing a
// multi-file mini project.
package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest file name looked up by default.
const FileName = "mini.yaml"

// Manifest models the mini.yaml contents.
type Manifest struct {
	Path      string   // absolute path the manifest was loaded from or saved to
	Name      string   // project name
	Sources   []string // source files or glob patterns, relative to the manifest
	Output    string   // directory for emitted files; empty disables output
	MaxErrors int      // diagnostics limit per file; 0 means no limit
	Emit      EmitOptions
}

// EmitOptions configures the emitter for a project.
type EmitOptions struct {
	TypeArguments bool
}

// New returns the manifest written by "minic init NAME".
func New(name string) *Manifest {
	return &Manifest{
		Name:    strings.TrimSpace(name),
		Sources: []string{"*.mini"},
		Output:  "out",
	}
}

// Load parses the manifest at path. Unknown fields are an error.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return nil, tracerr.New("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, tracerr.Errorf("manifest: parse %s: %w", abs, err)
	}

	m := raw.toManifest()
	m.Path = abs
	m.normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Save writes m to path, or to m.Path if path is empty.
func Save(m *Manifest, path string) error {
	if m == nil {
		return tracerr.New("manifest: nil manifest")
	}
	if path == "" {
		if m.Path == "" {
			return tracerr.New("manifest: missing path")
		}
		path = m.Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return tracerr.Wrap(err)
	}
	m.Path = abs
	m.normalize()
	if err := m.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m.toDisk()); err != nil {
		return tracerr.Errorf("manifest: marshal %s: %w", abs, err)
	}
	if err := enc.Close(); err != nil {
		return tracerr.Errorf("manifest: encoder close: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}

// Validate reports the first problem with m, if any.
func (m *Manifest) Validate() error {
	switch {
	case m.Name == "":
		return tracerr.Errorf("manifest %s: missing name", m.Path)
	case len(m.Sources) == 0:
		return tracerr.Errorf("manifest %s: no sources", m.Path)
	case m.MaxErrors < 0:
		return tracerr.Errorf("manifest %s: maxErrors must not be negative", m.Path)
	}
	return nil
}

// Dir returns the directory holding the manifest.
func (m *Manifest) Dir() string {
	if m.Path == "" {
		return "."
	}
	return filepath.Dir(m.Path)
}

// Files expands Sources relative to Dir into a sorted list of distinct
// paths. A pattern matching nothing is an error.
func (m *Manifest) Files() ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, src := range m.Sources {
		pattern := src
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(m.Dir(), pattern)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, tracerr.Errorf("manifest: bad source pattern %q: %w", src, err)
		}
		if len(matches) == 0 {
			return nil, tracerr.Errorf("manifest: no files match %q", src)
		}
		for _, f := range matches {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// OutputPath returns where the emitted text of source is written, or ""
// when the manifest has no output directory.
func (m *Manifest) OutputPath(source string) string {
	if m.Output == "" {
		return ""
	}
	dir := m.Output
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(m.Dir(), dir)
	}
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(dir, base+".mini")
}

func (m *Manifest) String() string {
	return fmt.Sprintf("%s (%d sources)", m.Name, len(m.Sources))
}

func (m *Manifest) normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Output = strings.TrimSpace(m.Output)
	sources := m.Sources[:0]
	for _, s := range m.Sources {
		if s = strings.TrimSpace(s); s != "" {
			sources = append(sources, s)
		}
	}
	m.Sources = sources
}

type manifestDisk struct {
	Name      string          `yaml:"name"`
	Sources   []string        `yaml:"sources"`
	Output    string          `yaml:"output,omitempty"`
	MaxErrors int             `yaml:"maxErrors,omitempty"`
	Emit      emitOptionsDisk `yaml:"emit,omitempty"`
}

type emitOptionsDisk struct {
	TypeArguments bool `yaml:"typeArguments,omitempty"`
}

func (d manifestDisk) toManifest() *Manifest {
	return &Manifest{
		Name:      d.Name,
		Sources:   append([]string(nil), d.Sources...),
		Output:    d.Output,
		MaxErrors: d.MaxErrors,
		Emit:      EmitOptions{TypeArguments: d.Emit.TypeArguments},
	}
}

func (m *Manifest) toDisk() manifestDisk {
	return manifestDisk{
		Name:      m.Name,
		Sources:   m.Sources,
		Output:    m.Output,
		MaxErrors: m.MaxErrors,
		Emit:      emitOptionsDisk{TypeArguments: m.Emit.TypeArguments},
	}
}
