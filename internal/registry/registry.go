package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// MaxIconRunes caps the icon field at a handful of glyphs so a decorated
// entry cannot blow up the menu layout.
const MaxIconRunes = 8

// defaultDocument is written by Reset. It doubles as schema documentation
// for anyone editing the file by hand.
const defaultDocument = `# gucli command registry
# fields per entry:
#   shell:   interpreter, one of sh|bash|zsh|fish (default sh)
#   command: the invocation, passed verbatim to "<shell> -c"
#   icon:    up to 8 glyphs shown next to the command
#   sn:      send a desktop notification on success too (default true)
commands:
  - command: hostname -A
    icon: "🖥️"
    sn: true
`

// document is the canonical persisted schema. Historical layouts using
// name/active fields are not migrated; they surface as empty commands and
// fail validation.
type document struct {
	Commands []documentEntry `yaml:"commands"`
}

type documentEntry struct {
	Shell   string `yaml:"shell,omitempty"`
	Command string `yaml:"command"`
	Icon    string `yaml:"icon,omitempty"`
	SN      *bool  `yaml:"sn,omitempty"`
}

// Store reads and writes the command document at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store bound to the given document path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load parses the persisted document into a CommandSet and validates every
// entry. Validation is atomic: the first offending entry aborts the load
// with a *ValidationError and nothing is returned.
func (s *Store) Load() (CommandSet, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read command document: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse command document: %w", err)
	}

	set := make(CommandSet, 0, len(doc.Commands))
	seen := make(map[string]struct{}, len(doc.Commands))
	for i, entry := range doc.Commands {
		if entry.Command == "" {
			return nil, &ValidationError{Index: i, Reason: "command cannot be empty"}
		}
		if _, dup := seen[entry.Command]; dup {
			return nil, &ValidationError{Index: i, Reason: fmt.Sprintf("duplicate command %q", entry.Command)}
		}
		seen[entry.Command] = struct{}{}
		if utf8.RuneCountInString(entry.Icon) > MaxIconRunes {
			return nil, &ValidationError{Index: i, Reason: fmt.Sprintf("icon exceeds %d characters", MaxIconRunes)}
		}
		shell := DefaultShell
		if entry.Shell != "" {
			shell = Shell(entry.Shell)
			if !shell.Valid() {
				return nil, &ValidationError{Index: i, Reason: fmt.Sprintf("unknown shell %q", entry.Shell)}
			}
		}
		sn := true
		if entry.SN != nil {
			sn = *entry.SN
		}
		set = append(set, CommandSpec{
			ID:              i,
			Shell:           shell,
			Invocation:      entry.Command,
			Icon:            entry.Icon,
			NotifyOnSuccess: sn,
		})
	}
	return set, nil
}

// Save serializes the set back to storage, replacing the document wholesale.
// It performs no validation: the registry is write-through, and the load
// path is the single place invariants are enforced.
func (s *Store) Save(set CommandSet) error {
	doc := document{Commands: make([]documentEntry, 0, len(set))}
	for _, spec := range set {
		sn := spec.NotifyOnSuccess
		doc.Commands = append(doc.Commands, documentEntry{
			Shell:   string(spec.Shell),
			Command: spec.Invocation,
			Icon:    spec.Icon,
			SN:      &sn,
		})
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode command document: %w", err)
	}
	return writeFileAtomic(s.path, out)
}

// Reset rewrites the document to the built-in default. Without force it is
// a no-op when the document already exists.
func (s *Store) Reset(force bool) error {
	if !force {
		if _, err := os.Stat(s.path); err == nil {
			return nil
		}
	}
	return writeFileAtomic(s.path, []byte(defaultDocument))
}

// writeFileAtomic replaces path in one rename so concurrent readers never
// observe a partially written document.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
