package mask

import (
	"cmp"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"go.jacobcolvin.com/streamguard/annotation"
	"go.jacobcolvin.com/streamguard/comment"
	"go.jacobcolvin.com/streamguard/config"
	"go.jacobcolvin.com/streamguard/pathmatch"
)

// Document is the input to [Masker.Mask].
type Document struct {
	// Path identifies the document for file and folder pattern matching.
	// It may be relative or absolute, with either separator.
	Path string
	// LanguageID selects the comment syntax for scoped dialects. When
	// empty, the language is inferred from Path.
	LanguageID string
	// Lines holds the document text without line terminators.
	Lines []string
}

// Result is the output of [Masker.Mask].
type Result struct {
	// Ranges lists masked line ranges, sorted by start line. Ranges may
	// overlap.
	Ranges []annotation.Range `json:"ranges" yaml:"ranges"`
	// WholeFile is set when the document is hidden by a file or folder
	// pattern. Ranges then covers every line.
	WholeFile bool `json:"whole_file" yaml:"whole_file"`
}

// Masked reports whether line i is inside any masked range.
func (r Result) Masked(i int) bool {
	for _, rng := range r.Ranges {
		if rng.Contains(i) {
			return true
		}
	}

	return false
}

// Lines returns the number of distinct masked lines.
func (r Result) Lines() int {
	seen := make(map[int]struct{})
	for _, rng := range r.Ranges {
		for i := rng.Start; i <= rng.End; i++ {
			seen[i] = struct{}{}
		}
	}

	return len(seen)
}

// Masker computes masked ranges for documents.
//
// Create instances with [New].
type Masker struct {
	registry    *comment.Registry
	replacement string
	files       pathmatch.Set
	folders     pathmatch.Set
	root        string
	dialects    []annotation.Dialect
	enabled     bool
}

// Option configures a [Masker].
type Option func(*Masker)

// WithRoot sets the directory that absolute document paths are made relative
// to before file and folder patterns are matched. Absolute paths outside dir
// are matched as given.
func WithRoot(dir string) Option {
	return func(m *Masker) {
		m.root = filepath.Clean(dir)
	}
}

// New creates a [Masker] for settings. The languages and comment prefix
// overrides in settings are applied to registry, in that order, so an
// override also affects a language registered by the same settings. A nil
// registry is replaced by [comment.DefaultRegistry]. Unknown dialect names
// are skipped; use [config.Settings.Validate] to reject them first.
func New(settings config.Settings, registry *comment.Registry, opts ...Option) *Masker {
	if registry == nil {
		registry = comment.DefaultRegistry()
	}

	for _, lang := range settings.Languages {
		registry.Register(lang)
	}

	if len(settings.CommentPrefixes) > 0 {
		registry.ApplyOverrides(settings.CommentPrefixes)
	}

	m := &Masker{
		registry:    registry,
		replacement: settings.Replacement,
		files:       pathmatch.NewSet(settings.HiddenFilePatterns...),
		folders:     pathmatch.NewSet(settings.HiddenFolders...),
		enabled:     settings.Enabled,
	}

	for _, opt := range opts {
		opt(m)
	}

	for _, name := range settings.Dialects {
		d, ok := annotation.Lookup(name)
		if !ok {
			slog.Warn("skipping unknown dialect", slog.String("dialect", name))

			continue
		}

		m.dialects = append(m.dialects, d)
	}

	return m
}

// Enabled reports whether masking is turned on.
func (m *Masker) Enabled() bool {
	return m.enabled
}

// Replacement returns the placeholder text for masked lines.
func (m *Masker) Replacement() string {
	return m.replacement
}

// Registry returns the comment registry used by m.
func (m *Masker) Registry() *comment.Registry {
	return m.registry
}

// HidesPath reports whether path matches a hidden file pattern, or path or
// one of its ancestor directories matches a hidden folder pattern. The path
// is lexically cleaned first, and made relative to the root set with
// [WithRoot] when absolute. The enabled setting is not consulted.
func (m *Masker) HidesPath(path string) bool {
	path = pathmatch.Normalize(m.relative(path))

	return m.files.MatchesAny(path) || m.folders.MatchesWithin(path)
}

func (m *Masker) relative(path string) string {
	if m.root == "" || !filepath.IsAbs(path) {
		return path
	}

	rel, err := filepath.Rel(m.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}

	return rel
}

// Mask computes the masked ranges of doc. Nothing is masked while masking is
// disabled.
func (m *Masker) Mask(doc Document) Result {
	if !m.enabled {
		return Result{}
	}

	if m.HidesPath(doc.Path) {
		res := Result{WholeFile: true}
		if len(doc.Lines) > 0 {
			res.Ranges = []annotation.Range{{Start: 0, End: len(doc.Lines) - 1}}
		}

		slog.Debug("masked whole file", slog.String("path", doc.Path))

		return res
	}

	prefixes := m.Prefixes(doc)

	var ranges []annotation.Range
	for _, d := range m.dialects {
		ranges = append(ranges, d.Scan(doc.Lines, prefixes)...)
	}

	slices.SortStableFunc(ranges, func(a, b annotation.Range) int {
		return cmp.Compare(a.Start, b.Start)
	})

	slog.Debug("masked annotated lines",
		slog.String("path", doc.Path),
		slog.Int("ranges", len(ranges)),
	)

	return Result{Ranges: ranges}
}

// Prefixes returns the comment prefixes used to scope annotations in doc.
// An explicit language ID always resolves, falling back to
// [comment.FallbackPrefixes] for unknown IDs. Otherwise the language is
// inferred from the path, and nil is returned when that fails.
func (m *Masker) Prefixes(doc Document) []string {
	if doc.LanguageID != "" {
		return m.registry.Prefixes(doc.LanguageID)
	}

	lang, ok := m.registry.ForPath(doc.Path)
	if !ok {
		return nil
	}

	return m.registry.Prefixes(lang.ID)
}
