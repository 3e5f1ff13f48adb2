// Package mask decides which lines of a document are hidden and renders the
// document with those lines replaced.
//
// A [Masker] combines the settings from [config.Settings] with a
// [comment.Registry]. For each [Document] it either hides the whole file,
// because the path matches a hidden file pattern or lies inside a hidden
// folder, or scans the lines for annotations with every enabled dialect:
//
//	m := mask.New(settings, comment.DefaultRegistry())
//	res := m.Mask(mask.Document{Path: "src/app.ts", Lines: lines})
//	err := mask.Render(os.Stdout, lines, res.Ranges, settings.Replacement)
//
// A Masker is immutable once created and safe for concurrent use.
package mask
