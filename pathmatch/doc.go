// Package pathmatch decides whether file and folder paths match glob
// patterns.
//
// Patterns are slash-separated and support three kinds of segment:
//
//   - "**" matches zero or more whole path segments.
//   - A segment containing "*" matches one path segment, with each "*"
//     matching any run of characters other than "/".
//   - Any other segment matches one path segment literally.
//
// Matching is anchored at both ends: the whole path must match, not a
// substring of it. Paths may use either separator and are lexically cleaned
// by [Normalize] before matching, so "./src/.env" and "src/lib/../.env" are
// both compared as "src/.env". Patterns are expected in
// forward-slash form.
//
// [MatchesAny] is for files. A pattern matches when it matches the full path
// or, for patterns without a slash, the path's final segment, so ".env" and
// "*.pem" match files anywhere in the tree:
//
//	pathmatch.MatchesAny("src/.env", []string{".env"})              // true
//	pathmatch.MatchesAny(`src\secrets\key.txt`, []string{"src/secrets/**"}) // true
//
// [MatchesFolder] is for directories and only compares full paths. Use a
// [Set] to compile a pattern list once and match it many times.
package pathmatch
