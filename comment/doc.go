// Package comment holds per-language comment syntax used to scope annotation
// markers to comments.
//
// A [Registry] maps editor language identifiers (such as "typescript" or
// "python") to a [Language], which records the language's single-line comment
// prefixes and its block comment delimiters. [Registry.Prefixes] resolves the
// prefix list handed to the annotation scanner:
//
//	reg := comment.DefaultRegistry()
//	prefixes := reg.Prefixes("lua") // ["--"]
//
// Block-only languages such as HTML resolve to their block start token, and
// unknown identifiers resolve to [FallbackPrefixes] so scanning keeps working
// for languages the registry has never heard of.
//
// Entries can be added with [Registry.Register], and the single-line prefixes
// of any entry can be replaced in bulk with [Registry.ApplyOverrides].
package comment
