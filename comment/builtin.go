package comment

var (
	cBlock    = Block{Start: "/*", End: "*/"}
	markupBlk = Block{Start: "<!--", End: "-->"}
)

// Builtin returns the built-in language table, keyed by editor language
// identifiers.
func Builtin() []Language {
	return []Language{
		{ID: "typescript", DisplayName: "TypeScript", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".ts", ".mts", ".cts"}},
		{ID: "javascript", DisplayName: "JavaScript", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".js", ".mjs", ".cjs"}},
		{ID: "typescriptreact", DisplayName: "TypeScript React", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".tsx"}},
		{ID: "javascriptreact", DisplayName: "JavaScript React", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".jsx"}},
		{ID: "go", DisplayName: "Go", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".go"}},
		{ID: "rust", DisplayName: "Rust", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".rs"}},
		{ID: "c", DisplayName: "C", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".c", ".h"}},
		{ID: "cpp", DisplayName: "C++", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".cc", ".cpp", ".cxx", ".hh", ".hpp"}},
		{ID: "csharp", DisplayName: "C#", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".cs"}},
		{ID: "java", DisplayName: "Java", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".java"}},
		{ID: "kotlin", DisplayName: "Kotlin", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".kt", ".kts"}},
		{ID: "swift", DisplayName: "Swift", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".swift"}},
		{ID: "scala", DisplayName: "Scala", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".scala", ".sc"}},
		{ID: "dart", DisplayName: "Dart", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".dart"}},
		{ID: "php", DisplayName: "PHP", SingleLine: []string{"//", "#"}, Block: cBlock, Extensions: []string{".php"}},
		{ID: "python", DisplayName: "Python", SingleLine: []string{"#"}, Block: Block{Start: `"""`, End: `"""`}, Extensions: []string{".py", ".pyi"}},
		{ID: "ruby", DisplayName: "Ruby", SingleLine: []string{"#"}, Block: Block{Start: "=begin", End: "=end"}, Extensions: []string{".rb", "Gemfile", "Rakefile"}},
		{ID: "shellscript", DisplayName: "Shell Script", SingleLine: []string{"#"}, Extensions: []string{".sh", ".bash", ".zsh"}},
		{ID: "powershell", DisplayName: "PowerShell", SingleLine: []string{"#"}, Block: Block{Start: "<#", End: "#>"}, Extensions: []string{".ps1", ".psm1"}},
		{ID: "perl", DisplayName: "Perl", SingleLine: []string{"#"}, Extensions: []string{".pl", ".pm"}},
		{ID: "r", DisplayName: "R", SingleLine: []string{"#"}, Extensions: []string{".r", ".R"}},
		{ID: "yaml", DisplayName: "YAML", SingleLine: []string{"#"}, Extensions: []string{".yaml", ".yml"}},
		{ID: "toml", DisplayName: "TOML", SingleLine: []string{"#"}, Extensions: []string{".toml"}},
		{ID: "dotenv", DisplayName: "Dotenv", SingleLine: []string{"#"}, Extensions: []string{".env"}},
		{ID: "dockerfile", DisplayName: "Dockerfile", SingleLine: []string{"#"}, Extensions: []string{"Dockerfile", ".dockerfile"}},
		{ID: "makefile", DisplayName: "Makefile", SingleLine: []string{"#"}, Extensions: []string{"Makefile", "GNUmakefile", ".mk"}},
		{ID: "elixir", DisplayName: "Elixir", SingleLine: []string{"#"}, Extensions: []string{".ex", ".exs"}},
		{ID: "hcl", DisplayName: "HCL", SingleLine: []string{"#", "//"}, Block: cBlock, Extensions: []string{".hcl", ".tf", ".tfvars"}},
		{ID: "lua", DisplayName: "Lua", SingleLine: []string{"--"}, Block: Block{Start: "--[[", End: "]]"}, Extensions: []string{".lua"}},
		{ID: "sql", DisplayName: "SQL", SingleLine: []string{"--"}, Block: cBlock, Extensions: []string{".sql"}},
		{ID: "css", DisplayName: "CSS", Block: cBlock, Extensions: []string{".css"}},
		{ID: "scss", DisplayName: "SCSS", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".scss"}},
		{ID: "less", DisplayName: "Less", SingleLine: []string{"//"}, Block: cBlock, Extensions: []string{".less"}},
		{ID: "html", DisplayName: "HTML", Block: markupBlk, Extensions: []string{".html", ".htm"}},
		{ID: "xml", DisplayName: "XML", Block: markupBlk, Extensions: []string{".xml", ".svg"}},
		{ID: "markdown", DisplayName: "Markdown", Block: markupBlk, Extensions: []string{".md", ".markdown"}},
		{ID: "vue", DisplayName: "Vue", SingleLine: []string{"//"}, Block: markupBlk, Extensions: []string{".vue"}},
		{ID: "svelte", DisplayName: "Svelte", SingleLine: []string{"//"}, Block: markupBlk, Extensions: []string{".svelte"}},
	}
}
