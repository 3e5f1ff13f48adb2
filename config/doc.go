// Package config loads, validates and persists streamguard settings.
//
// Settings come from up to two YAML files, a global file shared by every
// project and a workspace file next to the project, followed by CLI flags.
// Later sources override earlier ones:
//
//	defaults < global file < workspace file < flags
//
// A settings file looks like:
//
//	enabled: true
//	replacement: "[ 🔴 HIDDEN ]"
//	hidden_file_patterns:
//	  - .env
//	  - "*.pem"
//	  - config/secrets/**
//	hidden_folders:
//	  - "**/private"
//	dialects: [hide, guard]
//	comment_prefixes:
//	  terraform: ["#", "//"]
//
// [Store] reads and writes the two files through an [afero.Fs], and [Config]
// binds the settings to CLI flags. [Schema] describes the file format as a
// JSON Schema.
package config
