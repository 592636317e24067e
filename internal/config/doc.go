// Package config provides the configuration for scriptlsp.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← applied by the caller
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← SCRIPTLSP_EDITOR_LANGUAGE_ID, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← scriptlsp.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// # Settings
//
//	[editor]
//	language_id = "python"   # languageId sent in didOpen
//	uri_scheme = "inmemory"  # scheme of generated model URIs
//
//	[logging]
//	level = "warn"           # debug, info, warn, error, off
//
//	[template]
//	path = ""                # template file (.toml, .yaml, .yml)
//
// Unknown keys are rejected so that typos surface early.
package config
