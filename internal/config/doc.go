// Package config provides the configuration system for Modal.
//
// Configuration is small and layered, with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  3. Command Line Flags      │  ← Highest priority (applied by cmd/modal)
//	├─────────────────────────────┤
//	│  2. Environment Variables   │  ← MODAL_LOG_LEVEL, MODAL_LOG_FILE
//	├─────────────────────────────┤
//	│  1. Config File             │  ← ~/.config/modal/config.toml
//	├─────────────────────────────┤
//	│  0. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The file format follows the extension: .toml (go-toml/v2) or
// .yaml/.yml (yaml.v3). A missing file is not an error.
//
// # Example
//
//	[logging]
//	level = "debug"
//	file = "/tmp/modal.log"
//
//	[ui]
//	statusLine = true
//
// # Live Reload
//
// Watcher uses fsnotify to follow the config file and hands every
// successfully reloaded Config to a callback. Only settings that are safe
// to change at runtime (logging.level, ui.statusLine) are expected to be
// re-applied by the caller.
//
// Key bindings and editing behavior are not configurable.
package config
