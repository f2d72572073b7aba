// Package script loads and writes event scripts for the typetour CLI.
//
// An event script is a file listing web events to inspect in place of the
// built-in defaults. Two formats are supported:
//
//   - YAML (.yaml, .yml), decoded with gopkg.in/yaml.v3
//   - JSON with comments (.json, .jsonc), stripped with
//     github.com/tidwall/jsonc and decoded with encoding/json
//
// Both formats share the same document shape:
//
//	events:
//	  - type: key-press
//	    key: x
//	  - type: paste
//	    text: my text
//	  - type: click
//	    x: 20
//	    y: 80
//	  - type: page-load
package script
