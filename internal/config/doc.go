// Package config manages field presets for editable-demo.
//
// Presets live in a YAML file in the platform config directory
// ($XDG_CONFIG_HOME/editable/fields.yaml on Linux):
//
//	version: 1
//	fields:
//	  - id: title
//	    label: Title
//	    value: Hello
//	    background: "#D0B0DA"
//	    state: displaying
//	preferences:
//	  confirm_delay_ms: 400
//
// A preset only supplies a field's initial committed value and its
// presentation options. Edits made at runtime are never persisted.
package config
