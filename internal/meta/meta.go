// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the tool name, env prefix, and config layout in one place.
package meta

const (
	// Project Identity
	AppName   = "flaskgen"
	Slug      = "flaskgen"
	EnvPrefix = "FLASKGEN"

	// Directory Layout
	HomeDir        = ".flaskgen"
	ConfigFilename = "config.yaml"
)
