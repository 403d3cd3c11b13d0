// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Configuration locations
	EnvConfigPath = "HSCAFFOLD_CONFIG_PATH"
	EnvConfigHome = "HSCAFFOLD_CONFIG_HOME"

	// Behavior overrides (accepted values: 1/true/yes, case-insensitive)
	EnvForce         = "HSCAFFOLD_FORCE"
	EnvNoInteractive = "HSCAFFOLD_NO_INTERACTIVE"
	EnvDryRun        = "HSCAFFOLD_DRY_RUN"
)
