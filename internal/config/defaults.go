package config

const (
	// DefaultFixtureExt is the extension of golden diagnostic fixtures.
	DefaultFixtureExt = ".stderr"
	// DefaultStagingDir is where newly bootstrapped fixtures are staged
	// for manual review, relative to the calling test's working directory.
	DefaultStagingDir = "wip"
	// DefaultEnvFile is the optional env file loaded for overrides.
	DefaultEnvFile = ".env"
	// DefaultReportFile is the JSON run report written into the project dir.
	DefaultReportFile = "results.json"

	// EnvTargetDir overrides the shared build-artifact directory.
	EnvTargetDir = "TRYBUILD_TARGET_DIR"
	// EnvStagingDir overrides the staging directory.
	EnvStagingDir = "TRYBUILD_WIP_DIR"
)
