package version

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version followed by commit and build date when
// they were set at build time
func GetFullVersion() string {
	if Version == "dev" {
		return "dev"
	}
	full := Version
	if GitCommit != "unknown" {
		full += " (" + GitCommit
		if BuildDate != "unknown" {
			full += ", built " + BuildDate
		}
		full += ")"
	}
	return full
}
