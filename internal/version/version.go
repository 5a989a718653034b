package version

// AppVersion is the current ragctl release version.
const AppVersion = "0.1.0"
