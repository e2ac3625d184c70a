package gridiron

// Version is the release version. Builds override it via
// -ldflags "-X github.com/gridironlabs/gridiron.Version=...".
var Version = "0.1.0-dev"
