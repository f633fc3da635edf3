package types

// AppName is the command name shown in help and logs
const AppName = "tagge"

// Version is the application version, overridden at build time via -ldflags
var Version = "v0.1.0"
