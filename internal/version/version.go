package version

// Name is the command name shown in help and version output.
var Name = "aiprompt"

// Version is overridden at build time with
//
//	-ldflags "-X aiprompt/internal/version.Version=..."
var Version = "0.1.0"
