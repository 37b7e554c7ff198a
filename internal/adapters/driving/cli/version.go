package cli

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"
