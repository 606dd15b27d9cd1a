// Package autoload registers a document loader in config.DefaultRegistry.
//
// Import it for its side effect:
//
//	import _ "github.com/0xalexb/hjarta-config/config/provider/autoload"
//
// The loader reads the file named by HJARTA_CONFIG_FILE (config.yaml when unset),
// choosing the YAML or TOML parser by extension. HJARTA_CONFIG_WATCH=true reloads
// the file when it changes. Factory errors surface from config.Bootstrap as
// discovery failures.
package autoload
