// Package config defines the configuration resolution contract and the bootstrap
// procedure that locates an implementation of it.
//
// # Resolution
//
// A Loader maps a Path and a target reflect.Type to an Outcome, which is exactly
// one of Present, Absent or Failed. Absent is a normal branch, never an error to
// retry, and never a Present value. Failures carry a Kind:
//   - KindInvalidArgument: nil loader or target type, or a malformed path segment
//   - KindInvalidTargetType: the provider cannot load the requested type
//   - KindFailure: I/O, parse and validation problems
//   - KindDiscovery: bootstrap could not find a usable provider
//
// Resolve is the typed entry point:
//
//	cfg, err := config.Resolve[*APIConfig](loader, config.MustPath("services", "api")).Get()
//
// # Paths
//
// Paths are sequences of keys made of ASCII letters, digits, '_' and '-'. Their
// textual form joins keys with a colon:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	""                          -> root (entire document)
//
// # Bootstrap
//
// Providers register a factory in a Registry, usually from an init function:
//
//	func init() {
//	    config.MustRegisterLoader(config.DefaultRegistry, "mine", newLoader)
//	}
//
// Bootstrap takes the first registration of the scope, then asks it to resolve a
// Loader at the root path. A provider answers Absent to be used as is, or returns
// a richer Loader to take its place. Bootstrapper caches the result for callers
// that need one handle per process.
//
// # Sources
//
// Parser, DataFetcher, Validator and Defaulter are the extension points used by
// the document provider in config/provider/document.
package config
