// Package hjarta wires a bootstrapped config.Loader into an Fx application.
//
// NewApp bootstraps the loader from a discovery scope, builds the slog logger
// from the "logging" section, and supplies config.Loader, *slog.Logger and
// logging.Config to the graph. ProvideConfig exposes typed sections:
//
//	app := hjarta.NewApp(
//	    hjarta.WithModules(hjarta.ProvideConfig[ServerConfig]("server")),
//	)
package hjarta
