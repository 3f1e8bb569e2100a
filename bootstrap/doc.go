// Package bootstrap wires a service together: it validates configuration,
// initializes logging, starts registered components in order, runs lifecycle
// hooks, and blocks until a shutdown signal triggers a graceful stop.
//
// A typical streaming service registers a server component and a channel
// component, mounts the channel's handler on the server, and calls Run:
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil { ... }
//	app.RegisterComponent(srv)
//	app.RegisterComponent(ch)
//	app.Run(context.Background())
package bootstrap
