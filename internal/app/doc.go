// Package app provides the orchestration layer for gymtrack.
//
// # Overview
//
// This package wires together configuration, the diagnostic logger, the REST
// client and the UI. It is the composition root: everything else receives
// its dependencies from here.
//
// # Startup
//
//  1. Export variables from an optional .env file (godotenv)
//  2. Load ~/.config/gymtrack/config.toml, then apply GYMTRACK_* overrides
//  3. Open the JSON diagnostic log (zap)
//  4. Build the gymapi client with the configured timeout and endpoints
//  5. Load UI preferences and start the TUI, blocking until exit
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.LoadEnvFile()  .env overrides
//	       ├─────> config.Load()         TOML + environment
//	       ├─────> logging.New()         diagnostic log file
//	       ├─────> gymapi.NewClient()    REST client
//	       ├─────> prefs.Load()          theme, delete confirmation
//	       └─────> ui.Run()              TUI (blocks)
//
// # Modes
//
// List skips the TUI: it drives a tracker.Session to print the member list,
// or the workouts of one member in pane column order, and returns. Demo
// starts an in-memory gymapitest backend seeded with sample data and points
// the client at it; it combines with either mode.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file or log level
//   - Unusable API base URL
//   - Any remote failure in list mode
//
// In the TUI remote failures are never fatal. They are shown in the header
// and written to the diagnostic log.
package app
