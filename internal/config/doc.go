// Package config loads gymtrack's configuration file.
//
// # Overview
//
// Load reads a TOML file, fills every missing or blank field with a
// default, and finally applies environment overrides. A missing file is
// not an error: gymtrack runs against a backend on localhost without any
// configuration.
//
// # Resolution Order
//
//  1. Defaults
//  2. The config file (explicit path, or ~/.config/gymtrack/config.toml)
//  3. GYMTRACK_API_URL and GYMTRACK_LOG_LEVEL from the environment
//
// LoadEnvFile exports a dotenv file into the environment beforehand. It
// never overwrites variables that are already set.
//
// # Default Values
//
//   - api_url: http://127.0.0.1:8080/api
//   - request_timeout: 5s
//   - log_file: ~/.local/state/gymtrack/gymtrack.log
//   - log_level: info
//   - endpoints: /members, /workout (list), /workouts (create/update/delete)
//
// # TOML Format
//
//	api_url = "http://127.0.0.1:8080/api"
//	request_timeout = "5s"
//	log_file = "~/.local/state/gymtrack/gymtrack.log"
//	log_level = "info"
//
//	[endpoints]
//	members = "/members"
//	list_workouts = "/workout"
//	workouts = "/workouts"
//
// The list endpoint differs from the mutation endpoint on the reference
// backend. Set list_workouts = "/workouts" for backends that serve both
// from one collection.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files,
// malformed TOML and a request_timeout that is not a positive duration.
package config
