// Package gymapi provides an HTTP client for the workout tracking REST API.
//
// # Overview
//
// The backend exposes members and their workouts as JSON resources below a
// base URL (usually ".../api" behind a reverse proxy). This package wraps
// those resources in a small typed client and the wire types the rest of
// gymtrack works with.
//
// # Endpoints
//
//   - GET    /members                  list members
//   - GET    /workout?memberId=<id>    list workouts for a member
//   - POST   /workouts                 create a workout
//   - PUT    /workouts/{id}            update a workout
//   - DELETE /workouts/{id}            delete a workout
//
// The list path is singular while the mutation paths are plural. That is how
// the reference backend routes them; Endpoints lets a deployment reconcile
// the two without a rebuild.
//
// # Client Usage
//
//	client, err := gymapi.NewClient("http://localhost:8080/api",
//		gymapi.WithTimeout(5*time.Second),
//		gymapi.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	members, err := client.ListMembers(ctx)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Send Accept: application/json and a gymtrack User-Agent
//   - Carry a fresh X-Request-ID (uuid) that is also logged
//   - Return *StatusError for HTTP status >= 400
//
// # IDs
//
// The backend may hand out numeric or string identifiers. ID decodes both
// and re-encodes digit-only values as JSON numbers, so writes echo back the
// type the server used.
//
// # Testing
//
// The Backend interface is what the tracker depends on. The gymapitest
// subpackage runs an in-memory implementation of the REST contract on a
// local listener for end-to-end tests.
package gymapi
