// Package meetapi implements the meet-api service, a thin backend in front
// of an OpenVidu Meet server.
//
// The service provides:
//   - Room creation, lookup, listing and deletion keyed by a client-chosen name
//   - Recording listing across registered rooms, deletion, URLs and media streaming
//   - Periodic reconciliation of the local room registry against the Meet server
//   - Optional JWT authentication via Keycloak
//
// Configuration is read from the environment; see internal/config.
package meetapi
