// Package sdk is the Go client for the Gestory campus administration API.
//
// The Client wraps every backend call behind a single token-aware gateway:
// requests carry the bearer token from the configured CredentialStore, and an
// authorization failure on any authenticated call clears the stored session
// and notifies the registered handler once. Auth operations (Login, Logout,
// UpdateProfile, ChangePassword) manage the session; the typed domain
// methods (buildings, events, categories, analytics, predictions) are thin
// wrappers over the REST endpoints.
package sdk
