// Package cli implements the interactive RescueMap client: a REPL whose
// commands correspond to the application's views. Public views (login,
// signup) are always reachable; protected views (home, map, contact) go
// through the route guard, which blocks them while the persisted session
// is being restored and redirects to the login view when no one is
// logged in.
package cli
