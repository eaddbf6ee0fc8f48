// Package models defines the data types shared by the RescueMap client:
// users, rescue locations, and feedback entries. The JSON tags match both
// the persisted session record and the payloads of the remote rescue API.
package models

// User is an account in the coordinator directory. Users are immutable
// once created; there is no update or delete operation.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
