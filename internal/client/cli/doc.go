// Package cli implements the interactive terminal shell of the client:
// a read–eval–print loop with one command per screen of the application
// (entity lists, detail views, create/edit forms, and the auth flow).
package cli
