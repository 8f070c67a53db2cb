// Package ent holds the ent schema definitions and the generated client for
// the SQL storage backends. Run go generate to produce the client code.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
