// Package testutils provides shared test helpers: a scripted dice roller,
// simulation fixtures and an in-memory Redis server
package testutils
