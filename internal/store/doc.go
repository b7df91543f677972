// Package store persists exported collection records as JSON files.
package store
