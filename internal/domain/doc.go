// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (icons, icon sets, collection records) and contracts
// (interfaces) only.
package domain
