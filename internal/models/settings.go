// ABOUTME: Settings model for persisted application preferences.
// ABOUTME: Holds the first-run welcome flag and import bookkeeping.

package models

type Settings struct {
	ShowWelcome bool `json:"show_welcome"`

	// ImportedExports lists export document IDs already merged into the store.
	ImportedExports []string `json:"imported_exports,omitempty"`
}

func DefaultSettings() *Settings {
	return &Settings{ShowWelcome: true}
}
