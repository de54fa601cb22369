package models

type MigrationState string

const (
	MigrationReady     MigrationState = "ready"
	MigrationMigrating MigrationState = "migrating"
	MigrationCompleted MigrationState = "completed"
	MigrationError     MigrationState = "error"
)

// MigrationStatus is what the settings screen polls while a migration runs.
type MigrationStatus struct {
	State    MigrationState `json:"state"`
	Error    string         `json:"error,omitempty"`
	Required bool           `json:"required"`
}
