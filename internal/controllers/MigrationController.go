package controllers

import (
	"iconpicker/internal/migration"
	"iconpicker/internal/providers"
	"net/http"
)

type MigrationController struct {
	logger  providers.Logger
	machine migration.MachineInterface
}

func NewMigrationController(logger providers.Logger, machine migration.MachineInterface) *MigrationController {
	return &MigrationController{logger: logger, machine: machine}
}

func (mc *MigrationController) writeStatus(w http.ResponseWriter, r *http.Request, code int) {
	status, err := mc.machine.Status(r.Context())
	if err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	writeJSON(w, code, status)
}

func (mc *MigrationController) GetStatus(w http.ResponseWriter, r *http.Request) {
	mc.writeStatus(w, r, http.StatusOK)
}

// Start runs the migration to the end; a failed run answers with the error
// and leaves the machine in the error state until Retry.
func (mc *MigrationController) Start(w http.ResponseWriter, r *http.Request) {
	if err := mc.machine.Start(r.Context()); err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	mc.writeStatus(w, r, http.StatusOK)
}

func (mc *MigrationController) Retry(w http.ResponseWriter, r *http.Request) {
	if err := mc.machine.Retry(); err != nil {
		writeError(w, r, mc.logger, err)
		return
	}
	mc.writeStatus(w, r, http.StatusOK)
}
