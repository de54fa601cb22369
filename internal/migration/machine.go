// Package migration moves inline plugin configuration into hosted assets.
package migration

import (
	"context"
	"errors"
	"fmt"
	"iconpicker/internal/cms"
	"iconpicker/internal/models"
	"iconpicker/internal/providers"
	"iconpicker/internal/services"
	"iconpicker/internal/structures"
	"sync"
	"time"
)

const (
	NoticeCompleted = "Migration completed successfully!"
	AlertFailed     = "Migration failed. Please try again or contact support."

	DefaultReloadDelay = 2 * time.Second
)

var (
	ErrNotRequired   = errors.New("migration not required")
	ErrInProgress    = errors.New("migration already in progress")
	ErrRetryRequired = errors.New("previous migration failed, retry first")
	ErrNotFailed     = errors.New("no failed migration to retry")
)

type MachineInterface interface {
	Status(ctx context.Context) (models.MigrationStatus, error)
	Start(ctx context.Context) error
	Retry() error
	State() models.MigrationState
	OnReload(hook func())
	Stop()
}

// Machine drives a single migration: ready, migrating, then completed or
// error. Only Retry leaves error.
type Machine struct {
	params   cms.ParameterStore
	assets   services.AssetServiceInterface
	notifier cms.Notifier
	metrics  providers.MetricsProviderInterface
	logger   providers.Logger
	delay    time.Duration

	mu      sync.Mutex
	running bool
	state   models.MigrationState
	cause   string
	hooks   []func()
	reload  *time.Timer
}

func NewMachine(conf *structures.Config, params cms.ParameterStore, assets services.AssetServiceInterface, notifier cms.Notifier, metrics providers.MetricsProviderInterface, logger providers.Logger) MachineInterface {
	delay := conf.Migration.ReloadDelay
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	return &Machine{
		params:   params,
		assets:   assets,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		delay:    delay,
		state:    models.MigrationReady,
	}
}

func (m *Machine) State() models.MigrationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Status reports the machine state and whether the stored parameters,
// loaded fresh, still need migrating.
func (m *Machine) Status(ctx context.Context) (models.MigrationStatus, error) {
	params, err := m.params.Load(ctx)
	if err != nil {
		return models.MigrationStatus{}, fmt.Errorf("load plugin parameters: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return models.MigrationStatus{
		State:    m.state,
		Error:    m.cause,
		Required: models.NeedsMigration(params),
	}, nil
}

// OnReload registers a hook run once the completed state has been shown for
// the reload delay.
func (m *Machine) OnReload(hook func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

// Start migrates the stored legacy record once. The run is claimed before
// the parameters are read and released only after the write, so concurrent
// callers never act on a stale record. Cancelling ctx does not abort a run.
func (m *Machine) Start(ctx context.Context) error {
	m.mu.Lock()
	switch {
	case m.running, m.state == models.MigrationMigrating:
		m.mu.Unlock()
		return ErrInProgress
	case m.state == models.MigrationError:
		m.mu.Unlock()
		return ErrRetryRequired
	case m.state == models.MigrationCompleted:
		m.mu.Unlock()
		return ErrNotRequired
	}
	m.running = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
	}()

	ctx = context.WithoutCancel(ctx)
	params, err := m.params.Load(ctx)
	if err != nil {
		return fmt.Errorf("load plugin parameters: %w", err)
	}
	if !models.NeedsMigration(params) {
		return ErrNotRequired
	}

	m.mu.Lock()
	m.state = models.MigrationMigrating
	m.cause = ""
	m.mu.Unlock()

	m.logger.Infof(providers.TypeMigration, "Migration started")
	if err = m.migrate(ctx, params); err != nil {
		m.fail(err)
		return fmt.Errorf("%w: %w", models.ErrMigration, err)
	}
	m.complete()
	return nil
}

func (m *Machine) migrate(ctx context.Context, params models.Parameters) error {
	ids, err := m.assets.CreateBundle(ctx, models.AssetBundle{
		Icons:   *params.Icons,
		Filters: *params.Filters,
		Styles:  *params.Styles,
	})
	if err != nil {
		return err
	}
	m.logger.Infof(providers.TypeMigration, "Assets created: icons=%s filters=%s styles=%s", ids.Icons, ids.Filters, ids.Styles)

	return m.params.Replace(ctx, models.WithAssets(params.GeneralOptions, ids, params.MigratedFromLegacyPlugin))
}

func (m *Machine) fail(err error) {
	m.mu.Lock()
	m.state = models.MigrationError
	m.cause = err.Error()
	m.mu.Unlock()

	m.metrics.IncMigrationsTotal("failed")
	m.logger.Errorf(providers.TypeMigration, "Migration error: %s", err)
	m.notifier.Alert(AlertFailed)
}

func (m *Machine) complete() {
	m.mu.Lock()
	m.state = models.MigrationCompleted
	if m.reload != nil {
		m.reload.Stop()
	}
	m.reload = time.AfterFunc(m.delay, m.fireReload)
	m.mu.Unlock()

	m.metrics.IncMigrationsTotal("completed")
	m.logger.Infof(providers.TypeMigration, "Migration completed")
	m.notifier.Notice(NoticeCompleted)
}

func (m *Machine) fireReload() {
	m.mu.Lock()
	if m.state == models.MigrationCompleted {
		m.state = models.MigrationReady
	}
	m.reload = nil
	hooks := append([]func(){}, m.hooks...)
	m.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

func (m *Machine) Retry() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != models.MigrationError {
		return ErrNotFailed
	}
	m.state = models.MigrationReady
	m.cause = ""
	m.logger.Infof(providers.TypeMigration, "Migration reset for retry")
	return nil
}

// Stop cancels a pending reload.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.reload != nil {
		m.reload.Stop()
		m.reload = nil
	}
}
