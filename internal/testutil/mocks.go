package testutil

import (
	"context"
	"fmt"
	json "github.com/goccy/go-json"
	"iconpicker/internal/cms"
	"iconpicker/internal/models"
	"iconpicker/internal/providers"
	"strconv"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Entries returns a copy of the entries logged at level.
func (m *MockLogger) Entries(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
	return nil
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu          sync.Mutex
	AssetErrors map[string]int
	Migrations  map[string]int
	AssetOps    map[string]int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		AssetErrors: make(map[string]int),
		Migrations:  make(map[string]int),
		AssetOps:    make(map[string]int),
	}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}

func (m *MockMetrics) ObserveAssetDuration(operation string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AssetOps[operation]++
}

func (m *MockMetrics) IncAssetErrors(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AssetErrors[operation]++
}

func (m *MockMetrics) IncMigrationsTotal(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Migrations[outcome]++
}

func (m *MockMetrics) MigrationCount(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Migrations[outcome]
}

type CreatedAsset struct {
	ID          string
	Filename    string
	ContentType string
	Content     string
}

// MockAssetStore implements cms.AssetStore in memory.
// CreateErr is keyed by filename, FetchErr by asset id.
type MockAssetStore struct {
	mu         sync.Mutex
	Contents   map[string]string
	Created    []CreatedAsset
	Deleted    []string
	FetchCalls int
	CreateErr  map[string]error
	FetchErr   map[string]error
	DeleteErr  error
	// CreateDelay holds back every successful upload.
	CreateDelay time.Duration
	nextID      int
}

func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{
		Contents:  make(map[string]string),
		CreateErr: make(map[string]error),
		FetchErr:  make(map[string]error),
	}
}

func (m *MockAssetStore) CreateAsset(ctx context.Context, content, filename, contentType string) (string, error) {
	m.mu.Lock()
	err := m.CreateErr[filename]
	delay := m.CreateDelay
	m.mu.Unlock()
	if err != nil {
		return "", err
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := "asset-" + strconv.Itoa(m.nextID)
	m.Contents[id] = content
	m.Created = append(m.Created, CreatedAsset{ID: id, Filename: filename, ContentType: contentType, Content: content})
	return id, nil
}

func (m *MockAssetStore) FetchAsset(_ context.Context, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	if err := m.FetchErr[id]; err != nil {
		return "", err
	}
	content, ok := m.Contents[id]
	if !ok {
		return "", fmt.Errorf("failed to fetch asset content: 404")
	}
	return content, nil
}

func (m *MockAssetStore) DeleteAsset(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Contents, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// FailCreate makes uploads of filename fail with err; a nil err clears it.
func (m *MockAssetStore) FailCreate(filename string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.CreateErr, filename)
		return
	}
	m.CreateErr[filename] = err
}

// Put stores content under a fixed id.
func (m *MockAssetStore) Put(id, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Contents[id] = content
}

// CreatedByName returns the upload made for filename, if any.
func (m *MockAssetStore) CreatedByName(filename string) (CreatedAsset, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Created {
		if a.Filename == filename {
			return a, true
		}
	}
	return CreatedAsset{}, false
}

func (m *MockAssetStore) CreatedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Created)
}

// MockParameterStore implements cms.ParameterStore in memory.
type MockParameterStore struct {
	mu         sync.Mutex
	Params     models.Parameters
	LoadErr    error
	ReplaceErr error
	Replaced   []models.Parameters

	// LoadDelay and ReplaceDelay hold a call before it reads or writes.
	LoadDelay    time.Duration
	ReplaceDelay time.Duration
}

func (m *MockParameterStore) Load(_ context.Context) (models.Parameters, error) {
	time.Sleep(m.LoadDelay)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return models.Parameters{}, m.LoadErr
	}
	return m.Params, nil
}

func (m *MockParameterStore) Replace(_ context.Context, params models.Parameters) error {
	time.Sleep(m.ReplaceDelay)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Params = params
	m.Replaced = append(m.Replaced, params)
	return nil
}

// Snapshot is the stored record serialized, for byte-level comparisons.
func (m *MockParameterStore) Snapshot() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, _ := json.Marshal(m.Params)
	return data
}

func (m *MockParameterStore) ReplaceCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Replaced)
}

// MockFieldStore implements cms.FieldStore. Updated maps field id to extension id.
type MockFieldStore struct {
	mu        sync.Mutex
	Fields    []cms.Field
	ListErr   error
	UpdateErr map[string]error
	Updated   map[string]string
}

func NewMockFieldStore(fields ...cms.Field) *MockFieldStore {
	return &MockFieldStore{Fields: fields, UpdateErr: make(map[string]error), Updated: make(map[string]string)}
}

func (m *MockFieldStore) FieldsUsingPlugin(_ context.Context) ([]cms.Field, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]cms.Field(nil), m.Fields...), nil
}

func (m *MockFieldStore) UpdateEditor(_ context.Context, fieldID, extensionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.UpdateErr[fieldID]; err != nil {
		return err
	}
	m.Updated[fieldID] = extensionID
	return nil
}

type ItemWrite struct {
	ItemID    string
	FieldPath string
	Value     *string
}

// MockItemWriter implements cms.ItemWriter.
type MockItemWriter struct {
	mu     sync.Mutex
	Writes []ItemWrite
	Err    error
}

func (m *MockItemWriter) SetFieldValue(_ context.Context, itemID, fieldPath string, value *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Writes = append(m.Writes, ItemWrite{ItemID: itemID, FieldPath: fieldPath, Value: value})
	return nil
}

// MockNotifier implements cms.Notifier.
type MockNotifier struct {
	mu      sync.Mutex
	Notices []string
	Alerts  []string
}

func (m *MockNotifier) Notice(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notices = append(m.Notices, message)
}

func (m *MockNotifier) Alert(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Alerts = append(m.Alerts, message)
}

func (m *MockNotifier) NoticeList() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Notices...)
}

func (m *MockNotifier) AlertList() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Alerts...)
}
