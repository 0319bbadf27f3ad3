package iocache

import (
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetLocalCache implements the StoreManager interface.
func (m *MockStoreManager) GetLocalCache() contract.LocalCache {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.LocalCache)
	return store
}

// GetRemoteStore implements the StoreManager interface.
func (m *MockStoreManager) GetRemoteStore() contract.RemoteStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RemoteStore)
	return store
}

// MockLocalCache is a mock implementation of LocalCache for testing.
type MockLocalCache struct {
	mock.Mock
}

var _ contract.LocalCache = &MockLocalCache{} // Compile-time check

// Get implements the LocalCache interface.
func (m *MockLocalCache) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	data, _ := args.Get(0).([]byte)
	return data, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the LocalCache interface.
func (m *MockLocalCache) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// Delete implements the LocalCache interface.
func (m *MockLocalCache) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// Close implements the LocalCache interface.
func (m *MockLocalCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the LocalCache interface.
func (m *MockLocalCache) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}
