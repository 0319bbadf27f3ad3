// Package iocache holds the durable stores: the local pending cache and the remote score store.
package iocache

import (
	"sync"

	"github.com/huangsam/schoolscore/internal/contract"
)

// StoreManagerImpl manages the LocalCache and RemoteStore instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	local        contract.LocalCache
	remote       contract.RemoteStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetLocalCache returns the local pending cache.
func (mgr *StoreManagerImpl) GetLocalCache() contract.LocalCache {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.local
}

// GetRemoteStore returns the remote score store.
func (mgr *StoreManagerImpl) GetRemoteStore() contract.RemoteStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.remote
}
