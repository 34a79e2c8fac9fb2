package cart

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager 管理每個session各自的購物車
// 購物車本身不處理併發，跨session的隔離在這一層提供
type SessionManager struct {
	mu     sync.RWMutex
	stores map[uuid.UUID]*Store
}

func NewSessionManager() *SessionManager {
	return &SessionManager{stores: make(map[uuid.UUID]*Store)}
}

// Begin 建立新session與空購物車
func (m *SessionManager) Begin() (uuid.UUID, *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sessionID := uuid.New()
	store := NewStore()
	m.stores[sessionID] = store
	return sessionID, store
}

// Get 取得session的購物車，session不存在時回傳nil
func (m *SessionManager) Get(sessionID uuid.UUID) *Store {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stores[sessionID]
}

// Attach 將還原的購物車掛回session，redis快照還原用
func (m *SessionManager) Attach(sessionID uuid.UUID, store *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stores[sessionID] = store
}

// End 結束session並丟棄購物車
func (m *SessionManager) End(sessionID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
