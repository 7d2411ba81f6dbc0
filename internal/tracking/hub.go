package tracking

import (
	"sync"
	"time"

	"github.com/yourorg/wayfindsg/internal/models"
)

// Update is one tracked position pushed to caregivers watching a share.
type Update struct {
	ShareID   string                 `json:"share_id"`
	Latitude  float64                `json:"latitude"`
	Longitude float64                `json:"longitude"`
	Deviation *models.DeviationAlert `json:"deviation,omitempty"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// Hub fans position updates out to subscribers, keyed by share ID.
// Subscribers with full buffers miss updates rather than block the
// publisher; positions arrive every few seconds, so a dropped one is
// replaced almost immediately.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Update]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Update]bool)}
}

// Subscribe registers a watcher for one share. The returned cancel func
// must be called when the watcher disconnects.
func (h *Hub) Subscribe(shareID string) (<-chan Update, func()) {
	ch := make(chan Update, 16)

	h.mu.Lock()
	if h.subs[shareID] == nil {
		h.subs[shareID] = make(map[chan Update]bool)
	}
	h.subs[shareID][ch] = true
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[shareID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, shareID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an update to every watcher of its share.
func (h *Hub) Publish(u Update) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[u.ShareID] {
		select {
		case ch <- u:
		default:
		}
	}
}

// WatcherCount reports how many caregivers are watching a share.
func (h *Hub) WatcherCount(shareID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[shareID])
}
