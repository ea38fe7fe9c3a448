package actuator

import (
	"sync"

	"digitalGarden/internal/domain/lamp"
)

// Memory garde le dernier niveau écrit de chaque canal, comme le
// lastSentFrames du sender ArtNet. C'est la sortie "simulée" de la
// lampe : l'UI et la page HTTP lisent des snapshots, les tests lisent
// les niveaux directement.
type Memory struct {
	mu     sync.RWMutex
	levels map[lamp.ChannelID]uint8
}

func NewMemory() *Memory {
	return &Memory{levels: make(map[lamp.ChannelID]uint8)}
}

func (m *Memory) SetIntensity(ch lamp.ChannelID, value uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[ch] = value
}

// Level renvoie le dernier niveau écrit (0 si jamais écrit).
func (m *Memory) Level(ch lamp.ChannelID) uint8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.levels[ch]
}

// Snapshot copie l'état courant de tous les canaux.
func (m *Memory) Snapshot() map[lamp.ChannelID]uint8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[lamp.ChannelID]uint8, len(m.levels))
	for ch, v := range m.levels {
		out[ch] = v
	}
	return out
}
