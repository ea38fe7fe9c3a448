package lamp

import "sync"

// State est l'agrégat d'état global de la lampe : le mode courant, les
// réglages et les drapeaux on/off manuels des 4 canaux principaux.
// Il est passé explicitement à l'interpréteur et au moteur d'effets,
// pas de variable globale ambiante.
//
// Le verrou protège uniquement les lectures faites par l'UI et la page
// HTTP ; le cœur (interpréteur + moteur) tourne sur une seule goroutine.
type State struct {
	mu       sync.RWMutex
	mode     Mode
	tunables Tunables
	manualOn [MainChannelCount]bool
}

// View est une copie cohérente de l'état, prise en une seule fois par
// tick pour garantir que commandes et ticks ne s'entrelacent qu'entre
// deux mises à jour complètes.
type View struct {
	Mode     Mode
	Tunables Tunables
	ManualOn [MainChannelCount]bool
}

func NewState(t Tunables) *State {
	t.Normalize()
	return &State{mode: Manual, tunables: t}
}

func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{Mode: s.mode, Tunables: s.tunables, ManualOn: s.manualOn}
}

func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode change le mode actif. L'état interne des générateurs n'est
// jamais réinitialisé : il devient simplement dormant.
func (s *State) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

func (s *State) SetTunable(key TunableKey, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tunables.Set(key, value)
}

func (s *State) Tunables() Tunables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tunables
}

// SetManual enregistre le drapeau on/off d'un canal principal. Le
// drapeau ne sert qu'à l'affichage : il ne conditionne pas les modes.
func (s *State) SetManual(c ChannelID, on bool) {
	if c.IsFlower() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manualOn[c] = on
}

func (s *State) ManualOn(c ChannelID) bool {
	if c.IsFlower() {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manualOn[c]
}
