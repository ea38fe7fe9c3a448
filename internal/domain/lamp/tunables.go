package lamp

// TunableKey désigne un des cinq réglages numériques de la lampe.
type TunableKey int

const (
	KeyBlink TunableKey = iota
	KeyChase
	KeyFade
	KeyRainbow
	KeyTwinkle
)

func (k TunableKey) String() string {
	switch k {
	case KeyBlink:
		return "BLINK"
	case KeyChase:
		return "CHASE"
	case KeyFade:
		return "FADE"
	case KeyRainbow:
		return "RAINBOW"
	case KeyTwinkle:
		return "TWINKLE"
	}
	return "?"
}

func ParseTunableKey(name string) (TunableKey, bool) {
	switch name {
	case "BLINK":
		return KeyBlink, true
	case "CHASE":
		return KeyChase, true
	case "FADE":
		return KeyFade, true
	case "RAINBOW":
		return KeyRainbow, true
	case "TWINKLE":
		return KeyTwinkle, true
	}
	return 0, false
}

// Tunables regroupe les réglages de vitesse des animations.
// Les valeurs hors domaine sont toujours ramenées à la borne la plus
// proche, jamais rejetées.
type Tunables struct {
	BlinkIntervalMs int // [50,2000], plus petit = clignote plus vite
	ChaseIntervalMs int // [50,2000], plus petit = chase plus rapide
	FadeStep        int // [1,20], plus grand = fondu plus rapide
	RainbowSpeedMs  int // [10,200], plus petit = rotation plus rapide
	TwinkleSpeed    int // [1,100], plus grand = scintillement plus rapide
}

func DefaultTunables() Tunables {
	return Tunables{
		BlinkIntervalMs: 500,
		ChaseIntervalMs: 150,
		FadeStep:        5,
		RainbowSpeedMs:  30,
		TwinkleSpeed:    50,
	}
}

// Set range la valeur demandée dans le réglage visé, après clamp dans
// son domaine.
func (t *Tunables) Set(key TunableKey, value int) {
	switch key {
	case KeyBlink:
		t.BlinkIntervalMs = clamp(value, 50, 2000)
	case KeyChase:
		t.ChaseIntervalMs = clamp(value, 50, 2000)
	case KeyFade:
		t.FadeStep = clamp(value, 1, 20)
	case KeyRainbow:
		t.RainbowSpeedMs = clamp(value, 10, 200)
	case KeyTwinkle:
		t.TwinkleSpeed = clamp(value, 1, 100)
	}
}

// Normalize ramène tous les champs dans leur domaine. Utilisé après le
// chargement de la config, qui peut contenir n'importe quoi.
func (t *Tunables) Normalize() {
	t.Set(KeyBlink, t.BlinkIntervalMs)
	t.Set(KeyChase, t.ChaseIntervalMs)
	t.Set(KeyFade, t.FadeStep)
	t.Set(KeyRainbow, t.RainbowSpeedMs)
	t.Set(KeyTwinkle, t.TwinkleSpeed)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
