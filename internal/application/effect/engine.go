package effect

import (
	"log"
	"math"
	"math/rand"
	"time"

	"digitalGarden/internal/domain/lamp"
	"digitalGarden/internal/infrastructure/actuator"
)

const (
	fadeIntervalMs    = 40 // fixe, non réglable
	twinkleIntervalMs = 30 // fixe, le réglage TWINKLE joue sur l'incrément de phase
	rainbowStep       = 0.05
	twoPi             = 2 * math.Pi
)

// Pas de base du fondu par canal (R, G, B, W), en unités d'intensité
// par tick de 40ms au FadeStep par défaut. Les quatre vitesses restent
// distinctes quel que soit le réglage.
var fadeBaseStep = [lamp.MainChannelCount]float64{5, 4, 3, 2}

// Engine est l'ordonnanceur d'animations. Chaque appel à Tick évalue
// au plus un générateur de mode (celui du mode actif, si son délai est
// écoulé) puis, inconditionnellement, le scintillement des fleurs.
// Tout l'état interne des générateurs vit ici, survit aux changements
// de mode et n'est jamais remis à zéro avant le redémarrage.
type Engine struct {
	state *lamp.State
	act   actuator.Actuator

	// Horodatage du dernier déclenchement, par mode. Un mode inactif ne
	// met pas son horloge à jour : au retour il ne rattrape pas les
	// ticks manqués, il repart de son dernier déclenchement réel.
	lastFired [lamp.ModeCount]time.Time

	chaseIndex   int
	blinkOn      bool
	fadeLevel    [lamp.MainChannelCount]float64
	fadeDir      [lamp.MainChannelCount]float64
	rainbowPhase float64

	lastTwinkle time.Time
	flowerPhase []float64
}

// NewEngine prépare les générateurs. Les phases des fleurs sont tirées
// pseudo-aléatoirement à partir de la graine pour que chaque fleur
// scintille sur sa propre courbe dès le démarrage.
func NewEngine(state *lamp.State, act actuator.Actuator, flowerCount int, seed int64) *Engine {
	rng := rand.New(rand.NewSource(seed))
	phases := make([]float64, flowerCount)
	for i := range phases {
		phases[i] = rng.Float64() * twoPi
	}

	e := &Engine{state: state, act: act, flowerPhase: phases}
	for i := range e.fadeDir {
		e.fadeDir[i] = 1
	}
	log.Printf("Moteur d'effets: initialisé, %d fleurs.", flowerCount)
	return e
}

// Tick avance l'animation à l'instant donné. O(canaux), pas d'attente,
// pas d'entrée/sortie : l'appelant peut boucler dessus sans dormir.
func (e *Engine) Tick(now time.Time) {
	v := e.state.View()

	switch v.Mode {
	case lamp.Chase:
		if e.due(lamp.Chase, now, msToDuration(v.Tunables.ChaseIntervalMs)) {
			e.stepChase()
		}
	case lamp.Blink:
		if e.due(lamp.Blink, now, msToDuration(v.Tunables.BlinkIntervalMs)) {
			e.stepBlink()
		}
	case lamp.Fade:
		if e.due(lamp.Fade, now, msToDuration(fadeIntervalMs)) {
			e.stepFade(v.Tunables.FadeStep)
		}
	case lamp.Rainbow:
		if e.due(lamp.Rainbow, now, msToDuration(v.Tunables.RainbowSpeedMs)) {
			e.stepRainbow()
		}
	case lamp.Manual:
		// Pas de générateur : les canaux restent sur leur dernière valeur.
	}

	// Le scintillement des fleurs tourne quel que soit le mode.
	if e.lastTwinkle.IsZero() || now.Sub(e.lastTwinkle) >= msToDuration(twinkleIntervalMs) {
		e.lastTwinkle = now
		e.stepTwinkle(v.Tunables.TwinkleSpeed)
	}
}

// due teste la porte temporelle d'un mode et, si elle est franchie,
// enregistre le déclenchement. Un horodatage encore vierge déclenche
// immédiatement.
func (e *Engine) due(m lamp.Mode, now time.Time, interval time.Duration) bool {
	if !e.lastFired[m].IsZero() && now.Sub(e.lastFired[m]) < interval {
		return false
	}
	e.lastFired[m] = now
	return true
}

func (e *Engine) stepChase() {
	for _, ch := range lamp.MainChannels {
		e.act.SetIntensity(ch, 0)
	}
	e.act.SetIntensity(lamp.MainChannels[e.chaseIndex], 255)
	e.chaseIndex = (e.chaseIndex + 1) % lamp.MainChannelCount
}

func (e *Engine) stepBlink() {
	e.blinkOn = !e.blinkOn
	var level uint8
	if e.blinkOn {
		level = 255
	}
	for _, ch := range lamp.MainChannels {
		e.act.SetIntensity(ch, level)
	}
}

func (e *Engine) stepFade(fadeStep int) {
	for i, ch := range lamp.MainChannels {
		delta := fadeBaseStep[i] * float64(fadeStep) / 5.0
		e.fadeLevel[i] += e.fadeDir[i] * delta

		// Réflexion aux bornes : on plaque la valeur et on inverse.
		if e.fadeLevel[i] >= 255 {
			e.fadeLevel[i] = 255
			e.fadeDir[i] = -1
		} else if e.fadeLevel[i] <= 0 {
			e.fadeLevel[i] = 0
			e.fadeDir[i] = 1
		}
		e.act.SetIntensity(ch, uint8(e.fadeLevel[i]))
	}
}

func (e *Engine) stepRainbow() {
	e.rainbowPhase += rainbowStep
	if e.rainbowPhase >= twoPi {
		e.rainbowPhase = 0
	}
	e.act.SetIntensity(lamp.Red, sineLevel(e.rainbowPhase))
	e.act.SetIntensity(lamp.Green, sineLevel(e.rainbowPhase+twoPi/3))
	e.act.SetIntensity(lamp.Blue, sineLevel(e.rainbowPhase+2*twoPi/3))
	e.act.SetIntensity(lamp.White, 0)
}

func (e *Engine) stepTwinkle(speed int) {
	inc := 0.02 * float64(speed) / 50.0
	for i := range e.flowerPhase {
		e.flowerPhase[i] += inc
		if e.flowerPhase[i] >= twoPi {
			e.flowerPhase[i] -= twoPi
		}
		e.act.SetIntensity(lamp.Flower(i), sineLevel(e.flowerPhase[i]))
	}
}

// sineLevel approxime une intensité dans [0,254] : 127*(sin+1).
func sineLevel(angle float64) uint8 {
	return uint8(127 * (math.Sin(angle) + 1))
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
