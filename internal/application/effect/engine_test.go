package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digitalGarden/internal/domain/lamp"
	"digitalGarden/internal/infrastructure/actuator"
)

func newEngine(flowers int) (*Engine, *lamp.State, *actuator.Memory) {
	state := lamp.NewState(lamp.DefaultTunables())
	store := actuator.NewMemory()
	return NewEngine(state, store, flowers, 42), state, store
}

func mains(store *actuator.Memory) [4]uint8 {
	return [4]uint8{
		store.Level(lamp.Red),
		store.Level(lamp.Green),
		store.Level(lamp.Blue),
		store.Level(lamp.White),
	}
}

func TestManualModeWritesNoMainChannel(t *testing.T) {
	e, _, store := newEngine(2)

	now := time.Unix(1000, 0)
	for i := 0; i < 10; i++ {
		e.Tick(now.Add(time.Duration(i) * 50 * time.Millisecond))
	}

	snapshot := store.Snapshot()
	for _, ch := range lamp.MainChannels {
		_, written := snapshot[ch]
		assert.False(t, written, "canal %s écrit en mode MANUAL", ch)
	}
	// Le scintillement des fleurs tourne quand même.
	_, written := snapshot[lamp.Flower(0)]
	assert.True(t, written)
}

func TestChaseAdvancesOnePerInterval(t *testing.T) {
	e, state, store := newEngine(0)
	state.SetMode(lamp.Chase)

	now := time.Unix(1000, 0)
	e.Tick(now) // premier tick : porte vierge, déclenche sur RED
	assert.Equal(t, [4]uint8{255, 0, 0, 0}, mains(store))

	// Avant l'intervalle, rien ne bouge.
	e.Tick(now.Add(10 * time.Millisecond))
	assert.Equal(t, [4]uint8{255, 0, 0, 0}, mains(store))

	e.Tick(now.Add(150 * time.Millisecond))
	assert.Equal(t, [4]uint8{0, 255, 0, 0}, mains(store))

	e.Tick(now.Add(300 * time.Millisecond))
	assert.Equal(t, [4]uint8{0, 0, 255, 0}, mains(store))
}

func TestChaseIndexSurvivesModeSwitch(t *testing.T) {
	e, state, store := newEngine(0)
	state.SetMode(lamp.Chase)

	now := time.Unix(1000, 0)
	e.Tick(now)                              // RED, index -> 1
	e.Tick(now.Add(150 * time.Millisecond))  // GREEN, index -> 2

	state.SetMode(lamp.Blink)
	e.Tick(now.Add(700 * time.Millisecond)) // blink s'allume
	e.Tick(now.Add(1300 * time.Millisecond))

	// De retour en CHASE, on reprend à l'index 2, pas à 0.
	state.SetMode(lamp.Chase)
	e.Tick(now.Add(2 * time.Second))
	assert.Equal(t, [4]uint8{0, 0, 255, 0}, mains(store))
}

func TestInactiveModeClockIsFrozen(t *testing.T) {
	e, state, store := newEngine(0)
	state.SetMode(lamp.Chase)

	now := time.Unix(1000, 0)
	e.Tick(now) // déclenche à t0

	// On passe en BLINK, il s'allume tout de suite (porte vierge).
	state.SetMode(lamp.Blink)
	e.Tick(now.Add(50 * time.Millisecond))
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, mains(store))

	// Retour en CHASE avant que son intervalle ne soit écoulé depuis
	// son dernier déclenchement réel : pas de rattrapage.
	state.SetMode(lamp.Chase)
	e.Tick(now.Add(100 * time.Millisecond))
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, mains(store))

	// Une fois l'intervalle écoulé, il repart.
	e.Tick(now.Add(200 * time.Millisecond))
	assert.Equal(t, [4]uint8{0, 255, 0, 0}, mains(store))
}

func TestBlinkFlipsAllMains(t *testing.T) {
	e, state, store := newEngine(0)
	state.SetMode(lamp.Blink)

	now := time.Unix(1000, 0)
	e.Tick(now)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, mains(store))

	e.Tick(now.Add(500 * time.Millisecond))
	assert.Equal(t, [4]uint8{0, 0, 0, 0}, mains(store))

	e.Tick(now.Add(1000 * time.Millisecond))
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, mains(store))
}

func TestFadeReflectsAtUpperBound(t *testing.T) {
	e, state, store := newEngine(0)
	state.SetMode(lamp.Fade)
	state.SetTunable(lamp.KeyFade, 20) // rouge: 20 par tick de 40ms

	now := time.Unix(1000, 0)
	reachedTop := false
	var i int
	for i = 0; i < 40; i++ {
		e.Tick(now.Add(time.Duration(i) * 40 * time.Millisecond))
		if store.Level(lamp.Red) == 255 {
			reachedTop = true
			break
		}
	}
	require.True(t, reachedTop, "le rouge n'a jamais atteint 255")

	// Tick suivant : la direction s'est inversée, la valeur redescend.
	e.Tick(now.Add(time.Duration(i+1) * 40 * time.Millisecond))
	assert.Less(t, store.Level(lamp.Red), uint8(255))
}

func TestFadeChannelsHaveDistinctRates(t *testing.T) {
	e, state, store := newEngine(0)
	state.SetMode(lamp.Fade)

	now := time.Unix(1000, 0)
	for i := 0; i < 5; i++ {
		e.Tick(now.Add(time.Duration(i) * 40 * time.Millisecond))
	}

	// Pas de base 5/4/3/2 : après le même nombre de ticks montants,
	// rouge > vert > bleu > blanc.
	assert.Greater(t, store.Level(lamp.Red), store.Level(lamp.Green))
	assert.Greater(t, store.Level(lamp.Green), store.Level(lamp.Blue))
	assert.Greater(t, store.Level(lamp.Blue), store.Level(lamp.White))
}

func TestRainbowStaysBoundedAndWhiteOff(t *testing.T) {
	e, state, store := newEngine(0)
	state.SetMode(lamp.Rainbow)

	now := time.Unix(1000, 0)
	// Plus de deux tours complets de phase (2π/0.05 ≈ 126 pas).
	for i := 0; i < 300; i++ {
		e.Tick(now.Add(time.Duration(i) * 30 * time.Millisecond))
		assert.LessOrEqual(t, store.Level(lamp.Red), uint8(254))
		assert.LessOrEqual(t, store.Level(lamp.Green), uint8(254))
		assert.LessOrEqual(t, store.Level(lamp.Blue), uint8(254))
		assert.Equal(t, uint8(0), store.Level(lamp.White))
	}
}

func TestTwinkleRunsInEveryMode(t *testing.T) {
	for _, mode := range []lamp.Mode{lamp.Manual, lamp.Chase, lamp.Blink, lamp.Fade, lamp.Rainbow} {
		e, state, store := newEngine(2)
		state.SetMode(mode)

		now := time.Unix(1000, 0)
		e.Tick(now)
		first := store.Level(lamp.Flower(0))
		for i := 1; i <= 10; i++ {
			e.Tick(now.Add(time.Duration(i) * 30 * time.Millisecond))
		}
		second := store.Level(lamp.Flower(0))

		assert.NotEqual(t, first, second, "les fleurs ne scintillent pas en mode %s", mode)
	}
}

func TestTwinklePhasesStayDistinct(t *testing.T) {
	e, _, store := newEngine(4)

	now := time.Unix(1000, 0)
	distinct := 0
	for i := 0; i < 50; i++ {
		e.Tick(now.Add(time.Duration(i) * 30 * time.Millisecond))
		levels := map[uint8]bool{}
		for f := 0; f < 4; f++ {
			levels[store.Level(lamp.Flower(f))] = true
		}
		if len(levels) > 1 {
			distinct++
		}
	}
	// Les phases initiales sont tirées au hasard : les courbes des
	// fleurs ne se synchronisent jamais.
	assert.Greater(t, distinct, 40)
}
