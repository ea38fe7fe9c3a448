package lamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetClampsIntoDomain(t *testing.T) {
	cases := []struct {
		name string
		key  TunableKey
		in   int
		want int
	}{
		{"blink trop bas", KeyBlink, 10, 50},
		{"blink trop haut", KeyBlink, 5000, 2000},
		{"blink valide", KeyBlink, 800, 800},
		{"chase trop bas", KeyChase, 0, 50},
		{"chase trop haut", KeyChase, 9999, 2000},
		{"fade trop haut", KeyFade, 150, 20},
		{"fade trop bas", KeyFade, 0, 1},
		{"rainbow trop bas", KeyRainbow, 1, 10},
		{"rainbow trop haut", KeyRainbow, 300, 200},
		{"twinkle trop bas", KeyTwinkle, -5, 1},
		{"twinkle trop haut", KeyTwinkle, 101, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tun := DefaultTunables()
			tun.Set(tc.key, tc.in)
			switch tc.key {
			case KeyBlink:
				assert.Equal(t, tc.want, tun.BlinkIntervalMs)
			case KeyChase:
				assert.Equal(t, tc.want, tun.ChaseIntervalMs)
			case KeyFade:
				assert.Equal(t, tc.want, tun.FadeStep)
			case KeyRainbow:
				assert.Equal(t, tc.want, tun.RainbowSpeedMs)
			case KeyTwinkle:
				assert.Equal(t, tc.want, tun.TwinkleSpeed)
			}
		})
	}
}

func TestParseChannel(t *testing.T) {
	ch, ok := ParseChannel("WHITE")
	assert.True(t, ok)
	assert.Equal(t, White, ch)

	ch, ok = ParseChannel("FLOWER3")
	assert.True(t, ok)
	assert.True(t, ch.IsFlower())
	assert.Equal(t, 3, ch.FlowerIndex())

	_, ok = ParseChannel("PURPLE")
	assert.False(t, ok)
}

func TestStateManualFlags(t *testing.T) {
	s := NewState(DefaultTunables())
	assert.Equal(t, Manual, s.Mode())
	assert.False(t, s.ManualOn(Red))

	s.SetManual(Red, true)
	assert.True(t, s.ManualOn(Red))

	// Les fleurs n'ont pas de drapeau manuel.
	s.SetManual(Flower(0), true)
	assert.False(t, s.ManualOn(Flower(0)))
}
