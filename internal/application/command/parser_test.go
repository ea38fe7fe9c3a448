package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"digitalGarden/internal/domain/lamp"
)

func TestParseGrammar(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"RED ON", Command{Kind: SetChannel, Channel: lamp.Red, On: true}},
		{"white off", Command{Kind: SetChannel, Channel: lamp.White, On: false}},
		{"  green ON  ", Command{Kind: SetChannel, Channel: lamp.Green, On: true}},
		{"MODE CHASE", Command{Kind: SetMode, Mode: lamp.Chase}},
		{"mode rainbow", Command{Kind: SetMode, Mode: lamp.Rainbow}},
		{"SET FADE 12", Command{Kind: SetTunable, Key: lamp.KeyFade, Value: 12}},
		{"set twinkle 80", Command{Kind: SetTunable, Key: lamp.KeyTwinkle, Value: 80}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.line))
		})
	}
}

func TestParseUnknownIsNoOp(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"PURPLE ON",
		"RED",
		"RED MAYBE",
		"RED ON PLEASE",
		"MODE",
		"MODE PARTY",
		"SET FADE",
		"SET FADE fast",
		"SET VOLUME 3",
		"BONJOUR",
	}

	for _, line := range lines {
		assert.Equal(t, NoOp, Parse(line).Kind, "ligne: %q", line)
	}
}
