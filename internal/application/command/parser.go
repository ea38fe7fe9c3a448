package command

import (
	"strconv"
	"strings"

	"digitalGarden/internal/domain/lamp"
)

// Kind distingue les variantes de commande. Tout ce qui ne se parse
// pas devient NoOp : la politique "fail silent" du protocole texte est
// portée par le parseur, jamais par une erreur.
type Kind int

const (
	NoOp Kind = iota
	SetChannel
	SetMode
	SetTunable
)

// Command est la forme typée d'une ligne de commande. Seuls les champs
// correspondant au Kind sont significatifs.
type Command struct {
	Kind    Kind
	Channel lamp.ChannelID
	On      bool
	Mode    lamp.Mode
	Key     lamp.TunableKey
	Value   int
}

// Parse lit une ligne du protocole texte, insensible à la casse et aux
// espaces de bord :
//
//	RED|GREEN|BLUE|WHITE ON|OFF
//	MODE MANUAL|CHASE|BLINK|FADE|RAINBOW
//	SET BLINK|CHASE|FADE|RAINBOW|TWINKLE <entier>
func Parse(line string) Command {
	fields := strings.Fields(strings.ToUpper(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return Command{}
	}

	switch fields[0] {
	case "MODE":
		if len(fields) != 2 {
			return Command{}
		}
		mode, ok := lamp.ParseMode(fields[1])
		if !ok {
			return Command{}
		}
		return Command{Kind: SetMode, Mode: mode}

	case "SET":
		if len(fields) != 3 {
			return Command{}
		}
		key, ok := lamp.ParseTunableKey(fields[1])
		if !ok {
			return Command{}
		}
		value, err := strconv.Atoi(fields[2])
		if err != nil {
			return Command{}
		}
		return Command{Kind: SetTunable, Key: key, Value: value}

	default:
		if len(fields) != 2 {
			return Command{}
		}
		ch, ok := lamp.ParseColor(fields[0])
		if !ok {
			return Command{}
		}
		switch fields[1] {
		case "ON":
			return Command{Kind: SetChannel, Channel: ch, On: true}
		case "OFF":
			return Command{Kind: SetChannel, Channel: ch, On: false}
		}
		return Command{}
	}
}
