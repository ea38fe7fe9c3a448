package lamp

import "fmt"

// ChannelID identifie une sortie de luminosité indépendante.
// Les 4 canaux principaux sont fixes, les fleurs viennent après.
type ChannelID int

const (
	Red ChannelID = iota
	Green
	Blue
	White
)

const MainChannelCount = 4

// Flower renvoie l'identifiant du canal de la fleur i (i >= 0).
func Flower(i int) ChannelID {
	return ChannelID(MainChannelCount + i)
}

func (c ChannelID) IsFlower() bool {
	return c >= MainChannelCount
}

// FlowerIndex renvoie l'indice de fleur d'un canal fleur.
func (c ChannelID) FlowerIndex() int {
	return int(c) - MainChannelCount
}

func (c ChannelID) String() string {
	switch c {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case White:
		return "WHITE"
	default:
		return fmt.Sprintf("FLOWER%d", c.FlowerIndex())
	}
}

// MainChannels liste les 4 canaux principaux dans l'ordre du chase.
var MainChannels = [MainChannelCount]ChannelID{Red, Green, Blue, White}

// ParseColor reconnaît un nom de canal principal (déjà en majuscules).
func ParseColor(name string) (ChannelID, bool) {
	switch name {
	case "RED":
		return Red, true
	case "GREEN":
		return Green, true
	case "BLUE":
		return Blue, true
	case "WHITE":
		return White, true
	}
	return 0, false
}

// ParseChannel reconnaît un nom de canal quelconque, couleur
// principale ou "FLOWER<i>" (déjà en majuscules).
func ParseChannel(name string) (ChannelID, bool) {
	if ch, ok := ParseColor(name); ok {
		return ch, true
	}
	var idx int
	if n, err := fmt.Sscanf(name, "FLOWER%d", &idx); err == nil && n == 1 && idx >= 0 {
		return Flower(idx), true
	}
	return 0, false
}

// Mode est l'algorithme d'animation actif sur les canaux principaux.
// Un seul mode à la fois, MANUAL au démarrage.
type Mode int

const (
	Manual Mode = iota
	Chase
	Blink
	Fade
	Rainbow
)

const ModeCount = 5

func (m Mode) String() string {
	switch m {
	case Manual:
		return "MANUAL"
	case Chase:
		return "CHASE"
	case Blink:
		return "BLINK"
	case Fade:
		return "FADE"
	case Rainbow:
		return "RAINBOW"
	}
	return fmt.Sprintf("MODE(%d)", int(m))
}

func ParseMode(name string) (Mode, bool) {
	switch name {
	case "MANUAL":
		return Manual, true
	case "CHASE":
		return Chase, true
	case "BLINK":
		return Blink, true
	case "FADE":
		return Fade, true
	case "RAINBOW":
		return Rainbow, true
	}
	return 0, false
}
