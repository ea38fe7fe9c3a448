package artnet

import "fmt"

const DMXDataSize = 512

// Frame est l'état complet d'un univers DMX à envoyer au contrôleur.
// Le sender ne conserve que la version la plus récente de chaque univers.
type Frame struct {
	Universe int
	Data     [DMXDataSize]byte
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame DMX [univers %d]", f.Universe)
}
