package actuator

import (
	"log"

	"digitalGarden/internal/domain/artnet"
	"digitalGarden/internal/domain/lamp"
)

// Fanout duplique chaque écriture vers le store mémoire et, pour les
// canaux patchés, vers la file du sender ArtNet. L'envoi sur la file
// est non bloquant : si elle est pleine on jette la frame, le sender
// ne garde de toute façon que la plus récente par univers.
type Fanout struct {
	store   *Memory
	routes  map[lamp.ChannelID]artnet.DMXRoute
	buffers map[int]*[artnet.DMXDataSize]byte
	out     chan<- artnet.Frame
}

func NewFanout(store *Memory, routes map[lamp.ChannelID]artnet.DMXRoute, out chan<- artnet.Frame) *Fanout {
	f := &Fanout{
		store:   store,
		routes:  routes,
		buffers: make(map[int]*[artnet.DMXDataSize]byte),
		out:     out,
	}
	for _, route := range routes {
		if _, ok := f.buffers[route.Universe]; !ok {
			f.buffers[route.Universe] = new([artnet.DMXDataSize]byte)
		}
	}
	log.Printf("Actuator: fanout ArtNet actif pour %d canaux patchés, %d univers.", len(routes), len(f.buffers))
	return f
}

func (f *Fanout) SetIntensity(ch lamp.ChannelID, value uint8) {
	f.store.SetIntensity(ch, value)

	route, ok := f.routes[ch]
	if !ok {
		return
	}
	buf := f.buffers[route.Universe]
	if route.Offset < 0 || route.Offset >= artnet.DMXDataSize {
		return
	}
	buf[route.Offset] = value

	select {
	case f.out <- artnet.Frame{Universe: route.Universe, Data: *buf}:
	default:
		// File pleine : on jette, le prochain tick renverra l'état complet.
	}
}
