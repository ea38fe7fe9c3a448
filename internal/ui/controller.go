package ui

import (
	"log"
	"strings"

	"digitalGarden/internal/domain/lamp"
	"digitalGarden/internal/infrastructure/actuator"
)

// Controller fait le pont entre les widgets et le cœur : les actions
// de l'UI deviennent des lignes du protocole texte, l'affichage se
// nourrit de snapshots. L'UI n'est qu'un transport de plus.
type Controller struct {
	state       *lamp.State
	store       *actuator.Memory
	out         chan<- string
	flowerCount int
}

func NewController(state *lamp.State, store *actuator.Memory, out chan<- string, flowerCount int) *Controller {
	return &Controller{state: state, store: store, out: out, flowerCount: flowerCount}
}

// Send pousse une commande sans bloquer le thread UI.
func (c *Controller) Send(line string) {
	line = strings.ToUpper(strings.TrimSpace(line))
	select {
	case c.out <- line:
	default:
		log.Println("UI: file de commandes pleine, action ignorée.")
	}
}

// Snapshot est l'état affichable de la lampe à un instant donné.
type Snapshot struct {
	Mode     lamp.Mode
	Tunables lamp.Tunables
	ManualOn [lamp.MainChannelCount]bool
	Levels   map[lamp.ChannelID]uint8
}

func (c *Controller) Snapshot() Snapshot {
	view := c.state.View()
	return Snapshot{
		Mode:     view.Mode,
		Tunables: view.Tunables,
		ManualOn: view.ManualOn,
		Levels:   c.store.Snapshot(),
	}
}

func (c *Controller) FlowerCount() int {
	return c.flowerCount
}
