package core

import (
	"context"
	"log"
	"time"

	"digitalGarden/internal/application/command"
	"digitalGarden/internal/application/effect"
)

// Loop est le fil unique du firmware : à chaque passage il vide la
// file de commandes en attente puis fait avancer le moteur d'effets
// d'un tick, sans jamais bloquer ni dormir. Les commandes et les ticks
// ne s'entrelacent donc qu'entre deux unités complètes.
type Loop struct {
	commands <-chan string
	interp   *command.Interpreter
	engine   *effect.Engine
}

func NewLoop(commands <-chan string, interp *command.Interpreter, engine *effect.Engine) *Loop {
	return &Loop{commands: commands, interp: interp, engine: engine}
}

// Run boucle jusqu'à l'annulation du contexte.
func (l *Loop) Run(ctx context.Context) {
	log.Println("Core: boucle de scheduling démarrée.")
	for {
		select {
		case <-ctx.Done():
			log.Println("Core: boucle arrêtée.")
			return
		default:
		}

		// Lecture opportuniste : s'il n'y a rien, on passe au tick
		// sans attendre.
		for drained := false; !drained; {
			select {
			case line := <-l.commands:
				l.interp.Execute(line)
			default:
				drained = true
			}
		}

		l.engine.Tick(time.Now())
	}
}
