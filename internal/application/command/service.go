package command

import (
	"log"

	"digitalGarden/internal/domain/lamp"
	"digitalGarden/internal/infrastructure/actuator"
)

// Interpreter applique les commandes du protocole texte à l'état
// partagé et à l'actionneur. Toutes les entrées malformées sont des
// no-op silencieux, aucune erreur ne remonte vers les transports.
type Interpreter struct {
	state *lamp.State
	act   actuator.Actuator
}

func NewInterpreter(state *lamp.State, act actuator.Actuator) *Interpreter {
	return &Interpreter{state: state, act: act}
}

// Execute traite une ligne brute venue d'un transport.
func (i *Interpreter) Execute(line string) {
	i.Apply(Parse(line))
}

// Apply exécute une commande déjà typée.
func (i *Interpreter) Apply(cmd Command) {
	switch cmd.Kind {
	case SetChannel:
		// Le toggle manuel pilote le canal tout de suite, quel que soit
		// le mode actif. Si un mode tourne, son prochain tick écrasera
		// la valeur : c'est accepté, pas contré.
		i.state.SetManual(cmd.Channel, cmd.On)
		if cmd.On {
			i.act.SetIntensity(cmd.Channel, 255)
		} else {
			i.act.SetIntensity(cmd.Channel, 0)
		}
		log.Printf("Interpréteur: %s -> %v", cmd.Channel, cmd.On)

	case SetMode:
		// Aucun reset des générateurs : les phases, index et directions
		// survivent au changement de mode.
		i.state.SetMode(cmd.Mode)
		log.Printf("Interpréteur: mode %s", cmd.Mode)

	case SetTunable:
		i.state.SetTunable(cmd.Key, cmd.Value)

	case NoOp:
		// Commande inconnue : ignorée sans retour.
	}
}
