package actuator

import "digitalGarden/internal/domain/lamp"

// Actuator est la surface d'actionnement des canaux : une écriture
// fixe le niveau PWM d'un canal jusqu'à l'écriture suivante. Les ids
// forment un ensemble fermé et validé, il n'y a pas d'erreur observable.
type Actuator interface {
	SetIntensity(ch lamp.ChannelID, value uint8)
}
