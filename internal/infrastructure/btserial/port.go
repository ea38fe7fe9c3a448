package btserial

import (
	"bufio"
	"context"
	"fmt"
	"log"

	"github.com/tarm/serial"
)

// PortReader lit le même protocole texte sur un vrai port série
// (module HC-05 ou équivalent branché en UART). Optionnel : la lampe
// fonctionne sans si aucun périphérique n'est configuré.
type PortReader struct {
	port *serial.Port
	out  chan<- string
}

func OpenPort(device string, baud int, out chan<- string) (*PortReader, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("impossible d'ouvrir le port série %s: %w", device, err)
	}

	log.Printf("Série BT: port %s ouvert à %d bauds", device, baud)
	return &PortReader{port: port, out: out}, nil
}

func (p *PortReader) Start(ctx context.Context) {
	go func() {
		go func() {
			<-ctx.Done()
			p.port.Close() // Débloque la lecture ci-dessous.
		}()

		scanner := bufio.NewScanner(p.port)
		for scanner.Scan() {
			enqueue(p.out, scanner.Text())
		}
		log.Println("Série BT: lecture du port série terminée.")
	}()
}
