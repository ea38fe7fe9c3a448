package btserial

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net"
)

// Listener expose le protocole texte sur une socket TCP ligne par
// ligne, la surface "série sans fil" de la lampe. Chaque ligne reçue
// est poussée telle quelle dans la file de commandes du cœur.
type Listener struct {
	ln  net.Listener
	out chan<- string
}

func NewListener(port int, out chan<- string) (*Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("impossible d'écouter sur le port %d: %w", port, err)
	}

	log.Printf("Série BT: listener prêt sur le port %d", port)
	return &Listener{ln: ln, out: out}, nil
}

// Start lance la boucle d'acceptation. L'annulation du contexte ferme
// le listener, ce qui débloque Accept et termine la goroutine.
func (l *Listener) Start(ctx context.Context) {
	go func() {
		go func() {
			<-ctx.Done()
			l.ln.Close()
		}()

		for {
			conn, err := l.ln.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					log.Println("Série BT: listener fermé, arrêt de l'écoute.")
					return
				}
				log.Printf("Série BT: erreur Accept: %v", err)
				continue
			}
			go l.serve(ctx, conn)
		}
	}()
}

func (l *Listener) serve(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	go func() {
		<-ctx.Done()
		conn.Close() // Débloque le scanner ci-dessous.
	}()

	log.Printf("Série BT: connexion de %s", conn.RemoteAddr())
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		enqueue(l.out, scanner.Text())
	}
	log.Printf("Série BT: fin de connexion %s", conn.RemoteAddr())
}

// enqueue pousse une ligne sans jamais bloquer le transport : si la
// file est pleine, la ligne est perdue.
func enqueue(out chan<- string, line string) {
	if line == "" {
		return
	}
	select {
	case out <- line:
	default:
		log.Println("Série BT: file de commandes pleine, ligne ignorée.")
	}
}
