package artnet

import (
	"bytes"
	"context"
	"log"
	"net"
	"time"

	domain "digitalGarden/internal/domain/artnet"
)

const (
	tickDuration = 33 * time.Millisecond // ~30 FPS
	refreshRate  = 30                    // renvoi forcé une fois par seconde
	artnetPort   = 6454
)

// Sender pousse les frames DMX vers les contrôleurs. Entre deux ticks
// il ne garde que la frame la plus récente de chaque univers, et il
// n'émet que si les données ont changé depuis le dernier envoi, avec
// un renvoi forcé périodique pour les contrôleurs qui s'endorment.
type Sender struct {
	conns          map[int]*net.UDPConn
	headerCache    map[int][]byte
	ticker         *time.Ticker
	lastSentFrames map[int]*[domain.DMXDataSize]byte
	refreshCounter int
}

func NewSender(universeIP map[int]string) (*Sender, error) {
	s := &Sender{
		conns:          make(map[int]*net.UDPConn),
		headerCache:    make(map[int][]byte),
		ticker:         time.NewTicker(tickDuration),
		lastSentFrames: make(map[int]*[domain.DMXDataSize]byte),
	}

	for u, ip := range universeIP {
		// L'en-tête d'un univers ne change jamais, on le précalcule.
		s.headerCache[u] = domain.BuildHeader(u)

		addr := &net.UDPAddr{IP: net.ParseIP(ip), Port: artnetPort}
		conn, err := net.DialUDP("udp", nil, addr)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.conns[u] = conn
	}
	log.Printf("ArtNet Sender: initialisé pour %d univers.", len(universeIP))
	return s, nil
}

func (s *Sender) Run(ctx context.Context, in <-chan domain.Frame) {
	log.Println("ArtNet Sender: goroutine d'envoi démarrée (diffing).")

	latestFrames := make(map[int]*[domain.DMXDataSize]byte)

	for {
		select {
		case <-ctx.Done():
			s.Close()
			log.Println("ArtNet Sender: goroutine d'envoi terminée.")
			return

		case frame := <-in:
			// On n'envoie pas tout de suite : si dix frames du même
			// univers arrivent avant le prochain tick, seule la
			// dernière compte.
			if _, ok := latestFrames[frame.Universe]; !ok {
				latestFrames[frame.Universe] = new([domain.DMXDataSize]byte)
			}
			*latestFrames[frame.Universe] = frame.Data

		case <-s.ticker.C:
			s.refreshCounter++
			force := s.refreshCounter >= refreshRate
			if force {
				s.refreshCounter = 0
			}

			for universe, current := range latestFrames {
				last, found := s.lastSentFrames[universe]
				if !force && found && bytes.Equal(last[:], current[:]) {
					continue
				}
				conn, ok := s.conns[universe]
				if !ok {
					continue
				}

				packet := domain.BuildPacket(s.headerCache[universe], current)
				if _, err := conn.Write(packet); err != nil {
					log.Printf("ArtNet Sender: erreur d'envoi univers %d: %v", universe, err)
					continue
				}

				if !found {
					s.lastSentFrames[universe] = new([domain.DMXDataSize]byte)
				}
				copy(s.lastSentFrames[universe][:], current[:])
			}
		}
	}
}

func (s *Sender) Close() {
	s.ticker.Stop()
	for _, conn := range s.conns {
		if conn != nil {
			conn.Close()
		}
	}
	log.Println("ArtNet Sender: connexions UDP fermées.")
}
