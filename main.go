// File: main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"digitalGarden/internal/application/command"
	"digitalGarden/internal/application/core"
	"digitalGarden/internal/application/effect"
	"digitalGarden/internal/config"
	domain_artnet "digitalGarden/internal/domain/artnet"
	"digitalGarden/internal/domain/lamp"
	"digitalGarden/internal/infrastructure/actuator"
	infra_artnet "digitalGarden/internal/infrastructure/artnet"
	"digitalGarden/internal/infrastructure/btserial"
	"digitalGarden/internal/infrastructure/httpapi"
	"digitalGarden/internal/ui"
)

func main() {
	log.Println("Démarrage du Digital Garden...")

	// --- ÉTAPE 1 : CHARGEMENT DE LA CONFIGURATION ---
	settings, err := config.LoadSettings("garden.yaml")
	if err != nil {
		// Sans config valide la lampe ne peut pas démarrer.
		log.Fatalf("Erreur fatale: impossible de charger garden.yaml: %v", err)
	}

	// --- ÉTAPE 2 : CRÉATION DES CANAUX DE COMMUNICATION ---
	commandQueue := make(chan string, 256)             // Tous les transports poussent ici
	artnetQueue := make(chan domain_artnet.Frame, 512) // Frames DMX vers le sender

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- ÉTAPE 3 : CONSTRUCTION DES COMPOSANTS ---

	// a) Actionneur : mémoire seule, ou mémoire + ArtNet si patché.
	store := actuator.NewMemory()
	var act actuator.Actuator = store
	var sender *infra_artnet.Sender

	if settings.ArtNet.Enabled {
		patch, err := config.LoadPatchFromExcel(settings.ArtNet.PatchFile)
		if err != nil {
			log.Fatalf("Erreur fatale: patch ArtNet illisible: %v", err)
		}
		sender, err = infra_artnet.NewSender(patch.UniverseIP)
		if err != nil {
			log.Fatalf("Erreur fatale: sender ArtNet: %v", err)
		}
		act = actuator.NewFanout(store, patch.Routes, artnetQueue)
	}

	// b) Cœur : état partagé, interpréteur, moteur d'effets, boucle.
	state := lamp.NewState(settings.InitialTunables())
	interp := command.NewInterpreter(state, act)
	engine := effect.NewEngine(state, act, settings.FlowerCount, time.Now().UnixNano())
	loop := core.NewLoop(commandQueue, interp, engine)

	// c) Transports.
	listener, err := btserial.NewListener(settings.SerialTCPPort, commandQueue)
	if err != nil {
		log.Fatalf("Erreur fatale: listener série BT: %v", err)
	}
	httpServer := httpapi.NewServer(state, store, commandQueue, settings.FlowerCount)

	// --- ÉTAPE 4 : DÉMARRAGE DES GOROUTINES ---
	listener.Start(ctx)
	httpServer.Start(ctx, settings.HTTPPort)
	if sender != nil {
		go sender.Run(ctx, artnetQueue)
	}
	if settings.SerialDevice != "" {
		port, err := btserial.OpenPort(settings.SerialDevice, settings.SerialBaud, commandQueue)
		if err != nil {
			// Le port série est optionnel : on continue sans lui.
			log.Printf("Main: port série indisponible (%v), on continue sans.", err)
		} else {
			port.Start(ctx)
		}
	}
	go loop.Run(ctx)

	log.Println("Système entièrement démarré.")

	// --- ÉTAPE 5 : UI OU CONSOLE ---
	if settings.UI {
		// ShowAndRun doit tenir le thread principal.
		ui.Run(ctx, ui.NewController(state, store, commandQueue, settings.FlowerCount))
		return
	}

	runConsole(commandQueue, cancel)
}

// runConsole lit le protocole texte sur stdin, pratique pour tester
// sans transport.
func runConsole(commandQueue chan<- string, cancel context.CancelFunc) {
	log.Println("=== CONSOLE ===")
	log.Println("Commandes disponibles :")
	log.Println("  RED|GREEN|BLUE|WHITE ON|OFF")
	log.Println("  MODE MANUAL|CHASE|BLINK|FADE|RAINBOW")
	log.Println("  SET BLINK|CHASE|FADE|RAINBOW|TWINKLE <valeur>")
	log.Println("  quit")
	log.Println("===============")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("lampe> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			log.Println("Arrêt du système...")
			cancel()
			return
		default:
			select {
			case commandQueue <- line:
			default:
				log.Println("Console: file de commandes pleine, ligne ignorée.")
			}
		}
	}
}
