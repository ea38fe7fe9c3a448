package httpapi

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"digitalGarden/internal/domain/lamp"
	"digitalGarden/internal/infrastructure/actuator"
)

// Server expose la lampe sur le point d'accès local : une page d'état
// et des chemins de commande. Chaque chemin est traduit en ligne du
// protocole texte et poussé dans la même file que les autres
// transports, l'interpréteur reste l'unique point d'entrée.
type Server struct {
	state       *lamp.State
	store       *actuator.Memory
	out         chan<- string
	flowerCount int
}

func NewServer(state *lamp.State, store *actuator.Memory, out chan<- string, flowerCount int) *Server {
	return &Server{state: state, store: store, out: out, flowerCount: flowerCount}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/mode/{mode}", s.handleMode)
	r.Get("/set/{key}/{value}", s.handleSet)
	r.Get("/{color}/{toggle}", s.handleToggle)
	return r
}

// Start lance le serveur et l'arrête proprement à l'annulation du
// contexte.
func (s *Server) Start(ctx context.Context, port int) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.Router(),
	}

	go func() {
		log.Printf("HTTP: page de contrôle sur le port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP: serveur arrêté: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	color := chi.URLParam(r, "color")
	toggle := chi.URLParam(r, "toggle")
	// Pas de validation ici : une commande invalide sera absorbée en
	// no-op par l'interpréteur, comme sur les autres transports.
	s.enqueue(fmt.Sprintf("%s %s", color, toggle))
	s.seeOther(w, r)
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	s.enqueue("MODE " + chi.URLParam(r, "mode"))
	s.seeOther(w, r)
}

func (s *Server) handleSet(w http.ResponseWriter, r *http.Request) {
	s.enqueue(fmt.Sprintf("SET %s %s", chi.URLParam(r, "key"), chi.URLParam(r, "value")))
	s.seeOther(w, r)
}

func (s *Server) enqueue(line string) {
	line = strings.ToUpper(strings.TrimSpace(line))
	select {
	case s.out <- line:
	default:
		log.Println("HTTP: file de commandes pleine, requête ignorée.")
	}
}

func (s *Server) seeOther(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
