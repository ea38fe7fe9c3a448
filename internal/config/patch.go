package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"digitalGarden/internal/domain/artnet"
	"digitalGarden/internal/domain/lamp"
)

// Patch est le câblage physique de la lampe : pour chaque canal, son
// univers ArtNet et son décalage DMX, plus l'IP du contrôleur de
// chaque univers.
type Patch struct {
	Routes     map[lamp.ChannelID]artnet.DMXRoute
	UniverseIP map[int]string
}

// LoadPatchFromExcel lit la feuille de patch (première feuille du
// classeur) : colonnes CANAL, UNIVERS, OFFSET, IP, une ligne d'en-tête.
// Les lignes invalides sont ignorées avec un log, jamais bloquantes.
func LoadPatchFromExcel(path string) (*Patch, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("impossible d'ouvrir le fichier de patch '%s': %w", path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("le fichier de patch ne contient aucune feuille de calcul")
	}
	sheetName := sheetList[0]
	log.Printf("Patch Loader: lecture de la feuille '%s'", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("impossible de lire les lignes de la feuille '%s': %w", sheetName, err)
	}

	patch := &Patch{
		Routes:     make(map[lamp.ChannelID]artnet.DMXRoute),
		UniverseIP: make(map[int]string),
	}

	for i, row := range rows {
		if i == 0 {
			continue // en-tête
		}
		if len(row) < 4 {
			log.Printf("Patch Loader: ligne %d ignorée (pas assez de colonnes)", i+1)
			continue
		}

		ch, okC := lamp.ParseChannel(strings.ToUpper(strings.TrimSpace(row[0])))
		universe, errU := strconv.Atoi(strings.TrimSpace(row[1]))
		offset, errO := strconv.Atoi(strings.TrimSpace(row[2]))
		ip := strings.TrimSpace(row[3])

		if !okC || errU != nil || errO != nil {
			log.Printf("Patch Loader: ligne %d ignorée (format invalide)", i+1)
			continue
		}
		if offset < 0 || offset >= artnet.DMXDataSize {
			log.Printf("Patch Loader: ligne %d ignorée (offset hors de la plage 0-511)", i+1)
			continue
		}

		patch.Routes[ch] = artnet.DMXRoute{Universe: universe, Offset: offset}
		patch.UniverseIP[universe] = ip
	}

	log.Printf("Patch Loader: %d canaux patchés sur %d univers.", len(patch.Routes), len(patch.UniverseIP))
	return patch, nil
}
