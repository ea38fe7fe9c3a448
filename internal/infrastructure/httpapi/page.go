package httpapi

import (
	"html/template"
	"log"
	"net/http"

	"digitalGarden/internal/domain/lamp"
)

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Digital Garden</title></head>
<body>
<h1>Digital Garden</h1>

<h2>Mode : {{.Mode}}</h2>
<p>
{{range .Modes}}<a href="/mode/{{.}}">{{.}}</a> {{end}}
</p>

<h2>Canaux</h2>
<table border="1" cellpadding="4">
<tr><th>Canal</th><th>Niveau</th><th>Manuel</th><th></th></tr>
{{range .Channels}}
<tr>
  <td>{{.Name}}</td>
  <td>{{.Level}}</td>
  <td>{{if .On}}ON{{else}}OFF{{end}}</td>
  <td><a href="/{{.Name}}/on">on</a> <a href="/{{.Name}}/off">off</a></td>
</tr>
{{end}}
</table>

<h2>Fleurs</h2>
<table border="1" cellpadding="4">
<tr><th>Fleur</th><th>Niveau</th></tr>
{{range .Flowers}}
<tr><td>{{.Name}}</td><td>{{.Level}}</td></tr>
{{end}}
</table>

<h2>R&eacute;glages</h2>
<ul>
  <li>BLINK : {{.Tunables.BlinkIntervalMs}} ms</li>
  <li>CHASE : {{.Tunables.ChaseIntervalMs}} ms</li>
  <li>FADE : pas {{.Tunables.FadeStep}}</li>
  <li>RAINBOW : {{.Tunables.RainbowSpeedMs}} ms</li>
  <li>TWINKLE : {{.Tunables.TwinkleSpeed}}</li>
</ul>
<p>Changer un r&eacute;glage : <code>/set/&lt;cl&eacute;&gt;/&lt;valeur&gt;</code></p>
</body>
</html>
`))

type channelRow struct {
	Name  string
	Level uint8
	On    bool
}

type pageData struct {
	Mode     string
	Modes    []string
	Channels []channelRow
	Flowers  []channelRow
	Tunables lamp.Tunables
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := s.state.View()
	levels := s.store.Snapshot()

	data := pageData{
		Mode:     view.Mode.String(),
		Modes:    []string{"MANUAL", "CHASE", "BLINK", "FADE", "RAINBOW"},
		Tunables: view.Tunables,
	}
	for i, ch := range lamp.MainChannels {
		data.Channels = append(data.Channels, channelRow{
			Name:  ch.String(),
			Level: levels[ch],
			On:    view.ManualOn[i],
		})
	}
	for i := 0; i < s.flowerCount; i++ {
		ch := lamp.Flower(i)
		data.Flowers = append(data.Flowers, channelRow{Name: ch.String(), Level: levels[ch]})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Printf("HTTP: erreur de rendu de la page: %v", err)
	}
}
