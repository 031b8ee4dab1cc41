// Package templates composes the dashboard page components.
package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/themugglecoder/quantumrand/internal/storage"
)

// AppName is the dashboard display name.
const AppName = "Quantum Randomness Generator"

var printer = message.NewPrinter(language.English)

// FormatCount renders n with grouping separators for display.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// DashboardProps carries everything the dashboard page renders.
type DashboardProps struct {
	DefaultBits int
	MaxBits     int
	Presets     []int
	History     []storage.GenerationEvent
	Now         time.Time
}

// Dashboard renders the full dashboard page.
func Dashboard(props DashboardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeHead(w); err != nil {
			return err
		}
		if err := writeGeneratePanel(w, props); err != nil {
			return err
		}
		if err := writeHistoryPanel(w, props.History); err != nil {
			return err
		}
		return writeFoot(w, props.Now)
	})
}

func writeHead(w io.Writer) error {
	_, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>`+templ.EscapeString(AppName)+`</title>
  <link rel="stylesheet" href="/static/styles.css"/>
  <script src="/static/app.js" defer></script>
</head>
<body>
  <div class="wrap">
    <header>
      <div class="title">`+templ.EscapeString(AppName)+` <span class="badge">crypto/rand</span></div>
    </header>
    <div class="grid">
`)
	return err
}

func writeGeneratePanel(w io.Writer, props DashboardProps) error {
	if _, err := io.WriteString(w, `      <section class="panel">
        <h3>Generate</h3>
        <div class="controls">
          <select id="preset">
`); err != nil {
		return err
	}
	for _, preset := range props.Presets {
		selected := ""
		if preset == props.DefaultBits {
			selected = ` selected`
		}
		if _, err := fmt.Fprintf(w, "            <option value=\"%d\"%s>%s bits</option>\n", preset, selected, FormatCount(preset)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `          </select>
          <input id="custom" type="number" min="1" max="%d" step="1" placeholder="Custom length (bits)"/>
          <button class="btn" id="btnGo">Generate</button>
        </div>
        <div class="bitbox" id="bitbox">Click &#34;Generate&#34; to produce a fresh random sequence&#8230;</div>
        <div class="statrow">
          <div class="stat"><div class="k">Zeros</div><div class="v" id="zeros">&#8211;</div></div>
          <div class="stat"><div class="k">Ones</div><div class="v" id="ones">&#8211;</div></div>
          <div class="stat"><div class="k">Entropy (H)</div><div class="v" id="entropy">&#8211;</div></div>
          <div class="stat"><div class="k">Time</div><div class="v" id="time">&#8211;</div></div>
        </div>
        <div class="distbar"><div class="zeros" id="dist-zeros" style="width:50%%"></div><div class="ones" id="dist-ones" style="width:50%%"></div></div>
        <div class="ticker" id="ticker">live sample stream&#8230;</div>
      </section>
`, props.MaxBits)
	return err
}

func writeHistoryPanel(w io.Writer, history []storage.GenerationEvent) error {
	if _, err := io.WriteString(w, `      <section class="panel history">
        <h3>Recent Generations</h3>
`); err != nil {
		return err
	}
	if len(history) == 0 {
		if _, err := io.WriteString(w, "        <p>No generations recorded yet.</p>\n"); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `        <table>
          <thead><tr><th>When (UTC)</th><th>Bits</th><th>Zeros</th><th>Ones</th><th>H</th><th>ms</th></tr></thead>
          <tbody>
`); err != nil {
			return err
		}
		for _, evt := range history {
			if _, err := fmt.Fprintf(w,
				"            <tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%.4f</td><td>%d</td></tr>\n",
				templ.EscapeString(evt.Timestamp.UTC().Format("15:04:05")),
				FormatCount(evt.Length),
				FormatCount(evt.Zeros),
				FormatCount(evt.Ones),
				evt.Entropy,
				evt.DurationMS,
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "          </tbody>\n        </table>\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "      </section>\n")
	return err
}

func writeFoot(w io.Writer, now time.Time) error {
	_, err := fmt.Fprintf(w, `    </div>
    <footer>server UTC: %s</footer>
  </div>
</body>
</html>
`, templ.EscapeString(now.UTC().Format(time.RFC3339)))
	return err
}
