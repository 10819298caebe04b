package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"advworld/pkg/game/renderer"
)

// styleClass maps glyph styles to the CSS classes of the page
var styleClass = map[renderer.TextStyle]string{
	renderer.StyleWall:     "wall",
	renderer.StyleDoor:     "door",
	renderer.StyleKey:      "key",
	renderer.StyleBomb:     "bomb",
	renderer.StyleTorch:    "torch",
	renderer.StyleRiddle:   "riddle",
	renderer.StyleSpring:   "spring",
	renderer.StyleObstacle: "obstacle",
	renderer.StyleSwitch:   "switch",
	renderer.StyleTeleport: "teleport",
	renderer.StyleDark:     "dark",
	renderer.StylePlayer:   "player",
	renderer.StyleLegend:   "legend",
	renderer.StyleStatus:   "status",
}

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Adventure World - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .door { color: #ffff00; font-weight: bold; }
        .key { color: #4444ff; font-weight: bold; }
        .bomb { color: #ff4444; font-weight: bold; }
        .torch { color: #ffaa00; }
        .riddle { color: #ff66ff; font-weight: bold; }
        .spring { color: #00ffff; }
        .obstacle { color: #bb86fc; }
        .switch { color: #00aaaa; font-weight: bold; }
        .teleport { color: #ff66ff; }
        .dark { color: #333; }
        .legend { color: #4444ff; }
        .status { color: #fff; font-weight: bold; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`

// WriteScreenshotHTML writes f as a coloured HTML page
func WriteScreenshotHTML(w io.Writer, f *renderer.Frame) error {
	var sb strings.Builder
	sb.WriteString(screenshotHead)
	sb.WriteString(fmt.Sprintf(`    <div class="header">Room %d, cycle %d</div>`+"\n", f.Room, f.Cycle))

	sb.WriteString(`    <div class="map-container">` + "\n")
	for y := range f.Board {
		sb.WriteString(`        <div class="map-row">`)
		for _, c := range f.Board[y] {
			glyph := html.EscapeString(string(c.Glyph))
			if class, ok := styleClass[c.Style]; ok {
				sb.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, glyph))
			} else {
				sb.WriteString(glyph)
			}
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString(`    </div>` + "\n")

	for _, msg := range []string{f.StatusLine(), f.Message} {
		if msg != "" {
			sb.WriteString(fmt.Sprintf(`    <div class="message">%s</div>`+"\n", html.EscapeString(msg)))
		}
	}
	sb.WriteString("</body>\n</html>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// SaveScreenshotHTML saves f as screenshot-<time>.html and returns the file name
func SaveScreenshotHTML(f *renderer.Frame) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	out, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := WriteScreenshotHTML(out, f); err != nil {
		return "", err
	}
	return filename, nil
}
