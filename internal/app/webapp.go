package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/emforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// needsWebapp reports whether the build should get a browser shell. GUI
// builds are detected from the ImGui flag, GL-related user flags, or
// GUI-ish keywords in the project path.
func needsWebapp(cfg domain.BuildConfiguration) bool {
	if !cfg.Webapp || cfg.Target != domain.TargetWeb {
		return false
	}
	if cfg.WithImGui {
		return true
	}
	for _, marker := range []string{"WEBGL", "USE_SDL", "USE_GLFW"} {
		if strings.Contains(cfg.RawFlags, marker) {
			return true
		}
	}
	path := strings.ToLower(cfg.ProjectPath)
	for _, keyword := range []string{"imgui", "gui", "graphics", "opengl", "sdl", "glfw"} {
		if strings.Contains(path, keyword) {
			return true
		}
	}
	return false
}

// createWebapp renders the browser shell into the output directory next to
// the compiled artifacts.
func (a *App) createWebapp(cfg domain.BuildConfiguration) error {
	data := struct{ Name string }{Name: cfg.OutputName}

	for _, file := range webappFiles {
		var buf bytes.Buffer
		if err := file.tmpl.Execute(&buf, data); err != nil {
			return zerr.With(errors.Join(domain.ErrWebappWriteFailed, err), "file", file.name)
		}
		path := filepath.Join(cfg.OutputDir, file.name)
		if err := os.WriteFile(path, buf.Bytes(), file.perm); err != nil {
			return zerr.With(errors.Join(domain.ErrWebappWriteFailed, err), "file", path)
		}
		a.logger.Debug("wrote " + path)
	}

	a.logger.Info("webapp shell written, serve it with: python3 " +
		filepath.Join(cfg.OutputDir, "serve.py"))
	return nil
}

type webappFile struct {
	name string
	perm os.FileMode
	tmpl *template.Template
}

var webappFiles = []webappFile{
	{"index.html", domain.FilePerm, template.Must(template.New("index.html").Parse(indexHTML))},
	{"style.css", domain.FilePerm, template.Must(template.New("style.css").Parse(styleCSS))},
	{"serve.py", domain.DirPerm, template.Must(template.New("serve.py").Parse(servePy))},
	{"README.md", domain.FilePerm, template.Must(template.New("README.md").Parse(readmeMD))},
}

// The loader is built with MODULARIZE and EXPORT_ES6, so the page imports
// the module factory and hands it the canvas.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}}</title>
    <link rel="stylesheet" href="style.css">
</head>
<body>
    <header class="header">
        <h1>{{.Name}}</h1>
        <span id="status" class="status loading">Loading&hellip;</span>
    </header>
    <main class="canvas-container">
        <canvas id="canvas" width="1280" height="720" tabindex="-1"></canvas>
    </main>
    <footer class="controls">
        <button id="fullscreen">Fullscreen</button>
    </footer>
    <script type="module">
        import createModule from './{{.Name}}.js';

        const status = document.getElementById('status');
        const canvas = document.getElementById('canvas');
        canvas.addEventListener('webglcontextlost', (e) => {
            status.textContent = 'WebGL context lost, reload the page';
            status.className = 'status error';
            e.preventDefault();
        }, false);

        document.getElementById('fullscreen').addEventListener('click', () => {
            if (!document.fullscreenElement) {
                canvas.requestFullscreen();
            } else {
                document.exitFullscreen();
            }
        });

        createModule({
            canvas,
            print: (text) => console.log(text),
            printErr: (text) => console.error(text),
        }).then(() => {
            status.textContent = 'Running';
            status.className = 'status ready';
        }).catch((err) => {
            status.textContent = 'Failed to load: ' + err;
            status.className = 'status error';
        });
    </script>
</body>
</html>
`

const styleCSS = `* {
    box-sizing: border-box;
    margin: 0;
    padding: 0;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
    background: linear-gradient(135deg, #1e1e2e 0%, #2d2d3f 100%);
    color: #e0e0e0;
    min-height: 100vh;
    display: flex;
    flex-direction: column;
}

.header {
    text-align: center;
    padding: 16px;
}

.header h1 {
    color: #6366f1;
    font-size: 1.6rem;
    margin-bottom: 8px;
}

.status {
    display: inline-block;
    padding: 4px 16px;
    border-radius: 16px;
    font-family: 'Consolas', 'Monaco', monospace;
    font-size: 0.85rem;
}

.status.loading { background: #3b82f6; color: white; }
.status.ready   { background: #059669; color: white; }
.status.error   { background: #dc2626; color: white; }

.canvas-container {
    flex: 1;
    display: flex;
    justify-content: center;
    align-items: center;
    padding: 20px;
}

canvas {
    background: #000;
    border: 2px solid #4b5563;
    border-radius: 8px;
    max-width: 100%;
    max-height: 100%;
}

.controls {
    text-align: center;
    padding: 16px;
}

button {
    background: #6366f1;
    color: white;
    border: none;
    padding: 10px 20px;
    border-radius: 6px;
    cursor: pointer;
    font-size: 14px;
}

button:hover {
    background: #4f46e5;
}
`

const servePy = `#!/usr/bin/env python3
"""Development server for {{.Name}}.

Serves .wasm with the right MIME type and the cross-origin isolation
headers WebAssembly threads need.

Usage: python3 serve.py [port]
"""

import http.server
import os
import socketserver
import sys


class WasmHandler(http.server.SimpleHTTPRequestHandler):
    extensions_map = {
        **http.server.SimpleHTTPRequestHandler.extensions_map,
        ".wasm": "application/wasm",
        ".js": "application/javascript",
        ".mjs": "application/javascript",
    }

    def end_headers(self):
        self.send_header("Cross-Origin-Embedder-Policy", "require-corp")
        self.send_header("Cross-Origin-Opener-Policy", "same-origin")
        self.send_header("Cache-Control", "no-cache, no-store, must-revalidate")
        super().end_headers()


def main():
    port = int(sys.argv[1]) if len(sys.argv) > 1 else 8080
    os.chdir(os.path.dirname(os.path.abspath(__file__)))

    missing = [f for f in ("{{.Name}}.js", "{{.Name}}.wasm", "index.html")
               if not os.path.exists(f)]
    if missing:
        print("missing files: " + ", ".join(missing))
        sys.exit(1)

    with socketserver.TCPServer(("", port), WasmHandler) as httpd:
        print(f"serving {{.Name}} at http://localhost:{port}")
        try:
            httpd.serve_forever()
        except KeyboardInterrupt:
            pass


if __name__ == "__main__":
    main()
`

const readmeMD = "# {{.Name}}\n" + `
WebAssembly application compiled from C++.

## Files

- ` + "`{{.Name}}.js`" + ` - JavaScript loader (ES6 module)
- ` + "`{{.Name}}.wasm`" + ` - WebAssembly binary
- ` + "`index.html`" + ` - browser shell
- ` + "`style.css`" + ` - shell stylesheet
- ` + "`serve.py`" + ` - development HTTP server

## Running

` + "```bash" + `
python3 serve.py [port]
` + "```" + `

Then open http://localhost:8080. A plain file:// open will not work;
WebAssembly must be served over HTTP with the correct MIME types.

Any other server works as long as it serves ` + "`.wasm`" + ` as
` + "`application/wasm`" + ` and sends the cross-origin isolation headers
(` + "`Cross-Origin-Embedder-Policy: require-corp`" + `,
` + "`Cross-Origin-Opener-Policy: same-origin`" + `).
`
