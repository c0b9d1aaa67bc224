package runner

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"

	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/logging"
)

// relayMessage is the wire format the injected shim posts back over the
// WebSocket: {kind: log|error, payload: [...]}.
type relayMessage struct {
	Kind    string   `json:"kind"`
	Payload []string `json:"payload"`
}

// PreviewServer serves the last rendered document on a loopback address and
// relays console output from the page back to the host console. The document
// path carries a per-session token so stale browser tabs from earlier
// sessions cannot reach the current one.
type PreviewServer struct {
	console  console.Console
	logger   *log.Logger
	token    string
	upgrader websocket.Upgrader
	minifier *minify.M

	mu   sync.Mutex
	doc  string
	srv  *http.Server
	addr string
}

// NewPreviewServer creates a stopped preview server.
func NewPreviewServer(c console.Console) *PreviewServer {
	m := minify.New()
	m.AddFunc("text/html", mhtml.Minify)

	return &PreviewServer{
		console:  c,
		logger:   logging.Get("preview"),
		token:    uuid.NewString(),
		minifier: m,
		doc:      BlankDocument,
	}
}

// Start begins listening on listenAddr (e.g. "127.0.0.1:0") and serves until
// Stop. It returns once the listener is bound.
func (p *PreviewServer) Start(listenAddr string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.srv != nil {
		return nil
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("bind preview listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/"+p.token+"/", p.handleDoc)
	mux.HandleFunc("/"+p.token+"/ws", p.handleRelay)

	p.srv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	p.addr = ln.Addr().String()

	go func() {
		if err := p.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			p.logger.Error("preview server stopped", "error", err)
		}
	}()

	p.logger.Info("preview server started", "url", p.urlLocked())
	return nil
}

// Stop shuts the server down.
func (p *PreviewServer) Stop(ctx context.Context) error {
	p.mu.Lock()
	srv := p.srv
	p.srv = nil
	p.addr = ""
	p.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Running reports whether the server is listening.
func (p *PreviewServer) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.srv != nil
}

// URL returns the address to open in a browser, empty when stopped.
func (p *PreviewServer) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.urlLocked()
}

func (p *PreviewServer) urlLocked() string {
	if p.addr == "" {
		return ""
	}
	return fmt.Sprintf("http://%s/%s/", p.addr, p.token)
}

// Render replaces the served document. The document is minified before
// serving; a minify failure falls back to serving it unminified.
func (p *PreviewServer) Render(doc string) error {
	minified, err := p.minifier.String("text/html", doc)
	if err != nil {
		p.logger.Warn("minify failed, serving unminified", "error", err)
		minified = doc
	}

	p.mu.Lock()
	p.doc = minified
	p.mu.Unlock()
	return nil
}

// Clear resets the served document to the blank page.
func (p *PreviewServer) Clear() error {
	p.mu.Lock()
	p.doc = BlankDocument
	p.mu.Unlock()
	return nil
}

func (p *PreviewServer) handleDoc(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	doc := p.doc
	addr := p.addr
	p.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, InjectRelay(doc, addr, p.token))
}

func (p *PreviewServer) handleRelay(w http.ResponseWriter, r *http.Request) {
	conn, err := p.upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.logger.Warn("relay upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		var msg relayMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		text := strings.Join(msg.Payload, " ")
		if msg.Kind == "error" {
			p.console.Append(console.KindError, "Error: "+text)
		} else {
			p.console.Append(console.KindLog, text)
		}
	}
}

// InjectRelay inserts the console-forwarding shim into a document's head (or
// prepends it). The shim overrides console.log, queues messages until the
// WebSocket opens, and forwards uncaught page errors.
func InjectRelay(doc, addr, token string) string {
	shim := fmt.Sprintf(`<script>
(function(){
  var queue = [];
  var ws = new WebSocket("ws://%s/%s/ws");
  var open = false;
  function post(kind, args) {
    var msg = JSON.stringify({kind: kind, payload: Array.prototype.map.call(args, String)});
    if (open) { try { ws.send(msg); } catch (e) {} } else { queue.push(msg); }
  }
  ws.onopen = function() {
    open = true;
    for (var i = 0; i < queue.length; i++) { try { ws.send(queue[i]); } catch (e) {} }
    queue = [];
  };
  window.__minide = {
    log: function() { post("log", arguments); },
    error: function() { post("error", arguments); }
  };
  var orig = console.log;
  console.log = function() { post("log", arguments); orig.apply(console, arguments); };
  window.addEventListener("error", function(e) { post("error", [e.message]); });
})();
</script>`, addr, token)

	if strings.Contains(doc, "<head>") {
		return strings.Replace(doc, "<head>", "<head>"+shim, 1)
	}
	return shim + doc
}
