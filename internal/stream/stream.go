// Package stream serves rendered environment frames to a browser over a
// websocket, for live inspection while a simulation runs.
package stream

import (
	"bytes"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>bomberviz</title></head>
<body style="background:#111;margin:0;display:flex;justify-content:center">
<img id="frame" style="image-rendering:pixelated;height:100vh" alt="waiting for frames">
<script>
const ws = new WebSocket("ws://" + location.host + "/frames");
ws.binaryType = "blob";
ws.onmessage = (ev) => {
	const img = document.getElementById("frame");
	const url = URL.createObjectURL(ev.data);
	img.onload = () => URL.revokeObjectURL(url);
	img.src = url;
};
</script>
</body>
</html>`

// Server fans the latest PNG-encoded frame out to every connected client.
// Slow clients skip frames rather than stalling the publisher.
type Server struct {
	mu     sync.Mutex
	subs   map[chan []byte]struct{}
	latest []byte
}

// NewServer creates a frame server with no clients.
func NewServer() *Server {
	return &Server{subs: make(map[chan []byte]struct{})}
}

// Publish encodes the frame as PNG and offers it to every client.
func (s *Server) Publish(frame image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return err
	}
	data := buf.Bytes()

	s.mu.Lock()
	s.latest = data
	for ch := range s.subs {
		select {
		case ch <- data:
		default: // client still draining the previous frame
		}
	}
	s.mu.Unlock()
	return nil
}

// Handler returns the HTTP handler: the viewer page at / and the websocket
// frame feed at /frames.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexPage))
	})
	mux.HandleFunc("/frames", s.serveFrames)
	return mux
}

// subscribe registers a client channel primed with the latest frame.
func (s *Server) subscribe() chan []byte {
	ch := make(chan []byte, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	if s.latest != nil {
		ch <- s.latest
	}
	s.mu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan []byte) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

func (s *Server) serveFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stream: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	// Reader goroutine: consume control frames and detect the client going
	// away so the writer loop below can exit.
	closed := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pings := time.NewTicker(pingPeriod)
	defer pings.Stop()

	for {
		select {
		case data := <-ch:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-pings.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
