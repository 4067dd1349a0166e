package network

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/fieldtd/engine"
)

// Hub fans world snapshots out to websocket subscribers
// Publish never blocks, slow subscribers lose snapshots instead of stalling the simulation
type Hub struct {
	cfg      *Config
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu     sync.Mutex
	peers  map[PeerID]*peer
	nextID PeerID
	closed bool
}

// NewHub creates a hub, a nil cfg uses DefaultConfig and a nil logger log.Default
func NewHub(cfg *Config, logger *log.Logger) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		peers: make(map[PeerID]*peer),
	}
}

// Handler returns a mux serving /ws and /schema
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	mux.HandleFunc("/schema", serveSchema)
	return mux
}

// ServeWS upgrades the request and registers the connection as a subscriber
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("[NET] upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}

	hello, err := helloMessage()
	if err != nil {
		conn.Close()
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
		conn.Close()
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	h.nextID++
	p := newPeer(h.nextID, conn, h.cfg)
	h.peers[p.ID] = p
	h.mu.Unlock()

	h.logger.Printf("[NET] subscriber %d connected from %s", p.ID, p.Addr)

	go p.writeLoop()
	go func() {
		p.readLoop()
		h.remove(p)
	}()
}

func (h *Hub) remove(p *peer) {
	h.mu.Lock()
	_, ok := h.peers[p.ID]
	delete(h.peers, p.ID)
	h.mu.Unlock()
	if ok {
		h.logger.Printf("[NET] subscriber %d disconnected, %d snapshots dropped", p.ID, p.Dropped.Load())
	}
}

// Publish encodes snap once and queues it on every subscriber
func (h *Hub) Publish(snap engine.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, p := range h.peers {
		p.send(data)
	}
	return nil
}

// Feed publishes every snapshot received on ch until ch closes or ctx is done
func (h *Hub) Feed(ctx context.Context, ch <-chan engine.Snapshot) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-ch:
			if !ok {
				return
			}
			if err := h.Publish(snap); err != nil {
				h.logger.Printf("[NET] publish frame %d: %v", snap.Frame, err)
			}
		}
	}
}

// PeerCount returns the number of connected subscribers
func (h *Hub) PeerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.peers)
}

// Close disconnects every subscriber and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	peers := make([]*peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	clear(h.peers)
	h.mu.Unlock()

	for _, p := range peers {
		p.close()
	}
}

func serveSchema(w http.ResponseWriter, r *http.Request) {
	data, err := Schema()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.Write(data)
}
