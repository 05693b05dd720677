package display

import (
	"encoding/json"
	"fmt"
	"houseprojects/domain"
	"houseprojects/domain/project"
	"houseprojects/event"
	"houseprojects/persistence"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	MessageProjectsUpdated = "PROJECTS_UPDATED"
	MessageGetProjects     = "GET_PROJECTS"
	MessageCompleteProject = "COMPLETE_PROJECT"

	maxMessageSize = 4096
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Payload is what the display receives after every change.
type Payload struct {
	Projects []domain.Project `json:"projects"`
	Names    []domain.Name    `json:"names"`
}

var LoadPayloadFunc = LoadPayload

func LoadPayload() (*Payload, error) {
	payload := Payload{Projects: []domain.Project{}, Names: []domain.Name{}}
	if err := persistence.ActiveFileStore.Load(persistence.CollectionProjects, &payload.Projects); err != nil {
		return nil, err
	}
	if err := persistence.ActiveFileStore.Load(persistence.CollectionNames, &payload.Names); err != nil {
		return nil, err
	}
	return &payload, nil
}

type HubOptions struct {
	// ClientTTL removes clients without any traffic (messages or pongs) for this long.
	ClientTTL time.Duration
	// RefreshInterval is the minimal gap between two answered refresh requests of one client.
	RefreshInterval time.Duration
	WriteTimeout    time.Duration
	PingInterval    time.Duration
}

func DefaultHubOptions() HubOptions {
	return HubOptions{
		ClientTTL:       3 * time.Minute,
		RefreshInterval: time.Second,
		WriteTimeout:    10 * time.Second,
		PingInterval:    30 * time.Second,
	}
}

// Hub pushes the display payload to connected websocket clients. Nothing is queued:
// a client that misses a push gets the next one or asks for a refresh.
type Hub struct {
	opts     HubOptions
	clients  *cache.Cache
	upgrader websocket.Upgrader
}

type client struct {
	id      string
	conn    *websocket.Conn
	limiter *rate.Limiter

	writeLock sync.Mutex
	closeOnce sync.Once
	done      chan struct{}
}

func NewHub(opts HubOptions) *Hub {
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DefaultHubOptions().WriteTimeout
	}
	cleanup := opts.ClientTTL / 2
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	h := &Hub{
		opts:     opts,
		clients:  cache.New(opts.ClientTTL, cleanup),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
	h.clients.OnEvicted(func(id string, v interface{}) {
		if cl, ok := v.(*client); ok {
			cl.close()
		}
		logrus.WithField("clientId", id).Info("display client removed")
	})
	return h
}

// Serve upgrades the request and runs the read loop of one client until it disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Warnf("websocket upgrade failed: %v", err)
		return
	}
	cl := &client{
		id:      uuid.New().String(),
		conn:    conn,
		limiter: rate.NewLimiter(rate.Every(h.opts.RefreshInterval), 1),
		done:    make(chan struct{}),
	}
	h.clients.Set(cl.id, cl, cache.DefaultExpiration)
	logrus.WithField("clientId", cl.id).Infof("display client connected (%d total)", h.ClientCount())

	if err := h.sendPayload(cl); err != nil {
		h.drop(cl, err)
		return
	}
	if h.opts.PingInterval > 0 {
		go h.keepAlive(cl)
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetPongHandler(func(string) error {
		h.touch(cl)
		return nil
	})
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			h.drop(cl, err)
			return
		}
		h.touch(cl)
		h.handleMessage(cl, data)
	}
}

// Broadcast loads the current payload and writes it to every client, returning how many received it.
func (h *Hub) Broadcast() (int, error) {
	payload, err := LoadPayloadFunc()
	if err != nil {
		logrus.Errorf("failed to load display payload: %v", err)
		return 0, err
	}
	data, err := json.Marshal(Message{Type: MessageProjectsUpdated, Data: payload})
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, item := range h.clients.Items() {
		cl := item.Object.(*client)
		if err := h.write(cl, data); err != nil {
			h.drop(cl, err)
			continue
		}
		delivered++
	}
	logrus.Debugf("broadcast %s to %d client(s)", MessageProjectsUpdated, delivered)
	return delivered, nil
}

// HandleEvent pushes the payload after any change, it never fails the change itself.
func (h *Hub) HandleEvent(record *event.EventRecord) *event.EventHandleResult {
	n, err := h.Broadcast()
	if err != nil {
		return &event.EventHandleResult{Success: false, HandlerIdentifier: "display-hub",
			Message: fmt.Sprintf("push after %s %s failed: %v", record.SourceType, record.EventCategory, err)}
	}
	return &event.EventHandleResult{Success: true, HandlerIdentifier: "display-hub",
		Message: fmt.Sprintf("pushed %s %s to %d client(s)", record.SourceType, record.EventCategory, n)}
}

func (h *Hub) ClientCount() int {
	return len(h.clients.Items())
}

// Close disconnects every client.
func (h *Hub) Close() {
	for id := range h.clients.Items() {
		h.clients.Delete(id)
	}
}

func (h *Hub) handleMessage(cl *client, data []byte) {
	msg := inboundMessage{}
	if err := json.Unmarshal(data, &msg); err != nil {
		logrus.WithField("clientId", cl.id).Debugf("ignore malformed message: %v", err)
		return
	}

	switch msg.Type {
	case MessageGetProjects:
		if !cl.limiter.Allow() {
			logrus.WithField("clientId", cl.id).Debug("refresh request throttled")
			return
		}
		if err := h.sendPayload(cl); err != nil {
			h.drop(cl, err)
		}
	case MessageCompleteProject:
		id, err := parseMessageID(msg.Data)
		if err != nil {
			logrus.WithField("clientId", cl.id).Warn(err)
			return
		}
		if _, err := project.CompleteProjectFunc(id); err != nil {
			logrus.WithField("clientId", cl.id).Warnf("failed to complete project %s: %v", id, err)
		}
	default:
		logrus.WithField("clientId", cl.id).Debugf("ignore message type '%s'", msg.Type)
	}
}

// parseMessageID accepts the id as JSON string or number.
func parseMessageID(data json.RawMessage) (types.ID, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}
	id, err := types.ParseID(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid project id '%s'", string(data))
	}
	return id, nil
}

func (h *Hub) sendPayload(cl *client) error {
	payload, err := LoadPayloadFunc()
	if err != nil {
		logrus.Errorf("failed to load display payload: %v", err)
		return nil
	}
	data, err := json.Marshal(Message{Type: MessageProjectsUpdated, Data: payload})
	if err != nil {
		return err
	}
	return h.write(cl, data)
}

func (h *Hub) write(cl *client, data []byte) error {
	cl.writeLock.Lock()
	defer cl.writeLock.Unlock()
	_ = cl.conn.SetWriteDeadline(time.Now().Add(h.opts.WriteTimeout))
	return cl.conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Hub) keepAlive(cl *client) {
	ticker := time.NewTicker(h.opts.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(h.opts.WriteTimeout)
			if err := cl.conn.WriteControl(websocket.PingMessage, []byte("ping"), deadline); err != nil {
				h.drop(cl, err)
				return
			}
		case <-cl.done:
			return
		}
	}
}

// touch extends the registration of a client that is still registered.
func (h *Hub) touch(cl *client) {
	if _, ok := h.clients.Get(cl.id); ok {
		h.clients.Set(cl.id, cl, cache.DefaultExpiration)
	}
}

func (h *Hub) drop(cl *client, cause error) {
	logrus.WithField("clientId", cl.id).Debugf("dropping display client: %v", cause)
	h.clients.Delete(cl.id)
	cl.close()
}

func (cl *client) close() {
	cl.closeOnce.Do(func() {
		close(cl.done)
		_ = cl.conn.Close()
	})
}
