package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"houseprojects/display"
	"io"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const clearScreen = "\033[H\033[2J"

// DefaultInterval replaces a non-positive Options.Interval.
const DefaultInterval = time.Minute

type Options struct {
	URL      string
	Interval time.Duration
	Title    string
	Out      io.Writer
	// Clear erases the terminal before each frame.
	Clear bool
}

type inbound struct {
	Type string          `json:"type"`
	Data display.Payload `json:"data"`
}

// Run connects to the display channel and redraws the board on every push, asking for a refresh
// each interval. It returns nil when ctx is cancelled and an error when the connection is lost.
func Run(ctx context.Context, opts Options) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, opts.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect %s: %w", opts.URL, err)
	}
	defer conn.Close()
	logrus.Infof("mirror connected to %s", opts.URL)

	payloads := make(chan display.Payload)
	readErr := make(chan error, 1)
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			msg := inbound{}
			if err := json.Unmarshal(data, &msg); err != nil {
				logrus.Warnf("ignore malformed push: %v", err)
				continue
			}
			if msg.Type != display.MessageProjectsUpdated {
				continue
			}
			select {
			case payloads <- msg.Data:
			case <-ctx.Done():
				return
			}
		}
	}()

	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	refresh, _ := json.Marshal(display.Message{Type: display.MessageGetProjects})
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			return nil
		case err := <-readErr:
			return fmt.Errorf("connection to %s lost: %w", opts.URL, err)
		case p := <-payloads:
			now := time.Now()
			frame := Render(opts.Title, display.BuildBoard(p.Projects, p.Names, now), now)
			if opts.Clear {
				frame = clearScreen + frame
			}
			if _, err := io.WriteString(opts.Out, frame); err != nil {
				return err
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, refresh); err != nil {
				return fmt.Errorf("failed to request refresh: %w", err)
			}
		}
	}
}
