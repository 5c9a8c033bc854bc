package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:8080"`
	RoomID        string `env:"CHAT_ROOM_ID,required=true"`
	Token         string `env:"CHAT_TOKEN,required=true"`
	LogLevel      string `env:"LOG_LEVEL,required=true"`
}

type inboundMessage struct {
	Content string `json:"content"`
}

type outboundMessage struct {
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Lang    string    `json:"lang"`
	At      time.Time `json:"at"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v", err)
	}
	os.Exit(code)
}

// run handles the websocket client lifecycle: configuration loading, the
// receive loop, and forwarding stdin lines as submissions.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish the websocket connection.
	endpoint := url.URL{
		Scheme:   "ws",
		Host:     config.ServerAddress,
		Path:     "/ws",
		RawQuery: url.Values{"room": {config.RoomID}, "token": {config.Token}}.Encode(),
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint.String(), nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	color.Green.Printf(">>> Connected to %s! Listening room %s (Ctrl+C to quit)...\n",
		config.ServerAddress, config.RoomID)

	// 4. Forward stdin lines as submissions.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			msg := inboundMessage{Content: scanner.Text()}
			if err := conn.WriteJSON(msg); err != nil {
				log.Warn("Failed to send message", "error", err)
				return
			}
		}
	}()

	// 5. Message reception loop.
	// Runs until the context is canceled or the server closes the connection.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			// Normal exit if the user triggered a shutdown.
			if ctx.Err() != nil {
				log.Info("Stopping client...")
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("connection error: %w", err)
		}

		var msg outboundMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Warn("Skipping malformed frame", "error", err)
			continue
		}

		color.Cyan.Printf("[%s] ", msg.At.Format(time.TimeOnly))
		color.Bold.Printf("%s: ", msg.Author)
		fmt.Println(msg.Content)
	}
}
