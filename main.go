package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/john/chatview/internal/config"
	"github.com/john/chatview/internal/event"
	"github.com/john/chatview/internal/kick"
	"github.com/john/chatview/internal/layout"
	"github.com/john/chatview/internal/message"
	"github.com/john/chatview/internal/twitch"
	"github.com/john/chatview/internal/ui"
	"github.com/john/chatview/internal/viewer"
)

// connector is the shape both platform clients share.
type connector interface {
	Start(ctx context.Context, messageChan chan<- message.Message) error
}

func main() {
	// Get config path from environment variable or use default
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "chatview.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	screen, err := ui.New()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}

	// The screen owns the terminal from here on; route connector logs to a
	// file when asked for, otherwise drop them.
	restoreLog := redirectLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// SIGTERM tears down like a quit; Ctrl-C arrives as a key event in raw
	// mode, so it is handled by the render loop instead.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	messageChan := make(chan message.Message, cfg.Viewer.EventBuffer)

	var conn connector
	switch cfg.Platform {
	case "kick":
		conn = kick.New(cfg.Channel, cfg.Kick.ChatroomID)
	default:
		conn = twitch.New(cfg.Twitch.Username, cfg.Twitch.OAuth, cfg.Channel)
	}

	go func() {
		if err := conn.Start(ctx, messageChan); err != nil && err != context.Canceled {
			log.Printf("%s connector error: %v", cfg.Platform, err)
		}
	}()

	agg := event.New(cfg.Viewer.EventBuffer, time.Duration(cfg.Viewer.TickMillis)*time.Millisecond)
	agg.Start(ctx, messageChan, screen.Keys())

	v := viewer.New(layoutConfig(cfg), cfg.Viewer.BufferSize, screen)
	runErr := v.Run(agg.Events())

	// Restore the terminal before reporting anything.
	cancel()
	screen.Fini()
	restoreLog()

	if runErr != nil {
		log.Fatalf("Viewer error: %v", runErr)
	}
}

// layoutConfig maps the resolved settings onto the layout engine's config.
func layoutConfig(cfg *config.Config) layout.Config {
	badge := func(b config.BadgeConfig) layout.BadgeStyle {
		return layout.BadgeStyle{Symbol: b.Symbol, Width: b.Width}
	}
	return layout.Config{
		Subscriber:  badge(cfg.Badges.Subscriber),
		Founder:     badge(cfg.Badges.Founder),
		Moderator:   badge(cfg.Badges.Moderator),
		VIP:         badge(cfg.Badges.VIP),
		InvertBelow: uint8(cfg.Viewer.InvertBelow),
	}
}

// redirectLog points the standard logger at CHATVIEW_LOG (if set) or
// discards it, and returns a func restoring stderr output.
func redirectLog() func() {
	var out io.Writer = io.Discard
	var file *os.File
	if path := os.Getenv("CHATVIEW_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			out = f
			file = f
		}
	}
	log.SetOutput(out)
	return func() {
		log.SetOutput(os.Stderr)
		if file != nil {
			file.Close()
		}
	}
}
