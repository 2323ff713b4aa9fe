// dungeonforge-server serves the dungeon viewer over SSH: every connection
// gets a freshly generated dungeon to explore in its terminal. Build:
//
//	go build -o dungeonforge-server ./cmd/server
//
// Usage:
//
//	./dungeonforge-server [--port 2222] [--key server_host_key] [--width 21] [--height 21]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	mrand "math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"dungeonforge/assets"
	"dungeonforge/internal/content"
	"dungeonforge/internal/generate"
	"dungeonforge/internal/render"
	internalssh "dungeonforge/internal/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	width := flag.Int("width", 21, "dungeon width")
	height := flag.Int("height", 21, "dungeon height")
	theme := flag.String("theme", "forgotten crypt", "dungeon theme")
	minPath := flag.Int("min-path", 10, "minimum main path length")
	seed := flag.Int64("seed", 0, "fixed generation seed (0 = fresh dungeon per connection)")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, *width, *height, *theme, *minPath, *seed)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — appropriate for a private home server.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("dungeonforge SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handleSession generates a dungeon and runs the viewer for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func handleSession(s gossh.Session, width, height int, theme string, minPath int, seed int64) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "The viewer requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := mrand.New(mrand.NewSource(seed))
	d, _, err := generate.Generate(&generate.Config{
		Width:         width,
		Height:        height,
		Theme:         theme,
		MinPathLength: minPath,
		Rand:          rng,
	})
	if err != nil {
		fmt.Fprintf(s, "Generation failed: %v\n", err)
		return
	}
	def := assets.ThemeByID(theme)
	if err := generate.Populate(d, def.Catalog, rng); err != nil {
		fmt.Fprintf(s, "Population failed: %v\n", err)
		return
	}
	describer := content.NewStockDescriber(def.Fragments)
	if err := describer.Describe(s.Context(), theme, d.Rooms()); err != nil {
		log.Printf("describe: %v", err)
	}

	// Determine the terminal type from the session environment.
	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	// Create a tcell screen backed by this SSH session. TERM must be set
	// in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewTerminal(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	glyphs := render.Glyphs{
		Room:     def.RoomGlyph,
		Entrance: def.EntranceGlyph,
		Exit:     def.ExitGlyph,
		Chest:    def.ChestGlyph,
		Enemy:    def.EnemyGlyph,
	}
	render.NewViewer(screen, d, glyphs).Run()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "dungeonforge server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
