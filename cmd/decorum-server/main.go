// Command decorum-server serves scenario generation over HTTP. Scenarios
// live in memory under opaque tokens until their TTL runs out.
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/namsral/flag"

	"github.com/MJE43/decorum-scenario-go/internal/api"
	"github.com/MJE43/decorum-scenario-go/internal/session"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "HTTP service address")
		sessionTTL = flag.Duration("session_ttl", 4*time.Hour, "How long a stored scenario stays retrievable")
	)
	flag.Parse()

	logger := log.New(log.Writer(), "[decorum-server] ", log.LstdFlags)

	store := session.New(*sessionTTL)
	srv := api.NewServer(store)

	logger.Printf("listening on %s (session ttl %s)", *addr, *sessionTTL)
	if err := http.ListenAndServe(*addr, srv.Routes()); err != nil {
		logger.Fatalf("server: %v", err)
	}
}
