package config

import (
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const publicIPLookupURL = "https://api.ipify.org"

// DetectPublicIP resolves the host's public address for the P2P_IP entry.
// It asks an external lookup service first, then scans local interfaces for
// a non-private IPv4, and finally falls back to loopback. Best effort only;
// networking problems never fail the install run.
func DetectPublicIP(client *http.Client) string {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	if ip := lookupExternalIP(client); ip != "" {
		return ip
	}
	if ip := scanInterfaceIP(); ip != "" {
		return ip
	}
	return "127.0.0.1"
}

func lookupExternalIP(client *http.Client) string {
	resp, err := client.Get(publicIPLookupURL)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return ""
	}

	candidate := strings.TrimSpace(string(body))
	if net.ParseIP(candidate) == nil {
		return ""
	}
	return candidate
}

func scanInterfaceIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil && !ipnet.IP.IsPrivate() {
				return ipnet.IP.String()
			}
		}
	}
	return ""
}
