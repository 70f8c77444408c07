package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/vadim-su/mdnswire/pkg/mdns"
)

func main() {
	var packetFile string
	var sourceAddr string
	var sourcePort uint

	flag.StringVar(&packetFile, "packet", "", "path to a raw mDNS packet")
	flag.StringVar(&sourceAddr, "src", "0.0.0.0", "source address to attribute the packet to")
	flag.UintVar(&sourcePort, "port", 5353, "source port to attribute the packet to")
	flag.Parse()

	if packetFile == "" {
		log.Fatal("-packet is required")
	}

	raw, err := os.ReadFile(packetFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", packetFile, err)
	}

	msg, err := mdns.Decode(raw, net.ParseIP(sourceAddr), uint16(sourcePort))
	if err != nil {
		log.Fatalf("Failed to decode packet: %v", err)
	}

	dump(msg)
}

func dump(msg *mdns.Message) {
	fmt.Printf("transaction id: %d\n", msg.TransactionID)
	fmt.Printf("response: %v  truncated: %v\n", msg.IsResponse, msg.IsTruncated)
	fmt.Printf("source: %s:%d\n", msg.SourceAddr, msg.SourcePort)

	fmt.Printf("queries (%d):\n", len(msg.Queries))
	for _, q := range msg.Queries {
		fmt.Printf("  %s %s unicast-response=%v\n", q.Name, q.Type, q.UnicastResponse)
	}

	fmt.Printf("records (%d):\n", len(msg.Records))
	for _, r := range msg.Records {
		fmt.Printf("  %s %s flush=%v ttl=%d %s\n", r.Name, r.Type, r.FlushCache, r.TTL, payload(r))
	}
}

func payload(r mdns.Record) string {
	switch r.Type {
	case mdns.TypeA:
		return r.A.String()
	case mdns.TypeAAAA:
		return r.AAAA.String()
	case mdns.TypePTR:
		return string(r.PTR)
	case mdns.TypeSRV:
		return fmt.Sprintf("%d %d %d %s", r.SRV.Priority, r.SRV.Weight, r.SRV.Port, r.SRV.Target)
	case mdns.TypeTXT:
		entries := r.TXT.Entries()
		out := make([]string, 0, len(entries))
		for _, attr := range entries {
			if attr.Absent {
				out = append(out, string(attr.Key))
			} else {
				out = append(out, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
			}
		}
		return fmt.Sprintf("%v", out)
	case mdns.TypeNSEC:
		return fmt.Sprintf("next=%s bitmap=%d bytes", r.NSEC.NextDomainName, len(r.NSEC.Bitmap))
	default:
		return ""
	}
}
