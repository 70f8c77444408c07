// Package mdns implements a codec for multicast DNS (mDNS) wire messages.
//
// It translates between raw UDP/5353 packets and the [Message] value type
// covering the RFC 1035 message format (including name compression) and
// the RFC 6762 mDNS extensions this package supports: the cache-flush bit
// on resource records and the unicast-response bit on questions.
//
// [Decode] and [Encode] are the only two entry points a caller needs. The
// package does not open sockets, does not implement the service browser,
// resolver, or hostname-probing state machines built on top of it, and
// does not validate DNSSEC or parse EDNS(0) options.
package mdns
