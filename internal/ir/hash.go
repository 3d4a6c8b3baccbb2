package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content digests.
// Version suffix enables future algorithm migration.
const (
	DomainLink     = "scs/link/v1"
	DomainDocument = "scs/document/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// LinkDigest computes the content digest of a link payload.
func LinkDigest(payload string) string {
	return hashWithDomain(DomainLink, []byte(payload))
}

// DocumentDigest computes a digest over the triple sequence in order.
// Two conversions with the same digest produced byte-identical data.scs
// bodies, provenance comments aside.
func DocumentDigest(triples []Triple) string {
	h := sha256.New()
	h.Write([]byte(DomainDocument))
	h.Write([]byte{0x00})
	for _, t := range triples {
		h.Write([]byte(t.String()))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
