package ipaddresses

import (
	"fmt"
	"strconv"
	"strings"
)

const errInvalidIPAddrFmt = "invalid IPv4 address: %s"
const errInvalidPrefixFmt = "invalid IPv4 address or CIDR range: %s"

// ParseIPv4 converts an address in dotted notation (*.*.*.*) to its 32-bit unsigned integer value.
func ParseIPv4(ipAddr string) (ip uint32, err error) {
	octets := strings.Split(ipAddr, ".")
	if len(octets) != 4 {
		err = fmt.Errorf(errInvalidIPAddrFmt, ipAddr)
		return
	}

	for _, octet := range octets {
		var b int

		b, err = strconv.Atoi(octet)
		if err != nil || b < 0 || b > 255 || octet[0] == '+' {
			err = fmt.Errorf(errInvalidIPAddrFmt, ipAddr)
			return
		}

		ip <<= 8
		ip |= uint32(b)
	}

	return ip, nil
}

// ParsePrefix parses either a single address, which is treated as a /32, or a CIDR range.
// The returned prefix has all host bits cleared.
func ParsePrefix(entry string) (prefix uint32, bits int, err error) {
	entry = strings.TrimSpace(entry)
	addr, suffix, hasSlash := strings.Cut(entry, "/")

	ip, err := ParseIPv4(addr)
	if err != nil {
		err = fmt.Errorf(errInvalidPrefixFmt, entry)
		return
	}

	bits = 32
	if hasSlash {
		bits, err = strconv.Atoi(suffix)
		if err != nil || bits < 0 || bits > 32 || strings.Contains(suffix, "/") {
			err = fmt.Errorf(errInvalidPrefixFmt, entry)
			return
		}
	}

	prefix = ip & Mask(bits)
	return
}

// Mask returns the network mask for a prefix length.
func Mask(bits int) uint32 {
	if bits <= 0 {
		return 0
	}
	return uint32(0xffffffff) << uint32(32-bits)
}
