package topology

import (
	"encoding/binary"
	"fmt"
	"net"
	"strings"
)

// DefaultIPv4Prefix is the host-only network used by the provisioning tool.
const DefaultIPv4Prefix = "192.168.56"

// Host numbers of the address layout.
const (
	ManagerHost = 20
	ReplicaBase = 30
	ClientBase  = 100
)

// NetworkCIDR converts an address prefix into a CIDR.
// A dotted three-octet prefix such as "192.168.56" becomes "192.168.56.0/24";
// a CIDR is returned unchanged.
func NetworkCIDR(prefix string) string {
	if strings.Contains(prefix, "/") {
		return prefix
	}
	return strings.TrimSuffix(prefix, ".") + ".0/24"
}

// HostAddress calculates the host IP address for hostnum inside prefix.
// This mimics the behavior of Terraform's cidrhost function, but refuses
// the network and broadcast addresses.
//
// Note: Only IPv4 addresses are supported.
func HostAddress(prefix string, hostnum int) (string, error) {
	cidr := NetworkCIDR(prefix)
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return "", fmt.Errorf("invalid address prefix %q: %w", prefix, err)
	}

	ip := network.IP.To4()
	if ip == nil {
		return "", fmt.Errorf("only IPv4 addresses are supported, got %s", prefix)
	}

	maskSize, totalBits := network.Mask.Size()
	maxHosts := uint64(1) << (totalBits - maskSize)
	if maxHosts < 4 {
		return "", fmt.Errorf("network %s has no usable host addresses", cidr)
	}

	if hostnum < 1 || uint64(hostnum) >= maxHosts-1 {
		return "", fmt.Errorf("host number %d outside usable range 1-%d of %s", hostnum, maxHosts-2, cidr)
	}

	ipInt := binary.BigEndian.Uint32(ip)
	// #nosec G115
	ipInt += uint32(hostnum)

	out := make(net.IP, 4)
	binary.BigEndian.PutUint32(out, ipInt)
	return out.String(), nil
}
