package topology

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Check verifies an expanded topology before it is handed to the
// provisioning tool: every node needs an RFC 1123 hostname, positive
// resources and an IPv4 address, and hostnames and addresses must be unique.
//
// The hostname rule is stricter than document validation, which accepts any
// non-empty hostname.
func Check(t *Topology) error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	hostnames := make(map[string]struct{}, t.Len())
	addresses := make(map[string]string, t.Len())
	for _, n := range t.Nodes() {
		if _, dup := hostnames[n.Hostname]; dup {
			return fmt.Errorf("duplicate hostname %q", n.Hostname)
		}
		hostnames[n.Hostname] = struct{}{}

		if other, dup := addresses[n.IP]; dup {
			return fmt.Errorf("address %s assigned to both %q and %q", n.IP, other, n.Hostname)
		}
		addresses[n.IP] = n.Hostname
	}

	return nil
}
