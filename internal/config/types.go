package config

import (
	"fmt"

	"github.com/imamik/vtopo/internal/util/ptr"
)

// Role identifies a role block in the topology document.
type Role string

const (
	// RoleManager is the single coordinating node.
	RoleManager Role = "manager"
	// RoleReplica is the numbered replica group.
	RoleReplica Role = "replica"
	// RoleClient is the numbered client group.
	RoleClient Role = "client"
)

// Roles returns all roles in validation and provisioning order.
func Roles() []Role {
	return []Role{RoleManager, RoleReplica, RoleClient}
}

// IsValid returns true if the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleReplica, RoleClient:
		return true
	default:
		return false
	}
}

// String returns the document key of the role.
func (r Role) String() string {
	return string(r)
}

// Role block keys.
const (
	KeyHostname = "hostname"
	KeyCPUs     = "cpus"
	KeyMemory   = "memory"
	KeyCount    = "count"
)

// RawConfig is the parsed topology document. It is never mutated after parsing.
type RawConfig map[string]any

// Block returns the role block for the given role.
// The second return value is false if the key is missing, null or not a mapping.
func (c RawConfig) Block(role Role) (map[string]any, bool) {
	return asBlock(c[string(role)])
}

// asBlock normalizes a decoded YAML mapping. Decoding into RawConfig makes
// yaml.v3 produce RawConfig for nested string-keyed mappings; hand-built
// documents use map[string]any, and non-string keys yield map[any]any.
func asBlock(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case RawConfig:
		return m, true
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// RoleBlock is the typed form of a single role block.
type RoleBlock struct {
	// Hostname is the manager hostname, or the base name numbered replicas and clients are derived from.
	Hostname string `mapstructure:"hostname" json:"hostname" jsonschema:"minLength=1,description=Hostname or hostname base for numbered nodes"`

	// CPUs is the number of virtual CPUs per node.
	CPUs float64 `mapstructure:"cpus" json:"cpus" jsonschema:"exclusiveMinimum=0,description=Virtual CPUs per node"`

	// Memory is the memory size per node in MiB.
	Memory float64 `mapstructure:"memory" json:"memory" jsonschema:"exclusiveMinimum=0,description=Memory per node in MiB"`

	// Count is the number of nodes in the group. Unused for the manager.
	// A group without count describes a single node.
	Count *int `mapstructure:"count" json:"count,omitempty" jsonschema:"exclusiveMinimum=0,description=Number of numbered nodes (ignored for manager)"`
}

// NodeCount returns the number of nodes the block describes.
func (b RoleBlock) NodeCount() int {
	return ptr.Deref(b.Count, 1)
}
