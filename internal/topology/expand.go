package topology

import (
	"fmt"

	"github.com/imamik/vtopo/internal/config"
	"github.com/imamik/vtopo/internal/util/naming"
)

// group describes where a counted role lands in the address layout.
type group struct {
	role config.Role
	base int
	// limit is the largest count that stays clear of the next group, 0 for none.
	limit int
}

var (
	replicaGroup = group{role: config.RoleReplica, base: ReplicaBase, limit: ClientBase - ReplicaBase}
	clientGroup  = group{role: config.RoleClient, base: ClientBase}
)

// Expand converts a validated topology document into a [Topology].
//
// cfg must have passed [config.RawConfig.Validate]; no validation is
// repeated here. prefix is the IPv4 network the addresses are assigned
// from, usually [DefaultIPv4Prefix]. Errors are returned only for blocks
// that cannot be decoded and for counts that do not fit the address layout.
func Expand(cfg config.RawConfig, prefix string) (*Topology, error) {
	manager, err := expandManager(cfg, prefix)
	if err != nil {
		return nil, err
	}

	replicas, err := expandGroup(cfg, prefix, replicaGroup)
	if err != nil {
		return nil, err
	}

	clients, err := expandGroup(cfg, prefix, clientGroup)
	if err != nil {
		return nil, err
	}

	return &Topology{
		Manager: manager,
		Replica: replicas,
		Client:  clients,
	}, nil
}

func expandManager(cfg config.RawConfig, prefix string) (NodeDescriptor, error) {
	block, err := cfg.DecodeRole(config.RoleManager)
	if err != nil {
		return NodeDescriptor{}, err
	}

	ip, err := HostAddress(prefix, ManagerHost)
	if err != nil {
		return NodeDescriptor{}, fmt.Errorf("manager address: %w", err)
	}

	return NodeDescriptor{
		Hostname: naming.Manager(block.Hostname),
		CPUs:     block.CPUs,
		Memory:   block.Memory,
		IP:       ip,
	}, nil
}

func expandGroup(cfg config.RawConfig, prefix string, g group) ([]NodeDescriptor, error) {
	block, err := cfg.DecodeRole(g.role)
	if err != nil {
		return nil, err
	}

	count := block.NodeCount()
	if count < 1 {
		return nil, fmt.Errorf("%s count %d must be positive", g.role, count)
	}
	if g.limit > 0 && count > g.limit {
		return nil, fmt.Errorf("%s count %d exceeds the maximum of %d", g.role, count, g.limit)
	}

	nodes := []NodeDescriptor{}
	for i := 1; i <= count; i++ {
		ip, err := HostAddress(prefix, g.base+i)
		if err != nil {
			return nil, fmt.Errorf("%s %d address: %w", g.role, i, err)
		}

		nodes = append(nodes, NodeDescriptor{
			Hostname: naming.Node(block.Hostname, i),
			CPUs:     block.CPUs,
			Memory:   block.Memory,
			IP:       ip,
		})
	}

	return nodes, nil
}
