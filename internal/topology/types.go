package topology

// NodeDescriptor holds the provisioning parameters of a single node.
type NodeDescriptor struct {
	Hostname string  `json:"hostname" validate:"required,hostname_rfc1123"`
	CPUs     float64 `json:"cpus" validate:"gt=0"`
	Memory   float64 `json:"memory" validate:"gt=0"`
	IP       string  `json:"ip" validate:"required,ipv4"`
}

// Topology is the expanded cluster description.
type Topology struct {
	Manager NodeDescriptor   `json:"manager"`
	Replica []NodeDescriptor `json:"replica" validate:"dive"`
	Client  []NodeDescriptor `json:"client" validate:"dive"`
}

// Nodes returns all nodes in provisioning order: manager, replicas, clients.
func (t *Topology) Nodes() []NodeDescriptor {
	nodes := make([]NodeDescriptor, 0, t.Len())
	nodes = append(nodes, t.Manager)
	nodes = append(nodes, t.Replica...)
	nodes = append(nodes, t.Client...)
	return nodes
}

// Len returns the total number of nodes.
func (t *Topology) Len() int {
	return 1 + len(t.Replica) + len(t.Client)
}

// Lookup returns the first node with the given hostname.
func (t *Topology) Lookup(hostname string) (NodeDescriptor, bool) {
	for _, n := range t.Nodes() {
		if n.Hostname == hostname {
			return n, true
		}
	}
	return NodeDescriptor{}, false
}
