// Package topology expands a validated topology document into concrete nodes.
//
// [Expand] turns the manager block into one [NodeDescriptor] and each
// counted group (replicas, clients) into a numbered, contiguous sequence of
// descriptors. Addresses are assigned deterministically from a fixed host
// layout inside an IPv4 /24:
//
//	manager     <prefix>.20
//	replica i   <prefix>.(30+i)
//	client i    <prefix>.(100+i)
//
// The result is a pure value consumed by the provisioning tool.
package topology
