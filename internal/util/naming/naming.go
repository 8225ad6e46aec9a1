package naming

import "strconv"

// Naming functions for topology nodes.

func Manager(hostname string) string {
	return hostname
}

func Node(base string, index int) string {
	return base + strconv.Itoa(index)
}
