package handlers

import (
	"context"
	"fmt"
)

// Schema prints the JSON schema of the topology document.
func Schema(_ context.Context) error {
	data, err := schemaJSON()
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
