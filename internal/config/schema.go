package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID is the identifier embedded in the generated JSON schema.
const SchemaID = "https://github.com/imamik/vtopo/cluster.schema.json"

// Document is the typed shape of the topology document, used for schema generation.
type Document struct {
	Manager RoleBlock `json:"manager" jsonschema:"description=The single manager node"`
	Replica RoleBlock `json:"replica" jsonschema:"description=Numbered replica nodes"`
	Client  RoleBlock `json:"client" jsonschema:"description=Numbered client nodes"`
}

// Schema returns the JSON schema of the topology document.
// Unknown keys are allowed, matching validation.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&Document{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "vtopo cluster topology"
	return schema
}

// SchemaJSON returns the indented JSON encoding of [Schema].
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
