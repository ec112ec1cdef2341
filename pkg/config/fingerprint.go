package config

import (
	"encoding/json"
	"fmt"

	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Fingerprint returns a deterministic UUID v5 of the merged mapping.
// Two snapshots with identical content share a fingerprint, so it can
// identify the configuration revision in logs. JSON is the canonical
// serialization because encoding/json sorts mapping keys.
func (c *Config) Fingerprint() uuid.UUID {
	b, err := json.Marshal(c.data)
	if err != nil {
		return gnuuid.New(fmt.Sprintf("%#v", c.data))
	}
	return gnuuid.New(string(b))
}
