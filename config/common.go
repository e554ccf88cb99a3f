// Package config loads the static table metadata of the dashboard: table
// schemas, enumerations and translation catalogs. All of it lives in plain
// json files below an asset folder.
package config

import (
	"encoding/json"
	"os"
)

const dotJSON = ".json"

// readJSON reads a single json file into target.
func readJSON(path string, target interface{}) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(file, target)
}
