package core

import (
	"encoding/json"
	"os"
)

const FilePermissionsUserOnly = 0600

// FromFile reads a JSON file and unmarshals its contents into out.
func FromFile(filePath string, out any) error {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(fileBytes, out)
}

// WriteToFile writes v as indented JSON, readable by the owner only.
func WriteToFile(v any, filePath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, append(data, '\n'), FilePermissionsUserOnly)
}
