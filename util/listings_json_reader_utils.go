package util

import (
    "encoding/json"
    "fmt"
    "os"

    "directory-server/models/business"
)

// ReadBusinessListingsFromJSON loads a slice of BusinessListing from JSON on disk.
func ReadBusinessListingsFromJSON(filePath string) ([]business.BusinessListing, error) {
    data, err := os.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var listings []business.BusinessListing
    if err := json.Unmarshal(data, &listings); err != nil {
        return nil, fmt.Errorf("failed to unmarshal business listings: %w", err)
    }
    return listings, nil
}

// WriteJSONFile writes v as indented JSON to filePath.
func WriteJSONFile(filePath string, v interface{}) error {
    data, err := json.MarshalIndent(v, "", "  ")
    if err != nil {
        return fmt.Errorf("failed to marshal %T: %w", v, err)
    }
    if err := os.WriteFile(filePath, data, 0o644); err != nil {
        return fmt.Errorf("failed to write file %q: %w", filePath, err)
    }
    return nil
}
