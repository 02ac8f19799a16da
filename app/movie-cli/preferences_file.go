package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"movieRecommender/domain"

	"go.yaml.in/yaml/v3"
)

// preferenceFile is a YAML document keyed by user id.
type preferenceFile map[string]domain.RawPreferences

func readPreferenceFile(path string) (preferenceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var prefs preferenceFile
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if prefs == nil {
		prefs = preferenceFile{}
	}
	return prefs, nil
}

func (f preferenceFile) GetPreferences(_ context.Context, userID string) (domain.RawPreferences, bool, error) {
	raw, ok := f[userID]
	return raw, ok, nil
}

func (f preferenceFile) userIDs() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
