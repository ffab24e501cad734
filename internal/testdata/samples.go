// Package testdata gives tests access to sample message texts.
package testdata

import (
	"os"
	"path/filepath"
	"runtime"
)

// Sample texts.
const (
	Latin   = "latin.txt"   // 574 characters of the GSM default alphabet
	Turkish = "turkish.txt" // 590 characters, some of them outside GSM 03.38
)

// Sample returns the content of the given sample file.
func Sample(file string) (string, error) {
	data, err := os.ReadFile(SamplePath(file))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SamplePath returns path for the given sample file.
func SamplePath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "samples", file)
}
