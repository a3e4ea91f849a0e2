package wos

import (
	"fmt"
	"os"
	"strings"
)

// If s has a $ prefix then we assume that it is a
// placeholder and the actual value is in the upper-cased
// env variable. An unset variable is an error.
//
// if there is no $ prefix then s is returned
func Getenv(s string) (string, error) {
	if !strings.HasPrefix(s, "$") {
		return s, nil
	}
	name := strings.ToUpper(strings.TrimPrefix(s, "$"))
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return "", fmt.Errorf("expected %s to be set", name)
	}
	return v, nil
}

// Returns the env variable or fallback when it is unset or empty
func Default(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
