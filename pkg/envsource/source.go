package envsource

import "os"

// Source is a read-only view of environment variables.
type Source interface {
	LookupEnv(key string) (string, bool)
}

type osSource struct{}

// OS returns a Source backed by the process environment.
func OS() Source {
	return osSource{}
}

func (osSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

type mapSource map[string]string

// Map returns a Source backed by a copy of vars. Later changes to vars are not visible.
func Map(vars map[string]string) Source {
	m := make(mapSource, len(vars))
	for k, v := range vars {
		m[k] = v
	}
	return m
}

func (m mapSource) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Lookup returns a pointer to the value of key, or nil when key is unset.
func Lookup(src Source, key string) *string {
	v, ok := src.LookupEnv(key)
	if !ok {
		return nil
	}
	return &v
}

// IsSet reports whether key is present with a non-empty value.
func IsSet(src Source, key string) bool {
	v, ok := src.LookupEnv(key)
	return ok && v != ""
}
