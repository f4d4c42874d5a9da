// Package site provides a process-wide component registry associating an
// interface type and a name with a concrete implementation.
package site

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Site is a thread-safe component registry. Components live for the
// duration of the process; there is no unregister
type Site struct {
	mu         sync.RWMutex
	components map[reflect.Type]map[string]any
}

func New() *Site {
	return &Site{
		components: make(map[reflect.Type]map[string]any),
	}
}

// Register associates component with the interface type T under name.
// T must be an interface type and the (interface, name) pair must not
// already be taken
func Register[T any](s *Site, name string, component T) error {
	iface := reflect.TypeOf((*T)(nil)).Elem()
	if iface.Kind() != reflect.Interface {
		return fmt.Errorf("site: %s is not an interface type", iface)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	named, ok := s.components[iface]
	if !ok {
		named = make(map[string]any)
		s.components[iface] = named
	}

	if _, taken := named[name]; taken {
		return fmt.Errorf("site: component %q already registered for %s", name, iface)
	}

	named[name] = component
	return nil
}

// Lookup returns the component registered for the interface type T under
// name, reporting whether it was found
func Lookup[T any](s *Site, name string) (T, bool) {
	var zero T
	iface := reflect.TypeOf((*T)(nil)).Elem()

	s.mu.RLock()
	defer s.mu.RUnlock()

	component, ok := s.components[iface][name]
	if !ok {
		return zero, false
	}

	return component.(T), true
}

// Names lists the registered component names for the interface type T in
// sorted order
func Names[T any](s *Site) []string {
	iface := reflect.TypeOf((*T)(nil)).Elem()

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.components[iface]))
	for name := range s.components[iface] {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
