package collections

import (
	"fmt"
	"sync"
)

// MacroFunc is the signature of a registered macro.
//
// The container is passed as an any so a macro registered once can be
// called on any List or Set instantiation; type-assert inside the
// macro to the concrete container you expect.
type MacroFunc func(container any, args ...any) any

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry, replacing
// any macro already registered under name. Safe for concurrent use.
//
//	collections.RegisterMacro("evens", func(c any, _ ...any) any {
//	    return c.(*collections.List[int]).
//	        Filter(func(n int) bool { return n%2 == 0 })
//	})
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro is registered under name.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro invokes the named macro on container with args.
// Returns [ErrMacroNotFound] when no macro is registered under name.
func CallMacro(name string, container any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(container, args...), nil
}

// Macro calls the named registered macro on l, forwarding args.
func (l *List[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}

// Macro calls the named registered macro on s, forwarding args.
func (s *Set[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, s, args...)
}
