// Package observability provides hooks for logging and instrumentation.
//
// This package enables optional instrumentation without adding hard
// dependencies on a logging backend inside the core packages. Consumers
// register hooks at startup to receive events about lifecycle transitions
// and document operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps pkg/lifecycle and pkg/editor free of any logging
// dependency.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLifecycleHooks(&myLifecycleHooks{})
//	    observability.SetDocumentHooks(&myDocumentHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Lifecycle().OnTransition(from, event, to)
package observability

import "sync"

// LifecycleHooks receives events from the lifecycle controller.
type LifecycleHooks interface {
	// OnTransition records a handled event and the resulting state change.
	// The from and to states may be equal.
	OnTransition(from, event, to string)

	// OnEventIgnored records an event that had no transition in the
	// current state. Expected under GUI event races; never an error.
	OnEventIgnored(state, event string)
}

// DocumentHooks receives events from document and export operations.
type DocumentHooks interface {
	// OnOpen records a document open attempt.
	OnOpen(path string, err error)

	// OnSave records a document save attempt.
	OnSave(path string, err error)

	// OnExport records an export attempt in the given format.
	OnExport(path, format string, err error)

	// OnSnapshot records an autosave snapshot write.
	OnSnapshot(key string, size int, err error)
}

// NoopLifecycleHooks is a no-op implementation of LifecycleHooks.
type NoopLifecycleHooks struct{}

func (NoopLifecycleHooks) OnTransition(string, string, string) {}
func (NoopLifecycleHooks) OnEventIgnored(string, string)       {}

// NoopDocumentHooks is a no-op implementation of DocumentHooks.
type NoopDocumentHooks struct{}

func (NoopDocumentHooks) OnOpen(string, error)             {}
func (NoopDocumentHooks) OnSave(string, error)             {}
func (NoopDocumentHooks) OnExport(string, string, error)   {}
func (NoopDocumentHooks) OnSnapshot(string, int, error)    {}

var (
	lifecycleHooks LifecycleHooks = NoopLifecycleHooks{}
	documentHooks  DocumentHooks  = NoopDocumentHooks{}
	hooksMu        sync.RWMutex
)

// SetLifecycleHooks registers custom lifecycle hooks.
// This should be called once at application startup before any events
// are dispatched.
func SetLifecycleHooks(h LifecycleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		lifecycleHooks = h
	}
}

// SetDocumentHooks registers custom document hooks.
// This should be called once at application startup before any document
// operations.
func SetDocumentHooks(h DocumentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		documentHooks = h
	}
}

// Lifecycle returns the registered lifecycle hooks.
func Lifecycle() LifecycleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return lifecycleHooks
}

// Document returns the registered document hooks.
func Document() DocumentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return documentHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	lifecycleHooks = NoopLifecycleHooks{}
	documentHooks = NoopDocumentHooks{}
}
