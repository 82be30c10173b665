// Package refnum implements the reference sub-variant plug-in family nested
// inside a connector.Reference record (spec.md §4.10): a secondary tagged
// variant, selected by a two-byte sub-tag, external to the core VCTP
// grammar. The registry pattern mirrors the type-tag dispatch mebo uses for
// its own blob variants (arloliu/mebo blob package).
package refnum

import "github.com/ymj120572092/pylabview/cursor"

// Plugin is the four-callback contract spec.md §4.10 assigns to each
// reference sub-type: parse/emit its payload, and parse/emit any per-client
// extras it attaches beyond the generic index + flags pair.
type Plugin interface {
	ParsePayload(r *cursor.Reader) ([]byte, error)
	WritePayload(w *cursor.Writer, body []byte)
	ParseClientExtras(r *cursor.Reader) ([]byte, error)
	WriteClientExtras(w *cursor.Writer, extras []byte)
}

// DefaultPlugin treats a reference sub-type's payload and per-client extras
// as opaque bytes, preserved verbatim. It is the fallback used for every
// reftype without a registered Plugin — which, at present, is every
// reftype: concrete sub-type grammars (Queue, Notifier, VISA session, ...)
// are external detail beyond VCTP's scope (spec.md §1) and are left as a
// registration point for callers that need them.
type DefaultPlugin struct{}

var _ Plugin = DefaultPlugin{}

func (DefaultPlugin) ParsePayload(r *cursor.Reader) ([]byte, error) {
	return r.ReadBytes(r.Remaining())
}

func (DefaultPlugin) WritePayload(w *cursor.Writer, body []byte) { w.PutBytes(body) }

func (DefaultPlugin) ParseClientExtras(_ *cursor.Reader) ([]byte, error) { return nil, nil }

func (DefaultPlugin) WriteClientExtras(_ *cursor.Writer, _ []byte) {}

// Registry maps a reftype to the Plugin responsible for it. Callers may
// register additional reftypes; lookups that miss fall back to
// DefaultPlugin.
type Registry struct {
	plugins map[uint16]Plugin
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[uint16]Plugin)}
}

// Register associates reftype with a Plugin.
func (reg *Registry) Register(reftype uint16, plugin Plugin) {
	reg.plugins[reftype] = plugin
}

// Lookup returns the Plugin registered for reftype, or DefaultPlugin if
// none was registered.
func (reg *Registry) Lookup(reftype uint16) Plugin {
	if p, ok := reg.plugins[reftype]; ok {
		return p
	}

	return DefaultPlugin{}
}
