package types

// Document is the dual-shaped translation payload for one namespace.
// Every row appears under its full dotted key ("app.title" -> "..."), and,
// best-effort, nested segment by segment ("app" -> {"title": "..."}). Both
// shapes coexist on purpose; the flat form is authoritative. Values are
// either string leaves or nested map[string]any nodes.
type Document = map[string]any

// TranslationSet maps namespace name to its Document. This is the wire shape
// of the public read endpoints and of every cache entry.
type TranslationSet = map[string]Document

// TranslationEntry is one item of a batch upsert request.
type TranslationEntry struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Locale      string `json:"locale"`
	Namespace   string `json:"namespace"`
	Description string `json:"description,omitempty"`
}
