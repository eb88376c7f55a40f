package gemini

import "context"

// OfflineMarker prefixes every offline response.
const OfflineMarker = "[Mode hors ligne] Synthèse basée sur le contexte fourni :"

// Offline is a deterministic Generator used when no API key is configured.
// It echoes the prompt behind a fixed marker so the retrieval pipeline can
// be exercised end to end without network access.
type Offline struct{}

// Generate never fails and never touches the network.
func (Offline) Generate(_ context.Context, prompt string) (*Response, error) {
	return &Response{Text: OfflineMarker + "\n" + prompt}, nil
}
