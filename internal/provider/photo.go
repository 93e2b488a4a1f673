package provider

// Photo is the structured result of resolving one photo search against an
// image provider. ID is the provider's photo identifier and is what the
// de-duplication contract keys on; synthetic fallback entries carry locally
// generated IDs that can never collide with real provider IDs.
type Photo struct {
	ID             string
	URL            string
	AuthorName     string
	AuthorUsername string
	AuthorURL      string
	PhotoURL       string
}
