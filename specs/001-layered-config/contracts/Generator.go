package contracts

// Generator scaffolds the default configuration documents.
type Generator interface {
	// Generate writes the embedded templates into dir and returns the
	// paths it created. Existing documents are kept unless force is set.
	Generate(dir string, force bool) ([]string, error)
}
