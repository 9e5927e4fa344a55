package config

// Provider defines the interface for retrieving the report layout.
type Provider interface {
	Sheets() ([]SheetSpec, error)
}

// DirectoryProvider reads the layout from a resource directory on every call.
type DirectoryProvider struct {
	Root string
}

func NewDirectoryProvider(root string) *DirectoryProvider {
	return &DirectoryProvider{Root: root}
}

func (p *DirectoryProvider) Sheets() ([]SheetSpec, error) {
	return LoadResourceTree(p.Root)
}

// MemoryConfigRegistry implements Provider using an in-memory layout.
type MemoryConfigRegistry struct {
	sheets []SheetSpec
}

// NewMemoryConfigRegistry creates a new registry with the given sheets.
func NewMemoryConfigRegistry(sheets ...SheetSpec) *MemoryConfigRegistry {
	return &MemoryConfigRegistry{sheets: sheets}
}

func (r *MemoryConfigRegistry) Sheets() ([]SheetSpec, error) {
	return r.sheets, nil
}
