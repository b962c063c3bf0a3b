package config

// NewBrand is exported for testing
func NewBrand(path string) *Brand {
	return &Brand{path: path}
}
