package localfs

// Config defines the configuration options for the local filesystem backend.
type Config struct {
	// Directory is the destination directory files are persisted into.
	// It must exist and be writable.
	Directory string `yaml:"directory" validate:"required"`

	// Overwrite allows replacing an existing file with the same name.
	Overwrite bool `yaml:"overwrite" default:"false"`

	// Randomize replaces each file's name with a generated unique name
	// before persisting, keeping the original extension.
	Randomize bool `yaml:"randomize" default:"false"`
}
