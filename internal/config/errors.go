package config

type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrInvalidValue is wrapped by Validate for any out-of-range field.
	ErrInvalidValue = constError("invalid config value")

	// ErrUnsupportedVersion means the file was written for an incompatible schema.
	ErrUnsupportedVersion = constError("unsupported config version")

	// ErrConfigExists is returned by Init when a config file is already present.
	ErrConfigExists = constError("config file already exists")
)
