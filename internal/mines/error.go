package mines

type ConfigError struct {
	Params Params
	Reason string
}

// [*ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return "invalid board " + e.Params.String() + ": " + e.Reason
}
