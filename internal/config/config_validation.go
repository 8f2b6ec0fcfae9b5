package config

// validate checks that the merged configuration carries everything the
// application cannot run without. Optional integrations (mail, workers)
// are allowed to stay unset.
func (c *StructuredConfig) validate() error {
	if c.App.TokenSignKey == "" {
		return ErrTokenSignKeyNotSet
	}

	if c.Storage.DB.DSN == "" {
		return ErrDatabaseDSNNotSet
	}

	if c.Server.HTTPAddress == "" {
		return ErrServerAddressNotSet
	}

	return nil
}
