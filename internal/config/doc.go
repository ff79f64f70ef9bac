// Package config handles loading and parsing the hackdex configuration file.
//
// # Overview
//
// The config tells hackdex where the catalog site lives and where to write
// its diagnostics log. Every field is optional; hackdex works out of the box
// against the public site.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/hackdex/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/hackdex/config.toml
//   - Site root: https://hackdex.app/
//   - Catalog document: db.json
//   - Display-name document: pretty.json
//   - Request timeout: 15 seconds
//   - Diagnostics log: ~/.local/state/hackdex/hackdex.log
//
// # TOML Format
//
//	base_url = "https://hackdex.app/"
//	catalog_path = "db.json"
//	names_path = "pretty.json"
//	request_timeout_seconds = 15
//	log_file = "~/.local/state/hackdex/hackdex.log"
//
// Document paths are resolved relative to base_url. Tilde expansion is
// performed for the config path and log_file. A non-positive timeout keeps
// the default.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, wrapped as "parse config: ..."
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	client, err := catalog.NewClient(catalog.ClientOptions{
//		BaseURL:     cfg.BaseURL,
//		CatalogPath: cfg.CatalogPath,
//		NamesPath:   cfg.NamesPath,
//		Timeout:     cfg.RequestTimeout,
//	})
package config
