// Package config loads the console's configuration.
//
// Resolution order:
//
//  1. An explicitly provided path, else ~/.config/lifelink/config.toml
//  2. Hardcoded defaults when the file is missing or fields are empty
//  3. .env and process environment overrides, applied last
//
// The TOML file carries api_url, actor and page_size. The API token is
// environment-only (LIFELINK_API_TOKEN) so it never ends up in a dotfile
// that gets committed or synced. LIFELINK_API_URL and LIFELINK_ACTOR
// override their file counterparts the same way.
package config
