// Package config loads thronedex settings.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, else ~/.config/thronedex/config.toml);
//     a missing file is not an error
//  3. THRONEDEX_* environment variables
//
// Empty values at any step fall back to the defaults.
//
// # TOML Format
//
//	api_url = "https://thronesapi.com"
//	locale = "en"
//	timeout_seconds = 10
//	log_file = "~/.local/state/thronedex/thronedex.log"
//
// All fields are optional. log_file accepts "-", "off" or "none" to disable
// file logging. Tilde expansion is applied to paths.
//
// # Environment
//
//   - THRONEDEX_API_URL
//   - THRONEDEX_LOCALE
//   - THRONEDEX_TIMEOUT_SECONDS
//   - THRONEDEX_LOG_FILE
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, invalid
// TOML ("parse config") and malformed environment values ("parse env").
package config
