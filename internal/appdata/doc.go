// Package appdata locates and manages deemon's per-user data directory.
//
// The data root is chosen from the environment on every call:
//
//	$XDG_CONFIG_HOME                     when set
//	$APPDATA                             when set
//	~/Library/Application Support        on macOS
//	~/.config                            everywhere else
//
// The application directory is "deemon" under that root and holds config.json,
// deemon.db, logs/ and backups/.
package appdata
