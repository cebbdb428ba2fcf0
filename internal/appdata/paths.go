package appdata

import (
	"os"
	"path/filepath"
)

// Environment variables consulted when choosing the data root, highest
// precedence first.
const (
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvAppData       = "APPDATA"
)

const (
	appName          = "deemon"
	logsDirName      = "logs"
	backupsDirName   = "backups"
	configFileName   = "config.json"
	databaseFileName = "deemon.db"
	logFileSuffix    = "-deemon.log"
	logDateLayout    = "02-01-2006"

	// DefaultDirMode is the permission mode for created directories.
	DefaultDirMode os.FileMode = 0o755
)

// Paths holds every resolved location in the application data tree.
type Paths struct {
	Root         string
	Dir          string
	ConfigFile   string
	DatabaseFile string
	LogsDir      string
	LogFile      string
	BackupDir    string
}

// Resolve returns a snapshot of all data tree locations for the current
// environment and date.
func Resolve(sys System) Paths {
	sys = orReal(sys)
	root := DataRoot(sys)
	dir := filepath.Join(root, appName)
	logsDir := filepath.Join(dir, logsDirName)
	return Paths{
		Root:         root,
		Dir:          dir,
		ConfigFile:   filepath.Join(dir, configFileName),
		DatabaseFile: filepath.Join(dir, databaseFileName),
		LogsDir:      logsDir,
		LogFile:      filepath.Join(logsDir, logFileName(sys)),
		BackupDir:    filepath.Join(dir, backupsDirName),
	}
}

// DataRoot returns the platform base directory for application data.
// It never fails: when the home directory cannot be determined the fallback
// paths are relative to the working directory.
func DataRoot(sys System) string {
	sys = orReal(sys)
	if v := sys.Getenv(EnvXDGConfigHome); v != "" {
		return v
	}
	if v := sys.Getenv(EnvAppData); v != "" {
		return v
	}
	home, err := sys.HomeDir()
	if err != nil {
		home = ""
	}
	if sys.GOOS() == "darwin" {
		return filepath.Join(home, "Library", "Application Support")
	}
	return filepath.Join(home, ".config")
}

// Dir returns the deemon directory under the data root.
func Dir(sys System) string {
	return filepath.Join(DataRoot(sys), appName)
}

// BackupDir returns the directory holding database backups.
func BackupDir(sys System) string {
	return filepath.Join(Dir(sys), backupsDirName)
}

// ConfigFile returns the path of config.json.
func ConfigFile(sys System) string {
	return filepath.Join(Dir(sys), configFileName)
}

// DatabaseFile returns the path of deemon.db.
func DatabaseFile(sys System) string {
	return filepath.Join(Dir(sys), databaseFileName)
}

// LogFile returns today's log file, named DD-MM-YYYY-deemon.log.
// The date is read on every call so long-running processes roll over at
// midnight.
func LogFile(sys System) string {
	sys = orReal(sys)
	return filepath.Join(Dir(sys), logsDirName, logFileName(sys))
}

func logFileName(sys System) string {
	return sys.Now().Format(logDateLayout) + logFileSuffix
}
