package appdata

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/digitalec/deemon/internal/logging"
	"github.com/digitalec/deemon/internal/messages"
)

// Init creates root/logs and root/backups, including any missing parents.
// Existing directories are left untouched.
func Init(sys System, root string) error {
	if root == "" {
		return errors.New(messages.AppDataRootRequired)
	}
	sys = orReal(sys)
	for _, name := range []string{logsDirName, backupsDirName} {
		path := filepath.Join(root, name)
		if err := sys.MkdirAll(path, DefaultDirMode); err != nil {
			return fmt.Errorf(messages.AppDataCreateDirFmt, path, err)
		}
	}
	return nil
}

// Delete removes root and everything beneath it. Deletion is best effort:
// failures, including a missing root, are logged at info level and never
// returned.
func Delete(sys System, log logging.Logger, root string) {
	sys = orReal(sys)
	if log == nil {
		log = logging.Nop()
	}
	if _, err := sys.Stat(root); err != nil {
		log.Log(zapcore.InfoLevel, messages.AppDataDeleteFailed, zap.String("path", root), zap.Error(err))
		return
	}
	if err := sys.RemoveAll(root); err != nil {
		log.Log(zapcore.InfoLevel, messages.AppDataDeleteFailed, zap.String("path", root), zap.Error(err))
	}
}

// Reinit deletes root when it exists and then initializes it, leaving empty
// logs/ and backups/ directories. It is safe to call when root is missing.
func Reinit(sys System, log logging.Logger, root string) error {
	sys = orReal(sys)
	if log == nil {
		log = logging.Nop()
	}
	if _, err := sys.Stat(root); err == nil {
		log.Log(zapcore.InfoLevel, messages.AppDataDeletingExisted, zap.String("path", root))
		Delete(sys, log, root)
	}
	log.Log(zapcore.InfoLevel, messages.AppDataInitializing, zap.String("path", root))
	return Init(sys, root)
}
