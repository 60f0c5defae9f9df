package postgres

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The helpers below rely on gorm.Config.TranslateError so that driver errors
// arrive as gorm sentinels for both PostgreSQL and SQLite.

// sqliteConstraintCheck is SQLITE_CONSTRAINT_CHECK. The SQLite dialector only
// translates unique and foreign-key codes, so CHECK failures are matched here.
const sqliteConstraintCheck = 275

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return sqliteExtendedCode(err) == sqliteConstraintCheck
}

// sqliteExtendedCode reads ExtendedCode off a go-sqlite3 error the way the dialector does,
// through its exported JSON fields, so this package does not link the cgo driver.
func sqliteExtendedCode(err error) int {
	raw, marshalErr := json.Marshal(errors.Cause(err))
	if marshalErr != nil {
		return 0
	}

	var parsed struct {
		ExtendedCode int `json:"ExtendedCode"`
	}
	if json.Unmarshal(raw, &parsed) != nil {
		return 0
	}

	return parsed.ExtendedCode
}
