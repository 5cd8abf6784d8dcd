package mongodb

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// duplicateKeyField reports whether err is a MongoDB duplicate-key write
// error (code 11000) and, if so, which of the candidate fields the violated
// index belongs to. The index name is embedded in the driver's error message.
// Unique-index rejections are the final authority on uniqueness, so callers
// reclassify them as apperror.DuplicateKey rather than a generic store
// failure.
func duplicateKeyField(err error, fields ...string) (string, bool) {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code != 11000 {
				continue
			}
			for _, f := range fields {
				if strings.Contains(e.Message, f) {
					return f, true
				}
			}
			if len(fields) > 0 {
				return fields[0], true
			}
		}
	}
	return "", false
}
