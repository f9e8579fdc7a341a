package store

import (
	"database/sql"
	"time"
)

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func fromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
