package catalog

import "github.com/sirupsen/logrus"

// failSoft runs one store read. On error it logs the operation with its
// key fields and returns empty instead; the error never reaches the caller.
func failSoft[T any](q *QueryBuilder, op string, fields logrus.Fields, empty T, read func() (T, error)) T {
	v, err := read()
	if err != nil {
		q.log.WithError(err).WithField("op", op).WithFields(fields).Error("catalog read failed")
		return empty
	}
	return v
}

// failSoftList is failSoft for multi-row reads: the empty shape is a
// non-nil zero-length slice, and a nil success result is normalised to it.
func failSoftList[T any](q *QueryBuilder, op string, fields logrus.Fields, read func() ([]T, error)) []T {
	v := failSoft(q, op, fields, []T{}, read)
	if v == nil {
		return []T{}
	}
	return v
}

// failSoftOne is failSoft for single-entity lookups: absent and failed both
// read as nil.
func failSoftOne[T any](q *QueryBuilder, op string, fields logrus.Fields, read func() (*T, error)) *T {
	return failSoft[*T](q, op, fields, nil, read)
}
