package api

import (
	"context"
	"errors"
)

type keyType string

const subjectKey keyType = "subject"

// ctxWithSubject stores the verified token subject on the context.
func ctxWithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// ctxGetSubject retrieves the verified token subject from the context.
func ctxGetSubject(ctx context.Context) (string, error) {
	value := ctx.Value(subjectKey)
	if value == nil {
		return "", errors.New("subject not found in context")
	}
	subject, ok := value.(string)
	if !ok || subject == "" {
		return "", errors.New("subject has unexpected type")
	}
	return subject, nil
}
