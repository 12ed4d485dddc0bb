package usecase

import (
	"errors"
	"fmt"

	"github.com/ddc-studio/portfolio-api/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
)

const duplicateMessage = "Please review submitted information. A record with the same unique value already exists."

// ParseID converts a hex id taken from a request path. entity names the
// thing being addressed in the error message.
func ParseID(id string, entity string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ValidationWrap(fmt.Sprintf("Invalid %s id: %q.", entity, id), err)
	}
	return oid, nil
}

// StoreError classifies a repository failure. Typed domain errors pass
// through, unique index violations become validation errors and anything
// else is unexpected with message as the caller-facing text.
func StoreError(err error, message string) error {
	if err == nil {
		return nil
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	if driver.IsDuplicateKeyError(err) {
		return domain.ValidationWrap(duplicateMessage, err)
	}
	return domain.Unexpected(message, err)
}
