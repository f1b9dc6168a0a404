package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidCandidateList(t *testing.T) {
	err := Validate("candidate_list", `{
		"candidates": [
			{"title": "The Matrix", "year": 1999, "description": "Cyberpunk classic."},
			{"title": "Arrival"}
		]
	}`)

	assert.NoError(t, err)
}

func TestValidate_EmptyCandidatesIsValid(t *testing.T) {
	assert.NoError(t, Validate("candidate_list", `{"candidates": []}`))
}

func TestValidate_MissingCandidatesField(t *testing.T) {
	err := Validate("candidate_list", `{"movies": []}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidate_EmptyTitle(t *testing.T) {
	err := Validate("candidate_list", `{"candidates": [{"title": ""}]}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidate_YearOutOfRange(t *testing.T) {
	err := Validate("candidate_list", `{"candidates": [{"title": "Time Movie", "year": 99}]}`)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidate_NotJSON(t *testing.T) {
	err := Validate("candidate_list", "definitely not json")

	assert.Error(t, err)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("no_such_schema", `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}
