package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/fabula-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuildReportsFieldsInOrder() {
	err := errors.NewValidationBuilder().
		RequiredField("Roller").
		RequiredField("Engine").
		Field("Engine", "must be configured").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	var ve *errors.ValidationError
	s.Require().True(errors.As(err, &ve))
	s.Equal("validation failed: Engine: is required, must be configured; Roller: is required", ve.Error())

	var coded *errors.Error
	s.Require().True(errors.As(err, &coded))
	s.NotNil(coded.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuildWithoutProblems() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("face", 21, 1, 20, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "face: must be between 1 and 20")

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("face", 20, 1, 20, vb)
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("mode", "whisper", []string{"public", "gm"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: public, gm")

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("mode", "gm", []string{"public", "gm"}, vb)
	s.NoError(vb.Build())
}
