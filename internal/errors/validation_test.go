package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("id", "is required")
	ve.AddFieldError("biome", "is invalid")
	ve.AddFieldErrorf("dc", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "id: is required")
	s.Assert().Contains(ve.Error(), "biome: is invalid")
	s.Assert().Contains(ve.Error(), "dc: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("title", "is required").
		Fieldf("dc", "must be between %d and %d", 1, 30).
		RequiredField("choices").
		InvalidField("category", "not a valid category")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("dc", 35, 1, 30, vb)
	errors.ValidateRange("strength", 14, 1, 30, vb)
	errors.ValidateRange("hp", 0, 1, 100, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["dc"][0], "must be between 1 and 30")
	s.Contains(validationErrors["hp"][0], "must be between 1 and 100")
	s.NotContains(validationErrors, "strength")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"clear", "rain", "storm"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("weather", "hail", allowed, vb)
	errors.ValidateEnum("forecast", "rain", allowed, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["weather"][0], "must be one of: clear, rain, storm")
	s.NotContains(validationErrors, "forecast")
}

func (s *ValidationTestSuite) TestMessageKeepsReportOrder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("world.name").
		Field("events[0].id", "is required").
		Field("world.name", "is too short")

	err := vb.Build()
	s.Require().Error(err)
	s.Equal("INVALID_ARGUMENT: validation failed: world.name: is required, is too short; events[0].id: is required", err.Error())
}
