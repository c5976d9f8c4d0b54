// Package cfgloader loads and validates YAML configuration for
// applications embedding the upload library.
package cfgloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file into T.
//
// Environment variables referenced as ${VAR} in the file are expanded
// before unmarshaling; a .env file in the working directory is loaded
// first when present. Default values come from `default` struct tags
// (creasty/defaults) and are applied before validation; validations use
// `validate` tags (go-playground/validator).
//
// Example:
//
//	type Config struct {
//	    Directory string `yaml:"directory" validate:"required"`
//	    Overwrite bool   `yaml:"overwrite" default:"false"`
//	}
func Load[T any](path string) (T, error) {
	var config T

	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"path": path}))
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"path": path}))
	}

	if err := defaults.Set(&config); err != nil {
		return config, errx.Wrap(err)
	}

	if err := validate(&config); err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"path": path}))
	}

	return config, nil
}

func validate(config any) error {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(config)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors) //nolint:errorlint // type assertion for validator errors handling
	if !ok {
		return errx.Wrap(err)
	}

	failedFields := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		tagErr := fieldErr.Tag()
		if fieldErr.Param() != "" {
			tagErr += fmt.Sprintf("=%s", fieldErr.Param())
		}
		failedFields = append(failedFields, fmt.Sprintf("%s: %s", fieldErr.Namespace(), tagErr))
	}

	return errx.New(
		fmt.Sprintf("invalid config fields -> %s", strings.Join(failedFields, ", ")),
		errx.WithType(errx.T_Validation),
	)
}
