package providers

import (
	"errors"
	"github.com/gookit/validate"
	"iconpicker/internal/structures"
	"path/filepath"
	"strings"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	v.AddValidator("unixPath", isUnixPath)
	if !v.Validate() {
		return v.Errors
	}

	if cv.conf.Assets.Driver == "s3" {
		s3 := cv.conf.Assets.S3
		if s3.Endpoint == "" || s3.Bucket == "" {
			return errors.New("assets.s3.endpoint and assets.s3.bucket are required for the s3 driver")
		}
	}
	if cv.conf.Parameters.Driver == "file" && !isUnixPath(cv.conf.Parameters.FilePath) {
		return errors.New("parameters.filePath must be a path for the file driver")
	}
	if cv.conf.Assets.Driver == "dato" || cv.conf.Parameters.Driver == "dato" {
		if cv.conf.Cms.APIToken == "" {
			return errors.New("cms.apiToken is required when a dato driver is used")
		}
	}
	return nil
}

func isUnixPath(val any) bool {
	s, ok := val.(string)
	if !ok || s == "" || strings.ContainsRune(s, 0) {
		return false
	}
	return filepath.Clean(s) != "."
}
