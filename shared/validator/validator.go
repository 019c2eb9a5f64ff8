package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"villa/shared/constant"
	"villa/shared/failure"

	"github.com/gabriel-vasile/mimetype"
	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = file.Header.Get(constant.RequestHeaderContentType)
	case []byte:
		contentType = mimetype.Detect(file).String()
	default:
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0

	switch file := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = int(file.Size)
	case []byte:
		fileSize = len(file)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

func registerISODateValidation(field val.FieldLevel) bool {
	value := field.Field().String()
	if value == "" {
		return true
	}

	_, err := time.Parse(constant.ISODateFormat, value)

	return err == nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0] //nolint:mnd
	if name == "-" || name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.RegisterValidation("isodate", registerISODateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads a JSON body without running the validation rules.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateStruct validates data and reports the first failing rule. The returned
// failure carries the rule tag (e.g. "required", "isodate") as its reason.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg, tag := message(err)

		return &failure.Failure{Code: http.StatusBadRequest, Reason: tag, Message: msg}
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg, failedTag := message(err)

		return &failure.Failure{Code: http.StatusBadRequest, Reason: failedTag, Message: msg}
	}

	return nil
}
