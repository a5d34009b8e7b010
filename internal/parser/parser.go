// Package parser turns JSON text into the generic value tree the ADF decoder consumes.
package parser

import (
	"encoding/json"
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/mcncl/goadf/internal/errors" // Custom errors package
	"github.com/mcncl/goadf/internal/models"
)

// Parse converts JSON data from an io.Reader into a generic value.
// Numbers are kept as json.Number so integer attributes survive without float rounding.
// Input must be UTF-8 and objects must not repeat a key.
func Parse(reader io.Reader) (models.JSONValue, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read JSON input", err)
	}
	return parse(data)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.JSONValue, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return parse([]byte(jsonString))
}

// ParseBytes parses JSON from a byte slice
func ParseBytes(data []byte) (models.JSONValue, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.NewInputError("input is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return parse(data)
}

// ReadFile reads a JSON input file, rejecting missing and empty files
func ReadFile(filePath string) ([]byte, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return data, nil
}

func parse(data []byte) (models.JSONValue, error) {
	// encoding/json replaces invalid bytes with U+FFFD instead of failing
	if !utf8.Valid(data) {
		return nil, errors.NewParsingError("input is not valid UTF-8", errors.ErrInvalidJSON)
	}

	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber()

	rootValue, err := readValue(decoder, true)
	if err != nil {
		return nil, err
	}

	// Anything other than whitespace after the first value is rejected
	switch _, err := decoder.Token(); {
	case err == nil:
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	case !stderrors.Is(err, io.EOF):
		return nil, errors.NewParsingError("invalid trailing data after first JSON value", errors.ErrInvalidJSON)
	}

	return rootValue, nil
}

// readValue builds one value from the token stream. Objects are built here
// rather than by Decode so that a repeated key is an error instead of
// silently replacing the earlier value.
func readValue(decoder *json.Decoder, root bool) (models.JSONValue, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, tokenError(err, root)
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		object := models.JSONObject{}
		seen := mapset.NewThreadUnsafeSet[string]()
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, tokenError(err, false)
			}
			key, ok := keyToken.(string)
			if !ok {
				return nil, errors.NewParsingError("object key is not a string", errors.ErrInvalidJSON)
			}
			if !seen.Add(key) {
				return nil, errors.NewParsingError(
					fmt.Sprintf("duplicate key %q in JSON object", key),
					errors.ErrInvalidJSON,
				)
			}
			value, err := readValue(decoder, false)
			if err != nil {
				return nil, err
			}
			object[key] = value
		}
		if _, err := decoder.Token(); err != nil {
			return nil, tokenError(err, false)
		}
		return object, nil
	case '[':
		array := models.JSONArray{}
		for decoder.More() {
			value, err := readValue(decoder, false)
			if err != nil {
				return nil, err
			}
			array = append(array, value)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, tokenError(err, false)
		}
		return array, nil
	default:
		return nil, errors.NewParsingError(fmt.Sprintf("unexpected delimiter %q", delim), errors.ErrInvalidJSON)
	}
}

func tokenError(err error, root bool) error {
	if stderrors.Is(err, io.EOF) {
		if root {
			// Nothing but whitespace was read
			return errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return errors.NewParsingError("unexpected EOF in JSON input", errors.ErrInvalidJSON)
	}
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d: %v", syntaxError.Offset, syntaxError),
			errors.ErrInvalidJSON,
		)
	}
	if stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected EOF in JSON input", errors.ErrInvalidJSON)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}
