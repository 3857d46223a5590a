/*
 * Copyright 2026 The Verse Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package validation validates values and structs supplied by users with
// go-playground/validator, translating violations into English messages.
package validation

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	// slugRegexString matches lowercase words joined by single hyphens, the
	// form generated from poem titles.
	slugRegexString = `^[a-z0-9]+(-[a-z0-9]+)*$`
)

var (
	slugRegex = regexp.MustCompile(slugRegexString)
)

var (
	// defaultValidator is the validator shared by every caller.
	defaultValidator = validator.New()

	defaultEn = en.New()
	uni       = ut.New(defaultEn, defaultEn)

	// trans is the English translator of violations.
	trans, _ = uni.GetTranslator(defaultEn.Locale())
)

// FieldLevel is the field level interface.
type FieldLevel = validator.FieldLevel

// Violation is a single failed rule.
type Violation struct {
	Tag         string
	Field       string
	Err         error
	Description string
}

// Error returns the translated description of the violation.
func (v Violation) Error() string {
	if v.Description != "" {
		return v.Description
	}
	return v.Err.Error()
}

// Unwrap returns the underlying validator error.
func (v Violation) Unwrap() error {
	return v.Err
}

// StructError is the error returned by the validation of a struct.
type StructError struct {
	Violations []Violation
}

// Error returns the messages of every violation, one per line.
func (s *StructError) Error() string {
	messages := make([]string, len(s.Violations))
	for i, v := range s.Violations {
		messages[i] = v.Error()
	}
	return strings.Join(messages, "\n")
}

// Field returns the violation of the given struct field.
func (s *StructError) Field(name string) (Violation, bool) {
	for _, v := range s.Violations {
		if v.Field == name {
			return v, true
		}
	}
	return Violation{}, false
}

// RegisterValidation registers a custom rule under the given tag.
func RegisterValidation(tag string, fn validator.Func) error {
	if err := defaultValidator.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register validation %s: %w", tag, err)
	}
	return nil
}

// RegisterTranslation registers the message of a rule. {0} is replaced by
// the field name.
func RegisterTranslation(tag, msg string) error {
	if err := defaultValidator.RegisterTranslation(
		tag,
		trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	); err != nil {
		return fmt.Errorf("register translation %s: %w", tag, err)
	}
	return nil
}

// ValidateValue validates a single value against the given tag.
func ValidateValue(v any, tag string) error {
	err := defaultValidator.Var(v, tag)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return fmt.Errorf("validate value: %w", err)
	}
	return Violation{
		Tag:         errs[0].Tag(),
		Err:         errs[0],
		Description: errs[0].Translate(trans),
	}
}

// ValidateStruct validates the fields of a struct by their validate tags.
func ValidateStruct(s any) error {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate struct: %w", err)
	}
	structError := &StructError{}
	for _, e := range errs {
		structError.Violations = append(structError.Violations, Violation{
			Tag:         e.Tag(),
			Field:       e.StructField(),
			Err:         e,
			Description: e.Translate(trans),
		})
	}
	return structError
}

func mustRegister(tag, msg string, fn validator.Func) {
	if err := RegisterValidation(tag, fn); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := RegisterTranslation(tag, msg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	if err := entranslations.RegisterDefaultTranslations(defaultValidator, trans); err != nil {
		fmt.Fprintln(os.Stderr, "validation register default translations:", err)
		os.Exit(1)
	}

	mustRegister(
		"slug",
		"{0} must only contain lowercase letters and numbers separated by single hyphens",
		func(level validator.FieldLevel) bool {
			return slugRegex.MatchString(level.Field().String())
		},
	)
	mustRegister(
		"nonblank",
		"{0} must not be blank",
		func(level validator.FieldLevel) bool {
			return strings.TrimSpace(level.Field().String()) != ""
		},
	)
}
