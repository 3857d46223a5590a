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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	t.Run("ValidateValue test", func(t *testing.T) {
		assert.NoError(t, ValidateValue("the-red-wheelbarrow", "required,slug"))
		assert.NoError(t, ValidateValue("poem-2", "required,slug"))

		for _, invalid := range []string{"Red-Wheelbarrow", "red--wheelbarrow", "-red", "red wheelbarrow", "red_"} {
			err := ValidateValue(invalid, "required,slug")
			require.Error(t, err, invalid)
			assert.Equal(t, "slug", err.(Violation).Tag, invalid)
		}

		err := ValidateValue("   ", "nonblank")
		assert.Equal(t, "nonblank", err.(Violation).Tag)
	})

	t.Run("ValidateStruct test", func(t *testing.T) {
		type poem struct {
			Title     string `validate:"nonblank,max=10"`
			ImageLink string `validate:"omitempty,url"`
		}

		assert.NoError(t, ValidateStruct(poem{Title: "Fog", ImageLink: "https://example.com/fog.png"}))
		assert.NoError(t, ValidateStruct(poem{Title: "Fog"}))

		err := ValidateStruct(poem{Title: " ", ImageLink: "not a url"})
		structError, ok := err.(*StructError)
		require.True(t, ok)
		assert.Len(t, structError.Violations, 2)

		v, ok := structError.Field("Title")
		require.True(t, ok)
		assert.Equal(t, "Title must not be blank", v.Error())

		v, ok = structError.Field("ImageLink")
		require.True(t, ok)
		assert.Equal(t, "url", v.Tag)
	})

	t.Run("custom rule test", func(t *testing.T) {
		require.NoError(t, RegisterValidation("haiku", func(level FieldLevel) bool {
			return level.Field().String() == "haiku"
		}))
		require.NoError(t, RegisterTranslation("haiku", "{0} must be a haiku"))

		err := ValidateValue("sonnet", "required,haiku")
		assert.Equal(t, "haiku", err.(Violation).Tag)
		assert.NoError(t, ValidateValue("haiku", "required,haiku"))
	})
}
