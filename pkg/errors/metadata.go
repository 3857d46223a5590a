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

package errors

import (
	"errors"
	"maps"
)

// metadataError attaches key-value context, such as the file an import
// failed on, to an error.
type metadataError struct {
	err      error
	metadata map[string]string
}

func (e metadataError) Error() string {
	return e.err.Error()
}

func (e metadataError) Unwrap() error {
	return e.err
}

// WithMetadata wraps err with the given metadata. Metadata already attached
// to err is merged, with the new values taking precedence.
func WithMetadata(err error, metadata map[string]string) error {
	if err == nil || len(metadata) == 0 {
		return err
	}

	merged := make(map[string]string)
	var inner metadataError
	if errors.As(err, &inner) {
		maps.Copy(merged, inner.metadata)
	}
	maps.Copy(merged, metadata)

	if direct, ok := err.(metadataError); ok {
		err = direct.err
	}
	return metadataError{err: err, metadata: merged}
}

// Metadata returns a copy of the metadata attached to err, or nil.
func Metadata(err error) map[string]string {
	var metaErr metadataError
	if !errors.As(err, &metaErr) {
		return nil
	}
	return maps.Clone(metaErr.metadata)
}
