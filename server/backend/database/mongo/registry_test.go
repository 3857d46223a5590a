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

package mongo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server/backend/database"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	t.Run("id round trip test", func(t *testing.T) {
		id := types.ID(bson.NewObjectID().Hex())

		buf := new(bytes.Buffer)
		enc := bson.NewEncoder(bson.NewDocumentWriter(buf))
		enc.SetRegistry(registry)
		require.NoError(t, enc.Encode(bson.M{"_id": id, "slug": "fog"}))

		raw := bson.Raw(buf.Bytes())
		assert.Equal(t, bson.TypeObjectID, raw.Lookup("_id").Type)

		dec := bson.NewDecoder(bson.NewDocumentReader(bytes.NewReader(buf.Bytes())))
		dec.SetRegistry(registry)
		info := database.PoemInfo{}
		require.NoError(t, dec.Decode(&info))
		assert.Equal(t, id, info.ID)
		assert.Equal(t, "fog", info.Slug)
	})

	t.Run("invalid id test", func(t *testing.T) {
		_, err := encodeID(types.ID("fog"))
		assert.ErrorIs(t, err, types.ErrInvalidID)
	})
}
