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
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/verse-press/verse/api/types"
)

var tID = reflect.TypeOf(types.ID(""))

// NewRegistry returns a registry that stores types.ID as ObjectID.
func NewRegistry() *bson.Registry {
	registry := bson.NewRegistry()
	registry.RegisterTypeEncoder(tID, bson.ValueEncoderFunc(idEncoder))
	registry.RegisterTypeDecoder(tID, bson.ValueDecoderFunc(idDecoder))
	return registry
}

func idEncoder(_ bson.EncodeContext, vw bson.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != tID {
		return fmt.Errorf("idEncoder: cannot encode %v", val)
	}
	objectID, err := encodeID(val.Interface().(types.ID))
	if err != nil {
		return err
	}
	if err := vw.WriteObjectID(objectID); err != nil {
		return fmt.Errorf("encode error: %w", err)
	}
	return nil
}

func idDecoder(_ bson.DecodeContext, vr bson.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != tID {
		return fmt.Errorf("idDecoder: cannot decode into %v", val)
	}

	switch vr.Type() {
	case bson.TypeObjectID:
		objectID, err := vr.ReadObjectID()
		if err != nil {
			return fmt.Errorf("decode error: %w", err)
		}
		val.SetString(objectID.Hex())
	case bson.TypeString:
		str, err := vr.ReadString()
		if err != nil {
			return fmt.Errorf("decode error: %w", err)
		}
		val.SetString(str)
	default:
		return fmt.Errorf("idDecoder: cannot decode %v into ID", vr.Type())
	}
	return nil
}

// encodeID converts the given ID to an ObjectID.
func encodeID(id types.ID) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id.String())
	if err != nil {
		return objectID, fmt.Errorf("%s: %w", id, types.ErrInvalidID)
	}
	return objectID, nil
}
