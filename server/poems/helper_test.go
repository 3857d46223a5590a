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

package poems_test

import (
	"context"
	"errors"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server/backend/database"
)

var errConnectionLost = errors.New("connection lost")

// failingDB fails every write as a lost connection would.
type failingDB struct {
	database.Database
}

func (failingDB) CreatePoemInfo(context.Context, string, *types.PoemFields) (*database.PoemInfo, error) {
	return nil, errConnectionLost
}

func (failingDB) UpdatePoemInfo(
	context.Context,
	types.ID,
	string,
	*types.PoemFields,
) (*database.PoemInfo, error) {
	return nil, errConnectionLost
}
