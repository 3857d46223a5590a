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

// Package memory implements the database interface using in-memory database.
package memory

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/go-memdb"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server/backend/database"
)

// DB is an in-memory database for testing or temporarily.
type DB struct {
	db *memdb.MemDB
}

// New returns a new in-memory database.
func New() (*DB, error) {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &DB{
		db: memDB,
	}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return nil
}

// CreatePoemInfo creates a new poem with the given slug and fields.
func (d *DB) CreatePoemInfo(
	_ context.Context,
	slug string,
	fields *types.PoemFields,
) (*database.PoemInfo, error) {
	info := database.NewPoemInfo(slug, fields)
	info.ID = types.ID(bson.NewObjectID().Hex())
	return d.insertPoemInfo(info)
}

// ImportPoemInfo stores a poem exported elsewhere keeping its timestamps.
func (d *DB) ImportPoemInfo(
	_ context.Context,
	info *database.PoemInfo,
) (*database.PoemInfo, error) {
	info = info.DeepCopy()
	info.ID = newID(info.CreatedAt)
	return d.insertPoemInfo(info)
}

func (d *DB) insertPoemInfo(info *database.PoemInfo) (*database.PoemInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblPoems, "slug", info.Slug)
	if err != nil {
		return nil, fmt.Errorf("find poem by slug: %w", err)
	}
	if raw != nil {
		return nil, fmt.Errorf("%s: %w", info.Slug, database.ErrPoemAlreadyExists)
	}

	if err := txn.Insert(tblPoems, info); err != nil {
		return nil, fmt.Errorf("insert poem: %w", err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

// UpdatePoemInfo replaces the fields and the slug of the given poem.
func (d *DB) UpdatePoemInfo(
	_ context.Context,
	id types.ID,
	slug string,
	fields *types.PoemFields,
) (*database.PoemInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblPoems, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find poem by id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrPoemNotFound)
	}

	conflict, err := txn.First(tblPoems, "slug", slug)
	if err != nil {
		return nil, fmt.Errorf("find poem by slug: %w", err)
	}
	if conflict != nil && conflict.(*database.PoemInfo).ID != id {
		return nil, fmt.Errorf("%s: %w", slug, database.ErrPoemAlreadyExists)
	}

	info := raw.(*database.PoemInfo).DeepCopy()
	info.UpdateFields(slug, fields)
	info.UpdatedAt = time.Now()

	if err := txn.Insert(tblPoems, info); err != nil {
		return nil, fmt.Errorf("update poem: %w", err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

// DeletePoemInfo deletes the given poem.
func (d *DB) DeletePoemInfo(_ context.Context, id types.ID) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblPoems, "id", id.String())
	if err != nil {
		return fmt.Errorf("find poem by id: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("%s: %w", id, database.ErrPoemNotFound)
	}

	if err := txn.Delete(tblPoems, raw); err != nil {
		return fmt.Errorf("delete poem: %w", err)
	}
	txn.Commit()

	return nil
}

// FindPoemInfoByID returns the poem of the given ID.
func (d *DB) FindPoemInfoByID(_ context.Context, id types.ID) (*database.PoemInfo, error) {
	return d.findPoemInfo("id", id.String())
}

// FindPoemInfoBySlug returns the poem of the given slug.
func (d *DB) FindPoemInfoBySlug(_ context.Context, slug string) (*database.PoemInfo, error) {
	return d.findPoemInfo("slug", slug)
}

// FindPoemInfoBySlugExcept returns the poem of the given slug other than the
// poem of the given ID.
func (d *DB) FindPoemInfoBySlugExcept(
	_ context.Context,
	slug string,
	id types.ID,
) (*database.PoemInfo, error) {
	info, err := d.findPoemInfo("slug", slug)
	if err != nil {
		return nil, err
	}
	if info.ID == id {
		return nil, fmt.Errorf("%s: %w", slug, database.ErrPoemNotFound)
	}
	return info, nil
}

func (d *DB) findPoemInfo(index, value string) (*database.PoemInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblPoems, index, value)
	if err != nil {
		return nil, fmt.Errorf("find poem by %s: %w", index, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", value, database.ErrPoemNotFound)
	}

	return raw.(*database.PoemInfo).DeepCopy(), nil
}

// ListPoemInfos returns the poems selected by the filter, newest first.
func (d *DB) ListPoemInfos(
	_ context.Context,
	filter types.PoemFilter,
) ([]*database.PoemInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	var iter memdb.ResultIterator
	var err error
	switch filter {
	case types.PublishedPoems:
		iter, err = txn.Get(tblPoems, "is_draft", false)
	case types.DraftPoems:
		iter, err = txn.Get(tblPoems, "is_draft", true)
	default:
		iter, err = txn.Get(tblPoems, "id")
	}
	if err != nil {
		return nil, fmt.Errorf("list poems: %w", err)
	}

	var infos []*database.PoemInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		infos = append(infos, raw.(*database.PoemInfo).DeepCopy())
	}

	sort.SliceStable(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	return infos, nil
}

// FindNextPoemInfo returns the poem selected by the filter with the smallest
// ID greater than the given ID.
func (d *DB) FindNextPoemInfo(
	_ context.Context,
	id types.ID,
	filter types.PoemFilter,
) (*database.PoemInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.LowerBound(tblPoems, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find next poem: %w", err)
	}

	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		info := raw.(*database.PoemInfo)
		if info.ID != id && filter.Match(info.IsDraft) {
			return info.DeepCopy(), nil
		}
	}

	return nil, fmt.Errorf("next of %s: %w", id, database.ErrPoemNotFound)
}

// FindPrevPoemInfo returns the poem selected by the filter with the largest
// ID smaller than the given ID.
func (d *DB) FindPrevPoemInfo(
	_ context.Context,
	id types.ID,
	filter types.PoemFilter,
) (*database.PoemInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.ReverseLowerBound(tblPoems, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find prev poem: %w", err)
	}

	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		info := raw.(*database.PoemInfo)
		if info.ID != id && filter.Match(info.IsDraft) {
			return info.DeepCopy(), nil
		}
	}

	return nil, fmt.Errorf("prev of %s: %w", id, database.ErrPoemNotFound)
}

// newID returns a new ObjectID carrying the given creation time, so that
// imported poems sort among the others by creation.
func newID(createdAt time.Time) types.ID {
	oid := bson.NewObjectID()
	binary.BigEndian.PutUint32(oid[0:4], uint32(createdAt.Unix()))
	return types.ID(oid.Hex())
}
