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

// Package mongo implements database interfaces using MongoDB.
package mongo

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server/backend/database"
	"github.com/verse-press/verse/server/logging"
)

// Client is a client that connects to Mongo DB and reads or saves poems.
type Client struct {
	config *Config
	client *mongo.Client
}

// Dial creates an instance of Client and dials the given MongoDB.
func Dial(conf *Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.ParseConnectionTimeout())
	defer cancel()

	client, err := mongo.Connect(
		options.Client().
			ApplyURI(conf.ConnectionURI).
			SetRegistry(NewRegistry()),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(ctx, conf.ParsePingTimeout())
	defer cancelPing()

	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	if err := ensureIndexes(ctx, client.Database(conf.VerseDatabase)); err != nil {
		return nil, err
	}

	logging.DefaultLogger().Infof("MongoDB connected, URI: %s, DB: %s", conf.ConnectionURI, conf.VerseDatabase)

	return &Client{
		config: conf,
		client: client,
	}, nil
}

// Close all resources of this client.
func (c *Client) Close() error {
	if err := c.client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("close mongo client: %w", err)
	}

	return nil
}

// CreatePoemInfo creates a new poem with the given slug and fields.
func (c *Client) CreatePoemInfo(
	ctx context.Context,
	slug string,
	fields *types.PoemFields,
) (*database.PoemInfo, error) {
	info := database.NewPoemInfo(slug, fields)
	info.ID = types.ID(bson.NewObjectID().Hex())
	return c.insertPoemInfo(ctx, info)
}

// ImportPoemInfo stores a poem exported elsewhere keeping its timestamps.
func (c *Client) ImportPoemInfo(
	ctx context.Context,
	info *database.PoemInfo,
) (*database.PoemInfo, error) {
	info = info.DeepCopy()
	objectID := bson.NewObjectID()
	binary.BigEndian.PutUint32(objectID[0:4], uint32(info.CreatedAt.Unix()))
	info.ID = types.ID(objectID.Hex())
	return c.insertPoemInfo(ctx, info)
}

func (c *Client) insertPoemInfo(
	ctx context.Context,
	info *database.PoemInfo,
) (*database.PoemInfo, error) {
	if _, err := c.collection(ColPoems).InsertOne(ctx, info); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", info.Slug, database.ErrPoemAlreadyExists)
		}
		return nil, fmt.Errorf("create poem info: %w", err)
	}

	return info, nil
}

// UpdatePoemInfo replaces the fields and the slug of the given poem.
func (c *Client) UpdatePoemInfo(
	ctx context.Context,
	id types.ID,
	slug string,
	fields *types.PoemFields,
) (*database.PoemInfo, error) {
	objectID, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	result := c.collection(ColPoems).FindOneAndUpdate(ctx, bson.M{
		"_id": objectID,
	}, bson.M{
		"$set": bson.M{
			"title":      fields.Title,
			"slug":       slug,
			"content":    fields.Content,
			"has_title":  fields.HasTitle,
			"is_draft":   fields.IsDraft,
			"image_link": fields.ImageLink,
			"updated_at": time.Now(),
		},
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	info := database.PoemInfo{}
	if err := result.Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", id, database.ErrPoemNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", slug, database.ErrPoemAlreadyExists)
		}
		return nil, fmt.Errorf("update poem info: %w", err)
	}

	return &info, nil
}

// DeletePoemInfo deletes the given poem.
func (c *Client) DeletePoemInfo(ctx context.Context, id types.ID) error {
	objectID, err := encodeID(id)
	if err != nil {
		return err
	}

	result, err := c.collection(ColPoems).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete poem info: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", id, database.ErrPoemNotFound)
	}

	return nil
}

// FindPoemInfoByID returns the poem of the given ID.
func (c *Client) FindPoemInfoByID(ctx context.Context, id types.ID) (*database.PoemInfo, error) {
	objectID, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	return c.findPoemInfo(ctx, id.String(), bson.M{"_id": objectID})
}

// FindPoemInfoBySlug returns the poem of the given slug.
func (c *Client) FindPoemInfoBySlug(ctx context.Context, slug string) (*database.PoemInfo, error) {
	return c.findPoemInfo(ctx, slug, bson.M{"slug": slug})
}

// FindPoemInfoBySlugExcept returns the poem of the given slug other than the
// poem of the given ID.
func (c *Client) FindPoemInfoBySlugExcept(
	ctx context.Context,
	slug string,
	id types.ID,
) (*database.PoemInfo, error) {
	objectID, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	return c.findPoemInfo(ctx, slug, bson.M{
		"slug": slug,
		"_id":  bson.M{"$ne": objectID},
	})
}

// ListPoemInfos returns the poems selected by the filter, newest first.
func (c *Client) ListPoemInfos(
	ctx context.Context,
	filter types.PoemFilter,
) ([]*database.PoemInfo, error) {
	cursor, err := c.collection(ColPoems).Find(
		ctx,
		draftFilter(bson.M{}, filter),
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list poem infos: %w", err)
	}

	var infos []*database.PoemInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch poem infos: %w", err)
	}

	return infos, nil
}

// FindNextPoemInfo returns the poem selected by the filter with the smallest
// ID greater than the given ID.
func (c *Client) FindNextPoemInfo(
	ctx context.Context,
	id types.ID,
	filter types.PoemFilter,
) (*database.PoemInfo, error) {
	return c.findAdjacentPoemInfo(ctx, id, filter, "$gt", 1)
}

// FindPrevPoemInfo returns the poem selected by the filter with the largest
// ID smaller than the given ID.
func (c *Client) FindPrevPoemInfo(
	ctx context.Context,
	id types.ID,
	filter types.PoemFilter,
) (*database.PoemInfo, error) {
	return c.findAdjacentPoemInfo(ctx, id, filter, "$lt", -1)
}

func (c *Client) findAdjacentPoemInfo(
	ctx context.Context,
	id types.ID,
	filter types.PoemFilter,
	op string,
	order int,
) (*database.PoemInfo, error) {
	objectID, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	result := c.collection(ColPoems).FindOne(
		ctx,
		draftFilter(bson.M{"_id": bson.M{op: objectID}}, filter),
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: order}}),
	)

	info := database.PoemInfo{}
	if err := result.Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s of %s: %w", op, id, database.ErrPoemNotFound)
		}
		return nil, fmt.Errorf("decode poem info: %w", err)
	}

	return &info, nil
}

func (c *Client) findPoemInfo(
	ctx context.Context,
	key string,
	query bson.M,
) (*database.PoemInfo, error) {
	result := c.collection(ColPoems).FindOne(ctx, query)

	info := database.PoemInfo{}
	if err := result.Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", key, database.ErrPoemNotFound)
		}
		return nil, fmt.Errorf("decode poem info: %w", err)
	}

	return &info, nil
}

// draftFilter narrows the query to the poems selected by the filter.
func draftFilter(query bson.M, filter types.PoemFilter) bson.M {
	switch filter {
	case types.PublishedPoems:
		query["is_draft"] = false
	case types.DraftPoems:
		query["is_draft"] = true
	}
	return query
}

func (c *Client) collection(
	name string,
	opts ...options.Lister[options.CollectionOptions],
) *mongo.Collection {
	return c.client.
		Database(c.config.VerseDatabase).
		Collection(name, opts...)
}
